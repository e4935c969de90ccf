package handlers

import (
	"github.com/Rovan44/shopping-app-44/internal/domain"
	"github.com/Rovan44/shopping-app-44/internal/httpx"
	"github.com/Rovan44/shopping-app-44/internal/service"
	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	productService *service.ProductService
}

func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.productService.ListProducts(c.UserContext())
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.OK(c, products)
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, ok, err := parseID(c, "id", "product ID")
	if !ok {
		return err
	}

	product, err := h.productService.GetProduct(c.UserContext(), id)
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.OK(c, product)
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var request domain.ProductRequest
	if ok, err := parseBody(c, &request); !ok {
		return err
	}

	product, err := h.productService.CreateProduct(c.UserContext(), request)
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.Created(c, product)
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok, err := parseID(c, "id", "product ID")
	if !ok {
		return err
	}

	var request domain.ProductRequest
	if ok, err := parseBody(c, &request); !ok {
		return err
	}

	product, err := h.productService.UpdateProduct(c.UserContext(), id, request)
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.OK(c, product)
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok, err := parseID(c, "id", "product ID")
	if !ok {
		return err
	}

	if err := h.productService.DeleteProduct(c.UserContext(), id); err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.NoContent(c)
}

func (h *ProductHandler) ReduceStock(c *fiber.Ctx) error {
	id, ok, err := parseID(c, "id", "product ID")
	if !ok {
		return err
	}

	var request domain.ReduceStockRequest
	if ok, err := parseBody(c, &request); !ok {
		return err
	}

	product, err := h.productService.ReduceStock(c.UserContext(), id, request)
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.OK(c, product)
}

func (h *ProductHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.productService.ListCategories(c.UserContext())
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.OK(c, categories)
}
