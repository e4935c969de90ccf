package handlers

import (
	"github.com/Rovan44/shopping-app-44/internal/domain"
	"github.com/Rovan44/shopping-app-44/internal/httpx"
	"github.com/Rovan44/shopping-app-44/internal/service"
	"github.com/gofiber/fiber/v2"
)

type PaymentModeHandler struct {
	paymentModeService *service.PaymentModeService
}

func NewPaymentModeHandler(paymentModeService *service.PaymentModeService) *PaymentModeHandler {
	return &PaymentModeHandler{
		paymentModeService: paymentModeService,
	}
}

func (h *PaymentModeHandler) GetAllPaymentModes(c *fiber.Ctx) error {
	modes, err := h.paymentModeService.GetAllPaymentModes(c.UserContext())
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.OK(c, modes)
}

func (h *PaymentModeHandler) GetActivePaymentModes(c *fiber.Ctx) error {
	modes, err := h.paymentModeService.GetActivePaymentModes(c.UserContext())
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.OK(c, modes)
}

func (h *PaymentModeHandler) GetPaymentModeByID(c *fiber.Ctx) error {
	id, ok, err := parseID(c, "id", "payment mode ID")
	if !ok {
		return err
	}

	mode, err := h.paymentModeService.GetPaymentModeByID(c.UserContext(), id)
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.OK(c, mode)
}

func (h *PaymentModeHandler) CreatePaymentMode(c *fiber.Ctx) error {
	var request domain.PaymentModeRequest
	if ok, err := parseBody(c, &request); !ok {
		return err
	}

	mode, err := h.paymentModeService.CreatePaymentMode(c.UserContext(), request)
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.Created(c, mode)
}

func (h *PaymentModeHandler) UpdatePaymentMode(c *fiber.Ctx) error {
	id, ok, err := parseID(c, "id", "payment mode ID")
	if !ok {
		return err
	}

	var request domain.PaymentModeRequest
	if ok, err := parseBody(c, &request); !ok {
		return err
	}

	mode, err := h.paymentModeService.UpdatePaymentMode(c.UserContext(), id, request)
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.OK(c, mode)
}

func (h *PaymentModeHandler) DeletePaymentMode(c *fiber.Ctx) error {
	id, ok, err := parseID(c, "id", "payment mode ID")
	if !ok {
		return err
	}

	if err := h.paymentModeService.DeletePaymentMode(c.UserContext(), id); err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.NoContent(c)
}

func (h *PaymentModeHandler) TogglePaymentModeStatus(c *fiber.Ctx) error {
	id, ok, err := parseID(c, "id", "payment mode ID")
	if !ok {
		return err
	}

	mode, err := h.paymentModeService.TogglePaymentModeStatus(c.UserContext(), id)
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.OK(c, mode)
}
