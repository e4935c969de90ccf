package handlers

import (
	"strings"

	"github.com/Rovan44/shopping-app-44/internal/domain"
	"github.com/Rovan44/shopping-app-44/internal/httpx"
	"github.com/Rovan44/shopping-app-44/internal/service"
	"github.com/gofiber/fiber/v2"
)

// Creation reports an unknown payment mode as a bad request, not 404.
var createPaymentStatuses = map[domain.ErrorKind]int{
	domain.ErrorKindNotFound: fiber.StatusBadRequest,
}

type PaymentHandler struct {
	paymentService *service.PaymentService
}

func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) CreatePayment(c *fiber.Ctx) error {
	var request domain.CreatePaymentRequest
	if ok, err := parseBody(c, &request); !ok {
		return err
	}

	payment, err := h.paymentService.CreatePayment(c.UserContext(), request)
	if err != nil {
		return httpx.DomainErrorResponseWithStatus(c, err, createPaymentStatuses)
	}
	return httpx.Created(c, payment)
}

func (h *PaymentHandler) GetAllPayments(c *fiber.Ctx) error {
	payments, err := h.paymentService.GetAllPayments(c.UserContext())
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.OK(c, payments)
}

func (h *PaymentHandler) GetPaymentByID(c *fiber.Ctx) error {
	id, ok, err := parseID(c, "id", "payment ID")
	if !ok {
		return err
	}

	payment, err := h.paymentService.GetPaymentByID(c.UserContext(), id)
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.OK(c, payment)
}

func (h *PaymentHandler) GetPaymentByTransactionID(c *fiber.Ctx) error {
	payment, err := h.paymentService.GetPaymentByTransactionID(c.UserContext(), c.Params("transactionId"))
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.OK(c, payment)
}

func (h *PaymentHandler) GetPaymentsByStatus(c *fiber.Ctx) error {
	status, err := domain.ParsePaymentStatus(c.Params("status"))
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}

	payments, err := h.paymentService.GetPaymentsByStatus(c.UserContext(), status)
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.OK(c, payments)
}

// UpdatePaymentStatus takes the status from ?status= or, failing that, a
// JSON body {"status": "..."}.
func (h *PaymentHandler) UpdatePaymentStatus(c *fiber.Ctx) error {
	id, ok, err := parseID(c, "id", "payment ID")
	if !ok {
		return err
	}

	raw := c.Query("status")
	if raw == "" && len(c.Body()) > 0 {
		var request UpdatePaymentStatusRequest
		if ok, err := parseBody(c, &request); !ok {
			return err
		}
		raw = request.Status
	}
	if strings.TrimSpace(raw) == "" {
		return httpx.BadRequestResponse(c, "Status is required", nil)
	}

	status, err := domain.ParsePaymentStatus(raw)
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}

	payment, err := h.paymentService.UpdatePaymentStatus(c.UserContext(), id, status)
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.OK(c, payment)
}

func (h *PaymentHandler) GetTotalCompletedPayments(c *fiber.Ctx) error {
	total, err := h.paymentService.GetTotalCompletedPayments(c.UserContext())
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.OK(c, domain.NewMoney(total))
}

func (h *PaymentHandler) GetPaymentCountByStatus(c *fiber.Ctx) error {
	status, err := domain.ParsePaymentStatus(c.Params("status"))
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}

	count, err := h.paymentService.GetPaymentCountByStatus(c.UserContext(), status)
	if err != nil {
		return httpx.DomainErrorResponse(c, err)
	}
	return httpx.OK(c, count)
}
