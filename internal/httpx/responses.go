package httpx

import (
	"log"
	"time"

	"github.com/Rovan44/shopping-app-44/internal/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

type APIResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     *APIError   `json:"error,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id"`
}

type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

const (
	CodeBadRequest     = "BAD_REQUEST"
	CodeNotFound       = "NOT_FOUND"
	CodeInternalServer = "INTERNAL_SERVER_ERROR"
)

// JSON writes data as the plain response body.
func JSON(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

func OK(c *fiber.Ctx, data interface{}) error {
	return JSON(c, fiber.StatusOK, data)
}

func Created(c *fiber.Ctx, data interface{}) error {
	return JSON(c, fiber.StatusCreated, data)
}

func NoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

func SuccessResponse(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
		RequestID: RequestID(c),
	})
}

func ErrorResponse(c *fiber.Ctx, status int, code, message string, details map[string]interface{}) error {
	return c.Status(status).JSON(APIResponse{
		Success: false,
		Message: message,
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
		Timestamp: time.Now(),
		RequestID: RequestID(c),
	})
}

func BadRequestResponse(c *fiber.Ctx, message string, details map[string]interface{}) error {
	return ErrorResponse(c, fiber.StatusBadRequest, CodeBadRequest, message, details)
}

func NotFoundResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusNotFound, CodeNotFound, message, nil)
}

func InternalServerErrorResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusInternalServerError, CodeInternalServer, message, nil)
}

// StatusFor maps a business error kind to an HTTP status.
func StatusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.ErrorKindValidation, domain.ErrorKindInvalidState:
		return fiber.StatusBadRequest
	case domain.ErrorKindNotFound:
		return fiber.StatusNotFound
	case domain.ErrorKindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// DomainErrorResponse writes err using its business kind. Errors without a
// kind are logged and reported as a generic 500.
func DomainErrorResponse(c *fiber.Ctx, err error) error {
	return DomainErrorResponseWithStatus(c, err, nil)
}

// DomainErrorResponseWithStatus is DomainErrorResponse with per-kind status
// overrides.
func DomainErrorResponseWithStatus(c *fiber.Ctx, err error, overrides map[domain.ErrorKind]int) error {
	kind := domain.KindOf(err)
	if kind == "" {
		log.Printf("Request %s %s failed: %v", c.Method(), c.Path(), err)
		return InternalServerErrorResponse(c, "Internal Server Error")
	}

	status := StatusFor(kind)
	if override, ok := overrides[kind]; ok {
		status = override
	}
	return ErrorResponse(c, status, string(kind), err.Error(), nil)
}

// RequestID returns the caller's X-Request-ID, generating and echoing one
// when absent.
func RequestID(c *fiber.Ctx) string {
	if requestID, ok := c.Locals(RequestIDHeader).(string); ok && requestID != "" {
		return requestID
	}
	requestID := c.Get(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	c.Locals(RequestIDHeader, requestID)
	c.Set(RequestIDHeader, requestID)
	return requestID
}
