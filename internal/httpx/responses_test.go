package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/Rovan44/shopping-app-44/internal/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	assert.Equal(t, fiber.StatusBadRequest, StatusFor(domain.ErrorKindValidation))
	assert.Equal(t, fiber.StatusBadRequest, StatusFor(domain.ErrorKindInvalidState))
	assert.Equal(t, fiber.StatusNotFound, StatusFor(domain.ErrorKindNotFound))
	assert.Equal(t, fiber.StatusConflict, StatusFor(domain.ErrorKindConflict))
	assert.Equal(t, fiber.StatusInternalServerError, StatusFor(""))
}

func TestDomainErrorResponse(t *testing.T) {
	app := fiber.New()
	app.Get("/conflict", func(c *fiber.Ctx) error {
		return DomainErrorResponse(c, fmt.Errorf("wrapped: %w", domain.NewConflictError("Payment mode already exists: UPI")))
	})
	app.Get("/override", func(c *fiber.Ctx) error {
		return DomainErrorResponseWithStatus(c, domain.NewNotFoundError("missing"),
			map[domain.ErrorKind]int{domain.ErrorKindNotFound: fiber.StatusBadRequest})
	})
	app.Get("/internal", func(c *fiber.Ctx) error {
		return DomainErrorResponse(c, errors.New("connection refused"))
	})

	req := httptest.NewRequest("GET", "/conflict", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "req-1", resp.Header.Get(RequestIDHeader))

	var body APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "CONFLICT", body.Error.Code)
	assert.Equal(t, "Payment mode already exists: UPI", body.Message)
	assert.Equal(t, "req-1", body.RequestID)

	resp, err = app.Test(httptest.NewRequest("GET", "/override", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/internal", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))

	body = APIResponse{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Internal Server Error", body.Message)
}
