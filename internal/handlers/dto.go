package handlers

import (
	"github.com/Rovan44/shopping-app-44/internal/httpx"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UpdatePaymentStatusRequest struct {
	Status string `json:"status"`
}

type HealthResponse struct {
	Service string `json:"service"`
	Status  string `json:"status"`
	Store   string `json:"store"`
}

// parseID reads a UUID path parameter. On failure the 400 response has
// already been written and ok is false.
func parseID(c *fiber.Ctx, param, label string) (id uuid.UUID, ok bool, err error) {
	raw := c.Params(param)
	id, parseErr := uuid.Parse(raw)
	if parseErr != nil {
		return uuid.Nil, false, httpx.BadRequestResponse(c, "Invalid "+label, map[string]interface{}{
			param: raw,
		})
	}
	return id, true, nil
}

func parseBody(c *fiber.Ctx, out interface{}) (ok bool, err error) {
	if parseErr := c.BodyParser(out); parseErr != nil {
		return false, httpx.BadRequestResponse(c, "Invalid request body", map[string]interface{}{
			"parse_error": parseErr.Error(),
		})
	}
	return true, nil
}
