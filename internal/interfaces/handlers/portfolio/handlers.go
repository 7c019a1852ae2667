package portfolio

import (
	portsvc "stoxify-backend/internal/application/portfolio"
	quotessvc "stoxify-backend/internal/application/quotes"
	"stoxify-backend/internal/middleware"
	"stoxify-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *portsvc.Service
	Quotes  *quotessvc.Service
}

func actorID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(middleware.GetUserID(c))
	return id, err == nil
}

// Get GET /api/v1/portfolio
func (h *Handlers) Get(c *fiber.Ctx) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	p, err := h.Service.Get(c.Context(), userID)
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Portfolio retrieved", p, nil)
}

// AddHolding POST /api/v1/portfolio/holdings
func (h *Handlers) AddHolding(c *fiber.Ctx) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	var body portsvc.AddInput
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Missing required fields", fiber.StatusBadRequest, nil)
	}
	p, err := h.Service.AddHolding(c.Context(), userID, body)
	if err != nil {
		switch err {
		case portsvc.ErrInvalidQuantity, portsvc.ErrInvalidSymbol:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.SuccessCreated(c, "Holding added", p, nil)
}

// RemoveHolding DELETE /api/v1/portfolio/holdings/:id
func (h *Handlers) RemoveHolding(c *fiber.Ctx) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	holdingID := c.Params("id")
	if holdingID == "" {
		return response.Error(c, "Missing required fields", fiber.StatusBadRequest, nil)
	}
	p, err := h.Service.RemoveHolding(c.Context(), userID, holdingID)
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Holding removed", p, nil)
}

// Refresh POST /api/v1/portfolio/refresh
func (h *Handlers) Refresh(c *fiber.Ctx) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	var body struct {
		Symbols []string `json:"symbols"`
	}
	_ = c.BodyParser(&body)
	result, err := h.Quotes.Refresh(c.Context(), userID, body.Symbols)
	if err != nil {
		return response.Error(c, "Quote refresh failed", fiber.StatusBadGateway, nil)
	}
	return response.Success(c, "Portfolio refreshed", result.Portfolio, fiber.Map{
		"quotes": len(result.Quotes),
	})
}

// Reset DELETE /api/v1/portfolio
func (h *Handlers) Reset(c *fiber.Ctx) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	p, err := h.Service.Reset(c.Context(), userID)
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Portfolio reset", p, nil)
}
