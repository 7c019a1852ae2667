package watchlists

import (
	quotessvc "stoxify-backend/internal/application/quotes"
	watchsvc "stoxify-backend/internal/application/watchlists"
	"stoxify-backend/internal/middleware"
	"stoxify-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *watchsvc.Service
	Quotes  *quotessvc.Service
}

func actorID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(middleware.GetUserID(c))
	return id, err == nil
}

func mapError(c *fiber.Ctx, err error) error {
	switch err {
	case watchsvc.ErrNameRequired, watchsvc.ErrInvalidSymbol:
		return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
	case watchsvc.ErrWatchlistNotFound:
		return response.NotFound(c, err.Error())
	case watchsvc.ErrDefaultWatchlist:
		return response.Error(c, err.Error(), fiber.StatusConflict, nil)
	default:
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
}

// List GET /api/v1/watchlists
func (h *Handlers) List(c *fiber.Ctx) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	state, err := h.Service.List(c.Context(), userID)
	if err != nil {
		return mapError(c, err)
	}
	return response.Success(c, "Watchlists retrieved", state, nil)
}

// Create POST /api/v1/watchlists
func (h *Handlers) Create(c *fiber.Ctx) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	var body struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Missing required fields", fiber.StatusBadRequest, nil)
	}
	state, err := h.Service.Create(c.Context(), userID, body.Name)
	if err != nil {
		return mapError(c, err)
	}
	return response.SuccessCreated(c, "Watchlist created", state, nil)
}

// Rename PATCH /api/v1/watchlists/:id
func (h *Handlers) Rename(c *fiber.Ctx) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	var body struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Missing required fields", fiber.StatusBadRequest, nil)
	}
	state, err := h.Service.Rename(c.Context(), userID, c.Params("id"), body.Name)
	if err != nil {
		return mapError(c, err)
	}
	return response.Success(c, "Watchlist renamed", state, nil)
}

// Delete DELETE /api/v1/watchlists/:id
func (h *Handlers) Delete(c *fiber.Ctx) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	state, err := h.Service.Delete(c.Context(), userID, c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return response.Success(c, "Watchlist deleted", state, nil)
}

// AddItem POST /api/v1/watchlists/:id/items
func (h *Handlers) AddItem(c *fiber.Ctx) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	var body watchsvc.ItemInput
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Missing required fields", fiber.StatusBadRequest, nil)
	}
	state, err := h.Service.AddItem(c.Context(), userID, c.Params("id"), body)
	if err != nil {
		return mapError(c, err)
	}
	return response.SuccessCreated(c, "Symbol added to watchlist", state, nil)
}

// RemoveItem DELETE /api/v1/watchlists/:id/items/:symbol
func (h *Handlers) RemoveItem(c *fiber.Ctx) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	state, err := h.Service.RemoveItem(c.Context(), userID, c.Params("id"), c.Params("symbol"))
	if err != nil {
		return mapError(c, err)
	}
	return response.Success(c, "Symbol removed from watchlist", state, nil)
}

// SetActive POST /api/v1/watchlists/active
func (h *Handlers) SetActive(c *fiber.Ctx) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	var body struct {
		WatchlistID string `json:"watchlist_id"`
	}
	if err := c.BodyParser(&body); err != nil || body.WatchlistID == "" {
		return response.Error(c, "Missing required fields", fiber.StatusBadRequest, nil)
	}
	state, err := h.Service.SetActive(c.Context(), userID, body.WatchlistID)
	if err != nil {
		return mapError(c, err)
	}
	return response.Success(c, "Active watchlist updated", state, nil)
}

// Refresh POST /api/v1/watchlists/refresh
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
	return response.Success(c, "Watchlists refreshed", result.Watchlists, fiber.Map{
		"quotes": len(result.Quotes),
	})
}
