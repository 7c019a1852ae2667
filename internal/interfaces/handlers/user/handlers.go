package user

import (
	usersvc "stoxify-backend/internal/application/user"
	"stoxify-backend/internal/middleware"
	"stoxify-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *usersvc.Service
}

func actorID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(middleware.GetUserID(c))
	return id, err == nil
}

func mapError(c *fiber.Ctx, err error) error {
	switch err {
	case usersvc.ErrUserNotFound:
		return response.NotFound(c, err.Error())
	case usersvc.ErrInvalidAPIKey, usersvc.ErrInvalidEmail:
		return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
	default:
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
}

// Profile GET /api/v1/users/profile
func (h *Handlers) Profile(c *fiber.Ctx) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	p, err := h.Service.Get(c.Context(), userID)
	if err != nil {
		return mapError(c, err)
	}
	return response.Success(c, "Profile retrieved", p, nil)
}

// UpdateProfile PUT /api/v1/users/profile
func (h *Handlers) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	var body usersvc.UpdateInput
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Missing required fields", fiber.StatusBadRequest, nil)
	}
	p, err := h.Service.Update(c.Context(), userID, body)
	if err != nil {
		return mapError(c, err)
	}
	return response.Success(c, "Profile updated", p, nil)
}

// SetAPIKey PUT /api/v1/users/api-key
func (h *Handlers) SetAPIKey(c *fiber.Ctx) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	var body struct {
		APIKey string `json:"api_key"`
	}
	if err := c.BodyParser(&body); err != nil || body.APIKey == "" {
		return response.Error(c, "Missing required fields", fiber.StatusBadRequest, nil)
	}
	p, err := h.Service.SetAPIKey(c.Context(), userID, body.APIKey)
	if err != nil {
		return mapError(c, err)
	}
	return response.Success(c, "API key saved", p, nil)
}

// RemoveAPIKey DELETE /api/v1/users/api-key
func (h *Handlers) RemoveAPIKey(c *fiber.Ctx) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	p, err := h.Service.RemoveAPIKey(c.Context(), userID)
	if err != nil {
		return mapError(c, err)
	}
	return response.Success(c, "API key removed", p, nil)
}
