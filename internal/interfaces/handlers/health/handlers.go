package health

import (
	"context"

	healthsvc "stoxify-backend/internal/application/health"
	"stoxify-backend/internal/middleware"
	"stoxify-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service        *healthsvc.Service
	HealthAdminKey string
}

// JSON GET /health/json — always 200; degraded dependencies show in the body.
func (h *Handlers) JSON(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Service.Check(c.Context()))
}

// Root GET / — minimal liveness probe.
func (h *Handlers) Root(c *fiber.Ctx) error {
	return c.SendString("Stoxify API is running")
}

// Reset GET /health/reset — clears traffic counters. Requires query key=HEALTH_ADMIN_KEY.
func (h *Handlers) Reset(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" || key != h.HealthAdminKey {
		return response.Error(c, "Unauthorized", fiber.StatusForbidden, nil)
	}
	if err := middleware.ResetHealthCounters(context.Background(), h.Service.Redis); err != nil {
		return response.Error(c, err.Error(), fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Stats reset successfully", fiber.Map{"success": true}, nil)
}
