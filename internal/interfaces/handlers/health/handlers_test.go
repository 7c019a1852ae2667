package health

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	healthsvc "stoxify-backend/internal/application/health"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHealthApp(t *testing.T) (*fiber.App, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	h := &Handlers{
		Service:        &healthsvc.Service{Redis: rdb, Started: time.Now()},
		HealthAdminKey: "test-admin-key",
	}
	app := fiber.New()
	app.Get("/health/json", h.JSON)
	app.Get("/health/reset", h.Reset)
	return app, mr
}

func TestHealthJSON_NoDatabase(t *testing.T) {
	app, _ := setupHealthApp(t)

	req := httptest.NewRequest("GET", "/health/json", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var report map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&report)
	assert.Equal(t, "degraded", report["status"])
	assert.Equal(t, "down", report["database"])
	assert.Equal(t, "up", report["redis"])
}

func TestHealthReset_RequiresAdminKey(t *testing.T) {
	app, _ := setupHealthApp(t)

	req := httptest.NewRequest("GET", "/health/reset", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)

	req = httptest.NewRequest("GET", "/health/reset?key=wrong", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestHealthReset_ClearsCounters(t *testing.T) {
	app, mr := setupHealthApp(t)
	require.NoError(t, mr.Set("health:request_count", "42"))

	req := httptest.NewRequest("GET", "/health/reset?key=test-admin-key", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.False(t, mr.Exists("health:request_count"))
}
