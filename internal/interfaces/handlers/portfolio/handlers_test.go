package portfolio

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	portsvc "stoxify-backend/internal/application/portfolio"
	"stoxify-backend/internal/infrastructure/store"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupPortfolioTest(t *testing.T) *Handlers {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&store.Snapshot{}))
	return &Handlers{Service: &portsvc.Service{Store: &store.Store{DB: db}}}
}

func appWithUser(h *Handlers, userID string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if userID != "" {
			c.Locals("user", map[string]interface{}{"user_id": userID})
		}
		return c.Next()
	})
	app.Get("/portfolio", h.Get)
	app.Post("/portfolio/holdings", h.AddHolding)
	app.Delete("/portfolio/holdings/:id", h.RemoveHolding)
	app.Delete("/portfolio", h.Reset)
	return app
}

func TestAddHolding_Created(t *testing.T) {
	h := setupPortfolioTest(t)
	app := appWithUser(h, uuid.New().String())

	body, _ := json.Marshal(map[string]interface{}{
		"symbol": "AAPL", "name": "Apple Inc", "quantity": 5, "price": 150, "currentPrice": 150,
	})
	req := httptest.NewRequest("POST", "/portfolio/holdings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, "success", result["status"])
	data, _ := result["data"].(map[string]interface{})
	assert.Equal(t, 750.0, data["totalValue"])
}

func TestAddHolding_InvalidQuantity(t *testing.T) {
	h := setupPortfolioTest(t)
	app := appWithUser(h, uuid.New().String())

	body, _ := json.Marshal(map[string]interface{}{
		"symbol": "AAPL", "quantity": 0, "price": 150,
	})
	req := httptest.NewRequest("POST", "/portfolio/holdings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	errObj, _ := result["error"].(map[string]interface{})
	assert.Equal(t, "Quantity must be a positive number", errObj["message"])
}

func TestPortfolio_UnauthorizedWithoutUser(t *testing.T) {
	h := setupPortfolioTest(t)
	app := appWithUser(h, "")

	req := httptest.NewRequest("GET", "/portfolio", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestRemoveHolding_TolerantOfUnknownID(t *testing.T) {
	h := setupPortfolioTest(t)
	app := appWithUser(h, uuid.New().String())

	req := httptest.NewRequest("DELETE", "/portfolio/holdings/"+uuid.New().String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestResetPortfolio(t *testing.T) {
	h := setupPortfolioTest(t)
	userID := uuid.New().String()
	app := appWithUser(h, userID)

	body, _ := json.Marshal(map[string]interface{}{
		"symbol": "AAPL", "quantity": 5, "price": 150, "currentPrice": 150,
	})
	req := httptest.NewRequest("POST", "/portfolio/holdings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	_, err := app.Test(req)
	require.NoError(t, err)

	req = httptest.NewRequest("DELETE", "/portfolio", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	data, _ := result["data"].(map[string]interface{})
	assert.Equal(t, 0.0, data["totalValue"])
	items, _ := data["items"].([]interface{})
	assert.Empty(t, items)
}
