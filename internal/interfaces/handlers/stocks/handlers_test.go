package stocks

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	stocksvc "stoxify-backend/internal/application/stocks"
	"stoxify-backend/internal/marketdata"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStocksApp() *fiber.App {
	h := &Handlers{Service: &stocksvc.Service{Provider: &marketdata.MockProvider{}}}
	app := fiber.New()
	app.Get("/stocks/quote/:symbol", h.Quote)
	app.Post("/stocks/quotes", h.Quotes)
	app.Get("/stocks/search", h.Search)
	app.Get("/stocks/movers", h.Movers)
	app.Get("/stocks/popular", h.Popular)
	return app
}

func TestQuote_KnownSymbol(t *testing.T) {
	app := setupStocksApp()
	req := httptest.NewRequest("GET", "/stocks/quote/aapl", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	data, _ := result["data"].(map[string]interface{})
	assert.Equal(t, "AAPL", data["symbol"])
}

func TestQuote_InvalidSymbol(t *testing.T) {
	app := setupStocksApp()
	req := httptest.NewRequest("GET", "/stocks/quote/not%20a%20symbol", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestQuote_UnknownSymbol(t *testing.T) {
	app := setupStocksApp()
	req := httptest.NewRequest("GET", "/stocks/quote/ZZZZ", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestQuotes_BatchOmitsUnknown(t *testing.T) {
	app := setupStocksApp()
	body, _ := json.Marshal(map[string]interface{}{"symbols": []string{"AAPL", "ZZZZ"}})
	req := httptest.NewRequest("POST", "/stocks/quotes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	data, _ := result["data"].([]interface{})
	assert.Len(t, data, 1)
	meta, _ := result["metadata"].(map[string]interface{})
	assert.Equal(t, 2.0, meta["requested"])
	assert.Equal(t, 1.0, meta["resolved"])
}

func TestQuotes_EmptyBody(t *testing.T) {
	app := setupStocksApp()
	body, _ := json.Marshal(map[string]interface{}{})
	req := httptest.NewRequest("POST", "/stocks/quotes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestSearch_RequiresKeywords(t *testing.T) {
	app := setupStocksApp()
	req := httptest.NewRequest("GET", "/stocks/search", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestMoversAndPopular(t *testing.T) {
	app := setupStocksApp()

	req := httptest.NewRequest("GET", "/stocks/movers", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	req = httptest.NewRequest("GET", "/stocks/popular", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
