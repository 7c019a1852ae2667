package stocks

import (
	"strings"

	stocksvc "stoxify-backend/internal/application/stocks"
	"stoxify-backend/internal/marketdata"
	"stoxify-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *stocksvc.Service
}

func mapError(c *fiber.Ctx, err error) error {
	switch err {
	case stocksvc.ErrInvalidSymbol, stocksvc.ErrKeywordsRequired:
		return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
	case marketdata.ErrSymbolNotFound:
		return response.NotFound(c, "Symbol not found")
	case marketdata.ErrRateLimited:
		return response.Error(c, "Rate limit reached, try again later", fiber.StatusTooManyRequests, nil)
	default:
		return response.Error(c, "Market data unavailable", fiber.StatusBadGateway, nil)
	}
}

// Quote GET /api/v1/stocks/quote/:symbol
func (h *Handlers) Quote(c *fiber.Ctx) error {
	q, err := h.Service.Quote(c.Context(), c.Params("symbol"))
	if err != nil {
		return mapError(c, err)
	}
	return response.Success(c, "Quote retrieved", q, nil)
}

// Quotes POST /api/v1/stocks/quotes — batch lookup, body {"symbols": [...]}
func (h *Handlers) Quotes(c *fiber.Ctx) error {
	var body struct {
		Symbols []string `json:"symbols"`
	}
	if err := c.BodyParser(&body); err != nil || len(body.Symbols) == 0 {
		return response.Error(c, "Missing required fields", fiber.StatusBadRequest, nil)
	}
	quotes, err := h.Service.Quotes(c.Context(), body.Symbols)
	if err != nil {
		return mapError(c, err)
	}
	return response.Success(c, "Quotes retrieved", quotes, fiber.Map{
		"requested": len(body.Symbols),
		"resolved":  len(quotes),
	})
}

// Search GET /api/v1/stocks/search?q=
func (h *Handlers) Search(c *fiber.Ctx) error {
	results, err := h.Service.Search(c.Context(), strings.TrimSpace(c.Query("q")))
	if err != nil {
		return mapError(c, err)
	}
	return response.Success(c, "Search results", results, nil)
}

// Movers GET /api/v1/stocks/movers
func (h *Handlers) Movers(c *fiber.Ctx) error {
	movers, err := h.Service.TopMovers(c.Context())
	if err != nil {
		return mapError(c, err)
	}
	return response.Success(c, "Top movers retrieved", movers, nil)
}

// Popular GET /api/v1/stocks/popular
func (h *Handlers) Popular(c *fiber.Ctx) error {
	quotes, err := h.Service.Popular(c.Context())
	if err != nil {
		return mapError(c, err)
	}
	return response.Success(c, "Popular stocks retrieved", quotes, nil)
}

// Indices GET /api/v1/stocks/indices
func (h *Handlers) Indices(c *fiber.Ctx) error {
	quotes, err := h.Service.Indices(c.Context())
	if err != nil {
		return mapError(c, err)
	}
	return response.Success(c, "Index quotes retrieved", quotes, nil)
}
