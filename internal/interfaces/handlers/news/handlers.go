package news

import (
	"strings"

	newssvc "stoxify-backend/internal/application/news"
	"stoxify-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *newssvc.Service
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Market GET /api/v1/news/market?topics=&limit=
func (h *Handlers) Market(c *fiber.Ctx) error {
	feed, err := h.Service.Market(c.Context(), splitList(c.Query("topics")), c.QueryInt("limit"))
	if err != nil {
		return response.Error(c, "News unavailable", fiber.StatusBadGateway, nil)
	}
	return response.Success(c, "Market news retrieved", feed, fiber.Map{
		"usingMockData": feed.UsingMockData,
	})
}

// Tickers GET /api/v1/news/tickers?tickers=&limit=
func (h *Handlers) Tickers(c *fiber.Ctx) error {
	feed, err := h.Service.Tickers(c.Context(), splitList(c.Query("tickers")), c.QueryInt("limit"))
	if err != nil {
		if err == newssvc.ErrInvalidTicker {
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		}
		return response.Error(c, "News unavailable", fiber.StatusBadGateway, nil)
	}
	return response.Success(c, "Ticker news retrieved", feed, fiber.Map{
		"usingMockData": feed.UsingMockData,
	})
}
