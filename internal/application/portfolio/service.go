// Package portfolio owns the ledger: the user's holdings plus aggregate
// totals. Every operation reads the latest persisted snapshot, applies a
// pure transformation, recomputes all derived fields, writes the full
// snapshot back and returns the updated ledger.
package portfolio

import (
	"context"
	"time"

	"stoxify-backend/internal/domain"
	"stoxify-backend/internal/infrastructure/store"
	"stoxify-backend/internal/pkg/finmath"
	"stoxify-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Service encapsulates ledger operations for one snapshot store.
type Service struct {
	Store *store.Store
}

// AddInput is one buy: quantity shares of symbol at price, with the
// market's current price at purchase time.
type AddInput struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity"`
	Price        float64 `json:"price"`
	CurrentPrice float64 `json:"currentPrice"`
}

// Get returns the user's ledger, empty if none was ever persisted.
func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*domain.Portfolio, error) {
	p, err := s.Store.LoadPortfolio(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = domain.EmptyPortfolio()
	}
	return p, nil
}

// AddHolding records a buy. An existing position in the same symbol is
// merged: quantity-weighted average for cost basis, last-write-wins for
// the current price, original purchase date kept. A new symbol appends a
// holding. Ledger totals are recomputed and the snapshot persisted.
func (s *Service) AddHolding(ctx context.Context, userID uuid.UUID, in AddInput) (*domain.Portfolio, error) {
	if in.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	symbol := validation.NormalizeSymbol(in.Symbol)
	if !validation.IsValidSymbol(symbol) {
		return nil, ErrInvalidSymbol
	}

	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range p.Items {
		if p.Items[i].Symbol != symbol {
			continue
		}
		existing := &p.Items[i]
		newAvg := finmath.WeightedAverage(existing.Quantity, existing.AveragePrice, in.Quantity, in.Price)
		existing.Quantity += in.Quantity
		existing.AveragePrice = newAvg
		existing.CurrentPrice = in.CurrentPrice
		refreshDerived(existing)
		merged = true
		break
	}
	if !merged {
		h := domain.Holding{
			ID:           uuid.New().String(),
			Symbol:       symbol,
			Name:         in.Name,
			Quantity:     in.Quantity,
			AveragePrice: in.Price,
			CurrentPrice: in.CurrentPrice,
			PurchaseDate: time.Now().UTC(),
		}
		refreshDerived(&h)
		p.Items = append(p.Items, h)
	}

	recalcTotals(p)
	if err := s.Store.SavePortfolio(ctx, userID, p); err != nil {
		return nil, err
	}
	log.Info().Str("user_id", userID.String()).Str("symbol", symbol).Float64("quantity", in.Quantity).Msg("holding added")
	return p, nil
}

// RemoveHolding deletes the holding with the given id. A missing id is a
// no-op, not an error (tolerant delete). Totals are recomputed either way.
func (s *Service) RemoveHolding(ctx context.Context, userID uuid.UUID, holdingID string) (*domain.Portfolio, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := p.Items[:0]
	for _, h := range p.Items {
		if h.ID != holdingID {
			items = append(items, h)
		}
	}
	p.Items = items

	recalcTotals(p)
	if err := s.Store.SavePortfolio(ctx, userID, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdatePrices overwrites the current price of every holding whose symbol
// has a quote, recomputing that holding's derived fields. Holdings with no
// matching quote are untouched. Cost basis is never changed here.
func (s *Service) UpdatePrices(ctx context.Context, userID uuid.UUID, quotes []domain.Quote) (*domain.Portfolio, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	bySymbol := make(map[string]domain.Quote, len(quotes))
	for _, q := range quotes {
		bySymbol[validation.NormalizeSymbol(q.Symbol)] = q
	}

	for i := range p.Items {
		q, ok := bySymbol[p.Items[i].Symbol]
		if !ok {
			continue
		}
		p.Items[i].CurrentPrice = q.Price
		refreshDerived(&p.Items[i])
	}

	recalcTotals(p)
	if err := s.Store.SavePortfolio(ctx, userID, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Reset clears the ledger to empty and persists the empty snapshot.
func (s *Service) Reset(ctx context.Context, userID uuid.UUID) (*domain.Portfolio, error) {
	p := domain.EmptyPortfolio()
	if err := s.Store.SavePortfolio(ctx, userID, p); err != nil {
		return nil, err
	}
	return p, nil
}

// refreshDerived recomputes a holding's derived fields from
// quantity/averagePrice/currentPrice.
func refreshDerived(h *domain.Holding) {
	h.TotalValue = finmath.PositionValue(h.Quantity, h.CurrentPrice)
	h.Gain = finmath.Gain(h.Quantity, h.AveragePrice, h.CurrentPrice)
	h.GainPercent = finmath.GainPercent(h.AveragePrice, h.CurrentPrice)
}

// recalcTotals recomputes ledger aggregates. Non-finite terms count as
// zero; the percent base is total cost (value minus gain) and yields 0
// when non-positive.
func recalcTotals(p *domain.Portfolio) {
	var totalValue, totalGain float64
	for _, h := range p.Items {
		totalValue += finmath.Finite(h.TotalValue)
		totalGain += finmath.Finite(h.Gain)
	}
	p.TotalValue = totalValue
	p.TotalGain = totalGain

	baseCost := totalValue - totalGain
	if baseCost > 0 {
		p.TotalGainPercent = finmath.Finite(totalGain / baseCost * 100)
	} else {
		p.TotalGainPercent = 0
	}
}
