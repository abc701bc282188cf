package queries

import (
	"context"

	"nexye/internal/core/domain/services"
)

// GetPriceQueryHandler answers the public price quote from the
// weight-slab tariff. Pure computation, no I/O.
type GetPriceQueryHandler struct {
	calculator services.PriceCalculator
}

// NewGetPriceQueryHandler creates a handler for price quotes.
func NewGetPriceQueryHandler(calculator services.PriceCalculator) GetPriceQueryHandler {
	return GetPriceQueryHandler{calculator: calculator}
}

// Handle computes the tariff for the queried weight.
func (h GetPriceQueryHandler) Handle(_ context.Context, query GetPriceQuery) (GetPriceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPriceQueryResponse{}, err
	}

	quote, err := h.calculator.Calculate(query.WeightKg())
	if err != nil {
		return GetPriceQueryResponse{}, err
	}

	return GetPriceQueryResponse{
		WeightKg:  query.WeightKg(),
		Price:     quote.Price,
		Breakdown: quote.Breakdown,
	}, nil
}
