package queries

import (
	"strconv"
	"strings"

	"nexye/internal/pkg/errs"
	"nexye/internal/pkg/guard"
)

// ErrGetPriceQueryIsNotConstructed is returned when a GetPriceQuery was
// not created via NewGetPriceQuery.
var ErrGetPriceQueryIsNotConstructed = errs.NewValueIsRequiredError(
	"GetPriceQuery must be created via NewGetPriceQuery constructor")

// GetPriceQuery requests the published tariff for a parcel weight. The
// weight arrives as a query-string value, so the raw form is a string.
type GetPriceQuery struct { //nolint:recvcheck //using for validation
	weightKg float64

	guard guard.ConstructorGuard
}

// NewGetPriceQuery parses and validates the raw weight. It must be a
// strictly positive number in kilograms.
func NewGetPriceQuery(rawWeight string) (GetPriceQuery, error) {
	weight, err := strconv.ParseFloat(strings.TrimSpace(rawWeight), 64)
	if err != nil || weight <= 0 {
		return GetPriceQuery{}, errs.NewValidationError("Weight must be a positive number")
	}

	return GetPriceQuery{
		weightKg: weight,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPriceQuery) Validate() error {
	return q.guard.Validate(ErrGetPriceQueryIsNotConstructed)
}

// WeightKg returns the parcel weight in kilograms.
func (q GetPriceQuery) WeightKg() float64 {
	return q.weightKg
}

// GetPriceQueryResponse is the tariff for the requested weight.
type GetPriceQueryResponse struct {
	WeightKg  float64
	Price     int
	Breakdown string
}
