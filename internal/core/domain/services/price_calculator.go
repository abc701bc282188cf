package services

import (
	"fmt"
	"math"

	"nexye/internal/pkg/errs"
)

// Tariff slabs in rupees, as published on the order form and the
// shipping policy page.
const (
	basePriceUpTo1Kg = 270
	basePriceUpTo2Kg = 320
	pricePerExtraKg  = 100
)

// PriceQuote is a weight-slab price with its human-readable breakdown.
type PriceQuote struct {
	Price     int
	Breakdown string
}

// PriceCalculator computes the published shipping tariff from parcel
// weight. The declared order price is still client-supplied and is not
// recomputed against this tariff; the calculator backs the public price
// quote endpoint only.
type PriceCalculator struct{}

// NewPriceCalculator creates a PriceCalculator.
func NewPriceCalculator() PriceCalculator {
	return PriceCalculator{}
}

// Calculate returns the tariff for the given weight in kilograms:
// up to 1kg 270, up to 2kg 320, beyond that 320 plus 100 per started
// extra kilogram.
func (c PriceCalculator) Calculate(weightKg float64) (PriceQuote, error) {
	if weightKg <= 0 {
		return PriceQuote{}, errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%v is not greater than 0", weightKg))
	}

	switch {
	case weightKg <= 1:
		return PriceQuote{
			Price:     basePriceUpTo1Kg,
			Breakdown: fmt.Sprintf("Up to 1kg: ₹%d", basePriceUpTo1Kg),
		}, nil
	case weightKg <= 2:
		return PriceQuote{
			Price:     basePriceUpTo2Kg,
			Breakdown: fmt.Sprintf("Up to 2kg: ₹%d", basePriceUpTo2Kg),
		}, nil
	default:
		extraKg := int(math.Ceil(weightKg - 2))
		price := basePriceUpTo2Kg + extraKg*pricePerExtraKg
		return PriceQuote{
			Price: price,
			Breakdown: fmt.Sprintf("2kg: ₹%d + %dkg × ₹%d = ₹%d",
				basePriceUpTo2Kg, extraKg, pricePerExtraKg, price),
		}, nil
	}
}
