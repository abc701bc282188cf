package services

import (
	"errors"
	"math"

	"nexye/internal/core/domain/model/courier"
)

// ErrNoEligibleCourier is returned when no quote yields a positive rate
// in a mode the service type allows.
var ErrNoEligibleCourier = errors.New("no eligible courier")

// SelectedQuote is the outcome of rate selection: the winning quote, the
// shipping mode that won, the rate paid, and the delivery estimate for
// that mode.
type SelectedQuote struct {
	Quote         courier.Quote
	Mode          courier.Mode
	Rate          float64
	EstimatedDays string
}

// RateSelector is a domain service that picks the cheapest eligible
// courier quote for a shipment.
//
// Selection rules:
//   - the service type's mode policy decides which modes compete
//   - quotes offering neither mode are skipped
//   - a mode's rate falls back through the upstream's alternate rate
//     fields and counts only when strictly positive
//   - the strict global minimum across all quotes and allowed modes
//     wins; ties keep the first minimum encountered
type RateSelector struct{}

// NewRateSelector creates a RateSelector.
func NewRateSelector() RateSelector {
	return RateSelector{}
}

// SelectCheapest returns the cheapest eligible quote for the service
// type, or ErrNoEligibleCourier when no quote qualifies. Quote order is
// preserved from the upstream response, so ties resolve first-wins.
func (s RateSelector) SelectCheapest(
	quotes []courier.Quote,
	serviceType courier.ServiceType,
) (SelectedQuote, error) {
	if len(quotes) == 0 {
		return SelectedQuote{}, ErrNoEligibleCourier
	}

	allowSurface, allowAir := serviceType.AllowedModes()

	var (
		best       SelectedQuote
		found      bool
		lowestRate = math.MaxFloat64
	)

	for _, q := range quotes {
		if !q.HasAnyMode() {
			continue
		}

		if allowSurface && q.SurfaceAvailable {
			if rate := q.SurfaceRate(); rate > 0 && rate < lowestRate {
				lowestRate = rate
				best = SelectedQuote{
					Quote:         q,
					Mode:          courier.ModeSurface,
					Rate:          rate,
					EstimatedDays: q.EstimatedDelivery(courier.ModeSurface),
				}
				found = true
			}
		}

		if allowAir && q.AirAvailable {
			if rate := q.AirModeRate(); rate > 0 && rate < lowestRate {
				lowestRate = rate
				best = SelectedQuote{
					Quote:         q,
					Mode:          courier.ModeAir,
					Rate:          rate,
					EstimatedDays: q.EstimatedDelivery(courier.ModeAir),
				}
				found = true
			}
		}
	}

	if !found {
		return SelectedQuote{}, ErrNoEligibleCourier
	}
	return best, nil
}
