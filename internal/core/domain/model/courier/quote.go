package courier

// Quote is one courier's offer for a shipment, mapped 1:1 from the
// carrier's serviceability response. Rate fields mirror the upstream
// payload, which is inconsistent about where the price lives: surface
// pricing arrives in rate or freight_charge, air pricing in air_rate or
// air_freight_charge. Unparsable rates decode to 0 at the adapter.
type Quote struct {
	CourierCompanyID int
	CourierName      string

	SurfaceAvailable bool
	AirAvailable     bool

	Rate             float64
	FreightCharge    float64
	AirRate          float64
	AirFreightCharge float64

	EstimatedDays    string
	AirEstimatedDays string
}

// HasAnyMode reports whether the courier offers at least one mode.
func (q Quote) HasAnyMode() bool {
	return q.SurfaceAvailable || q.AirAvailable
}

// SurfaceRate resolves the surface price, preferring the rate field and
// falling back to freight_charge. Zero means no usable price.
func (q Quote) SurfaceRate() float64 {
	if q.Rate > 0 {
		return q.Rate
	}
	return q.FreightCharge
}

// AirModeRate resolves the air price, preferring air_rate and falling
// back to air_freight_charge. Zero means no usable price.
func (q Quote) AirModeRate() float64 {
	if q.AirRate > 0 {
		return q.AirRate
	}
	return q.AirFreightCharge
}

// ModeRate resolves the price for the given mode.
func (q Quote) ModeRate(mode Mode) float64 {
	if mode == ModeAir {
		return q.AirModeRate()
	}
	return q.SurfaceRate()
}

// EstimatedDelivery returns the delivery estimate for the given mode,
// falling back from the air estimate to the general one.
func (q Quote) EstimatedDelivery(mode Mode) string {
	if mode == ModeAir && q.AirEstimatedDays != "" {
		return q.AirEstimatedDays
	}
	if q.EstimatedDays != "" {
		return q.EstimatedDays
	}
	return "N/A"
}
