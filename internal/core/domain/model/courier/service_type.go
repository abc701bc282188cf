package courier

import "strings"

// ServiceType is the service tier requested on the order form. It maps
// to the shipping modes a booking may use.
type ServiceType string

const (
	// Express can use both surface and air.
	Express ServiceType = "express"
	// Standard uses surface only.
	Standard ServiceType = "standard"
	// Overnight uses air only.
	Overnight ServiceType = "overnight"
	// SameDay uses air only.
	SameDay ServiceType = "same_day"
)

// ParseServiceType normalizes raw order-form input. The field is
// optional; empty input means express. Unknown values are kept verbatim
// and fall back to allowing both modes, matching the historical policy.
func ParseServiceType(raw string) ServiceType {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	if cleaned == "" {
		return Express
	}
	return ServiceType(cleaned)
}

// AllowedModes reports which shipping modes the service type permits.
// Unknown service types permit both.
func (s ServiceType) AllowedModes() (surface, air bool) {
	switch s {
	case Standard:
		return true, false
	case Overnight, SameDay:
		return false, true
	case Express:
		return true, true
	default:
		return true, true
	}
}

// String returns the service type name.
func (s ServiceType) String() string {
	return string(s)
}

// Mode is a shipping mode offered by a courier.
type Mode string

const (
	// ModeSurface is ground transport.
	ModeSurface Mode = "Surface"
	// ModeAir is air transport.
	ModeAir Mode = "Air"
)
