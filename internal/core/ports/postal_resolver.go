// Package ports defines the outbound contracts the application core
// depends on: postal resolution, carrier API access, token supply,
// order persistence, and the OTP store/mailer pair.
package ports

import "context"

// ResolvedLocation is the outcome of resolving a postal code. It is
// never partially valid: a non-nil error from Resolve means neither
// field is usable.
type ResolvedLocation struct {
	City  string
	State string
}

// PostalResolver resolves a 6-digit postal code to city/state through a
// tiered fallback chain: static known-code table, ordered external
// lookup services, numeric range heuristic. Implementations must reject
// malformed codes without any network call.
type PostalResolver interface {
	Resolve(ctx context.Context, pincode string) (ResolvedLocation, error)
}
