// Package postal resolves Indian postal codes to city/state through a
// tiered fallback chain: a static table of known codes, an ordered list
// of external lookup services, and a numeric range heuristic covering
// the major metro bands.
package postal

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"sync"
	"time"

	"nexye/internal/core/ports"
	"nexye/internal/pkg/errs"
)

// ProviderTimeout bounds each external lookup attempt.
const ProviderTimeout = 5 * time.Second

var pincodePattern = regexp.MustCompile(`^\d{6}$`)

// knownPincodes is the curated fast path for common areas. It is
// authoritative: a hit here short-circuits every other strategy.
func knownPincodes() map[string]ports.ResolvedLocation {
	return map[string]ports.ResolvedLocation{
		"110001": {City: "New Delhi", State: "Delhi"},
		"110096": {City: "East Delhi", State: "Delhi"},
		"400001": {City: "Mumbai", State: "Maharashtra"},
		"400002": {City: "Mumbai", State: "Maharashtra"},
		"560001": {City: "Bangalore", State: "Karnataka"},
		"700001": {City: "Kolkata", State: "West Bengal"},
		"600001": {City: "Chennai", State: "Tamil Nadu"},
		"500001": {City: "Hyderabad", State: "Telangana"},
		"228001": {City: "Sultanpur", State: "Uttar Pradesh"},
		"226001": {City: "Lucknow", State: "Uttar Pradesh"},
		"221001": {City: "Varanasi", State: "Uttar Pradesh"},
		"201001": {City: "Ghaziabad", State: "Uttar Pradesh"},
	}
}

// rangeBand maps an inclusive numeric pincode band to a metro area.
type rangeBand struct {
	low, high int
	location  ports.ResolvedLocation
}

// rangeBands is the last-resort approximation applied when every
// external service has failed.
var rangeBands = []rangeBand{
	{110001, 110096, ports.ResolvedLocation{City: "Delhi", State: "Delhi"}},
	{400001, 400104, ports.ResolvedLocation{City: "Mumbai", State: "Maharashtra"}},
	{560001, 560103, ports.ResolvedLocation{City: "Bangalore", State: "Karnataka"}},
	{700001, 700156, ports.ResolvedLocation{City: "Kolkata", State: "West Bengal"}},
	{600001, 600123, ports.ResolvedLocation{City: "Chennai", State: "Tamil Nadu"}},
	{500001, 500104, ports.ResolvedLocation{City: "Hyderabad", State: "Telangana"}},
	{201001, 201318, ports.ResolvedLocation{City: "Ghaziabad", State: "Uttar Pradesh"}},
	{226001, 226030, ports.ResolvedLocation{City: "Lucknow", State: "Uttar Pradesh"}},
	{221001, 221601, ports.ResolvedLocation{City: "Varanasi", State: "Uttar Pradesh"}},
	{228001, 228304, ports.ResolvedLocation{City: "Sultanpur", State: "Uttar Pradesh"}},
}

// Resolver implements ports.PostalResolver. It is safe for concurrent
// use; the known-code table can be extended at runtime with AddKnown.
type Resolver struct {
	mu        sync.RWMutex
	known     map[string]ports.ResolvedLocation
	providers []Provider
	log       *slog.Logger
}

// NewResolver creates a Resolver trying the given providers in order.
// Order matters: callers get the first successful response, not the
// best one.
func NewResolver(providers []Provider, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{
		known:     knownPincodes(),
		providers: providers,
		log:       log,
	}
}

// AddKnown extends the static table at runtime. Process-wide and not
// restart-safe.
func (r *Resolver) AddKnown(pincode, city, state string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.known[pincode] = ports.ResolvedLocation{City: city, State: state}
}

// Resolve resolves a 6-digit pincode to city/state. Malformed codes are
// rejected before any network call is made.
func (r *Resolver) Resolve(ctx context.Context, pincode string) (ports.ResolvedLocation, error) {
	if !pincodePattern.MatchString(pincode) {
		return ports.ResolvedLocation{}, errs.NewLookupError(pincode,
			fmt.Sprintf("Invalid pincode format: %s. Must be 6 digits.", pincode))
	}

	r.mu.RLock()
	location, ok := r.known[pincode]
	r.mu.RUnlock()
	if ok {
		return location, nil
	}

	for _, provider := range r.providers {
		location, err := r.tryProvider(ctx, provider, pincode)
		if err != nil {
			r.log.Warn("postal lookup attempt failed",
				"provider", provider.Name(), "pincode", pincode, "error", err)
			continue
		}
		return location, nil
	}

	if location, ok := rangeFallback(pincode); ok {
		r.log.Info("postal lookup fell back to range heuristic",
			"pincode", pincode, "city", location.City, "state", location.State)
		return location, nil
	}

	return ports.ResolvedLocation{}, errs.NewLookupError(pincode,
		fmt.Sprintf("Unable to fetch city/state for pincode %s. All services unavailable.", pincode))
}

func (r *Resolver) tryProvider(ctx context.Context, provider Provider, pincode string) (ports.ResolvedLocation, error) {
	ctx, cancel := context.WithTimeout(ctx, ProviderTimeout)
	defer cancel()
	return provider.Lookup(ctx, pincode)
}

func rangeFallback(pincode string) (ports.ResolvedLocation, bool) {
	code, err := strconv.Atoi(pincode)
	if err != nil {
		return ports.ResolvedLocation{}, false
	}
	for _, band := range rangeBands {
		if code >= band.low && code <= band.high {
			return band.location, true
		}
	}
	return ports.ResolvedLocation{}, false
}
