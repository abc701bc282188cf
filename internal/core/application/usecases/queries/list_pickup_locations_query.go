package queries

import (
	"nexye/internal/pkg/errs"
	"nexye/internal/pkg/guard"
)

// ErrListPickupLocationsQueryIsNotConstructed is returned when a
// ListPickupLocationsQuery was not created via its constructor.
var ErrListPickupLocationsQueryIsNotConstructed = errs.NewValueIsRequiredError(
	"ListPickupLocationsQuery must be created via NewListPickupLocationsQuery constructor")

// ListPickupLocationsQuery retrieves the pickup locations registered
// with the carrier. Every order registers a fresh one, so this listing
// grows with order volume; it exists for operator diagnostics.
type ListPickupLocationsQuery struct {
	guard guard.ConstructorGuard
}

// NewListPickupLocationsQuery creates the parameterless query.
func NewListPickupLocationsQuery() ListPickupLocationsQuery {
	return ListPickupLocationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListPickupLocationsQuery) Validate() error {
	return q.guard.Validate(ErrListPickupLocationsQueryIsNotConstructed)
}

// ListPickupLocationsQueryResponse is one registered pickup location.
type ListPickupLocationsQueryResponse struct {
	ID         int64
	PickupName string
	Address    string
	City       string
	State      string
	PinCode    string
}
