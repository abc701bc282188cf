// Package queries contains the read-side use cases: the admin order
// history and pickup-location listings and the public price quote.
package queries

import (
	"time"

	"nexye/internal/pkg/errs"
	"nexye/internal/pkg/guard"
)

// ErrGetOrdersQueryIsNotConstructed is returned when a GetOrdersQuery
// was not created via NewGetOrdersQuery.
var ErrGetOrdersQueryIsNotConstructed = errs.NewValueIsRequiredError(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor")

// GetOrdersQuery retrieves the terminal order records for the admin
// history view, newest first.
type GetOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates the parameterless history query.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// GetOrdersQueryResponse is one order record in the history listing.
// Failed orders carry the failure reason and no tracking code.
type GetOrdersQueryResponse struct {
	OrderID         string
	SenderName      string
	ReceiverName    string
	ReceiverPincode string
	Weight          float64
	DeclaredValue   float64
	ServiceType     string
	Status          string
	AWBCode         string
	CourierName     string
	FailureReason   string
	CreatedAt       time.Time
}
