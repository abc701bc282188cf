package order

import (
	"fmt"

	"nexye/internal/pkg/errs"
)

// Status represents the position of an order in the fulfillment
// pipeline. The pipeline is strictly linear with a Failed absorbing
// state reachable from every non-terminal step:
//
//	Received -> Validated -> LocationsResolved -> Authenticated ->
//	PickupCreated -> OrderCreated -> RatesFetched -> AWBAssigned -> Done
//
// There are no back-edges: a failed step terminates the order without
// compensating earlier steps.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status of a freshly accepted request.
	Received

	// Validated means every input field passed local validation.
	Validated

	// LocationsResolved means both pincodes resolved to city/state.
	LocationsResolved

	// Authenticated means a carrier API token is in hand.
	Authenticated

	// PickupCreated means the uniquely named pickup location exists
	// upstream.
	PickupCreated

	// OrderCreated means the upstream shipment order was accepted.
	OrderCreated

	// RatesFetched means courier quotes were retrieved and one selected.
	RatesFetched

	// AWBAssigned means a tracking code was assigned by the courier.
	AWBAssigned

	// Done is the successful terminal state.
	Done

	// Failed is the absorbing terminal state reachable from every
	// non-terminal step.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "Unknown",
		Received:          "Received",
		Validated:         "Validated",
		LocationsResolved: "LocationsResolved",
		Authenticated:     "Authenticated",
		PickupCreated:     "PickupCreated",
		OrderCreated:      "OrderCreated",
		RatesFetched:      "RatesFetched",
		AWBAssigned:       "AWBAssigned",
		Done:              "Done",
		Failed:            "Failed",
	}
}

// Validate checks that the Status value is one of the defined pipeline
// states. Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if s < Received || s > Failed {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Done || s == Failed
}

// Advance transitions to the next pipeline step. Terminal states and
// invalid values cannot advance.
func (s Status) Advance() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is terminal and cannot advance", s))
	}
	return s + 1, nil
}

// Fail transitions to the Failed absorbing state. Every non-terminal
// step may fail; Done cannot retroactively fail.
func (s Status) Fail() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is terminal and cannot fail", s))
	}
	return Failed, nil
}
