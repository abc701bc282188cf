package kernel

import (
	"fmt"
	"strings"
	"time"

	"nexye/internal/pkg/errs"
)

// OrderIDPrefix is the brand prefix carried by every locally generated
// order identifier.
const OrderIDPrefix = "NEXYE-"

// OrderID is the locally generated order identifier in the form
// NEXYE-<epochMillis>. It is unique per order submission and doubles as
// the upstream channel order id and the pickup-location name seed.
type OrderID string

// NewOrderID generates an OrderID from the given instant.
func NewOrderID(now time.Time) OrderID {
	return OrderID(fmt.Sprintf("%s%d", OrderIDPrefix, now.UnixMilli()))
}

// OrderIDFromString restores an OrderID from its persisted form.
func OrderIDFromString(raw string) (OrderID, error) {
	id := OrderID(raw)
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

// Validate checks the identifier carries the expected prefix and a
// non-empty suffix.
func (id OrderID) Validate() error {
	s := string(id)
	if !strings.HasPrefix(s, OrderIDPrefix) || len(s) == len(OrderIDPrefix) {
		return errs.NewValueIsInvalidError("orderId")
	}
	return nil
}

// PickupName derives the unique upstream pickup-location name for this
// order. Uniqueness per order keeps repeated submissions from colliding
// in the carrier's pickup-location registry.
func (id OrderID) PickupName() string {
	return "Sender-" + string(id)
}

// String returns the identifier text.
func (id OrderID) String() string {
	return string(id)
}
