package order

import (
	"errors"
	"fmt"
	"time"

	"nexye/internal/core/domain/model/courier"
	"nexye/internal/core/domain/model/kernel"
	"nexye/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through the NewOrder factory method.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for one booking request. It owns the
// lifecycle from validated input through the fulfillment pipeline to a
// terminal Done or Failed state, and records the artifacts each stage
// produces along the way.
//
// Invariants:
//   - id carries the NEXYE prefix and is unique per submission
//   - sender, receiver and parcel are validated value objects
//   - status only ever moves forward, or sideways into Failed
//   - upstream ids, tracking code and failure reason are only set by the
//     stage transition that produces them
type Order struct {
	id          kernel.OrderID
	sender      Party
	receiver    Party
	parcel      Package
	serviceType courier.ServiceType
	createdAt   time.Time
	status      Status

	// Resolved by the postal stage, after named fallbacks are applied.
	senderCity    string
	senderState   string
	receiverCity  string
	receiverState string

	// Produced by the upstream stages.
	pickupName      string
	upstreamOrderID int64
	shipmentID      int64
	awbCode         string
	courierName     string
	failureReason   string

	isConstructed bool
}

// NewOrder creates an Order from already validated parts. The order
// starts in Received status; MarkValidated records that input validation
// completed.
func NewOrder(
	id kernel.OrderID,
	sender Party,
	receiver Party,
	parcel Package,
	serviceType courier.ServiceType,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		sender.Validate(),
		receiver.Validate(),
		parcel.Validate(),
	); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &Order{
		id:            id,
		sender:        sender,
		receiver:      receiver,
		parcel:        parcel,
		serviceType:   serviceType,
		createdAt:     createdAt,
		status:        Received,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was created through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the locally generated order identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Sender returns the pickup-side party.
func (o *Order) Sender() Party {
	return o.sender
}

// Receiver returns the delivery-side party.
func (o *Order) Receiver() Party {
	return o.receiver
}

// Parcel returns the package being shipped.
func (o *Order) Parcel() Package {
	return o.parcel
}

// ServiceType returns the requested service tier.
func (o *Order) ServiceType() courier.ServiceType {
	return o.serviceType
}

// CreatedAt returns the submission instant.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// OrderDate returns the submission date in ISO form (yyyy-mm-dd), the
// format the carrier's order-creation endpoint expects.
func (o *Order) OrderDate() string {
	return o.createdAt.Format("2006-01-02")
}

// Status returns the current pipeline position.
func (o *Order) Status() Status {
	return o.status
}

// SenderCity returns the resolved pickup city.
func (o *Order) SenderCity() string { return o.senderCity }

// SenderState returns the resolved pickup state.
func (o *Order) SenderState() string { return o.senderState }

// ReceiverCity returns the resolved delivery city.
func (o *Order) ReceiverCity() string { return o.receiverCity }

// ReceiverState returns the resolved delivery state.
func (o *Order) ReceiverState() string { return o.receiverState }

// PickupName returns the upstream pickup-location name, set once the
// pickup stage completes.
func (o *Order) PickupName() string { return o.pickupName }

// UpstreamOrderID returns the carrier-side order id.
func (o *Order) UpstreamOrderID() int64 { return o.upstreamOrderID }

// ShipmentID returns the carrier-side shipment id.
func (o *Order) ShipmentID() int64 { return o.shipmentID }

// AWBCode returns the assigned tracking code.
func (o *Order) AWBCode() string { return o.awbCode }

// CourierName returns the carrier selected for the shipment.
func (o *Order) CourierName() string { return o.courierName }

// FailureReason returns the message recorded when the order failed.
func (o *Order) FailureReason() string { return o.failureReason }

// MarkValidated records that all input fields passed local validation.
func (o *Order) MarkValidated() error {
	return o.advanceTo(Validated)
}

// ResolveLocations records resolved city/state for both parties and
// advances to LocationsResolved. Values arrive with named fallbacks
// already applied by the orchestrator.
func (o *Order) ResolveLocations(senderCity, senderState, receiverCity, receiverState string) error {
	if err := o.advanceTo(LocationsResolved); err != nil {
		return err
	}
	o.senderCity = senderCity
	o.senderState = senderState
	o.receiverCity = receiverCity
	o.receiverState = receiverState
	return nil
}

// MarkAuthenticated records that a carrier token is available.
func (o *Order) MarkAuthenticated() error {
	return o.advanceTo(Authenticated)
}

// MarkPickupCreated records the unique upstream pickup-location name.
func (o *Order) MarkPickupCreated(pickupName string) error {
	if pickupName == "" {
		return errs.NewValueIsRequiredError("pickupName")
	}
	if err := o.advanceTo(PickupCreated); err != nil {
		return err
	}
	o.pickupName = pickupName
	return nil
}

// MarkOrderCreated records the carrier-side order and shipment ids.
func (o *Order) MarkOrderCreated(upstreamOrderID, shipmentID int64) error {
	if err := o.advanceTo(OrderCreated); err != nil {
		return err
	}
	o.upstreamOrderID = upstreamOrderID
	o.shipmentID = shipmentID
	return nil
}

// MarkRatesFetched records that courier quotes were retrieved.
func (o *Order) MarkRatesFetched() error {
	return o.advanceTo(RatesFetched)
}

// AssignAWB records the tracking code and carrier name.
func (o *Order) AssignAWB(awbCode, courierName string) error {
	if awbCode == "" {
		return errs.NewValueIsRequiredError("awbCode")
	}
	if err := o.advanceTo(AWBAssigned); err != nil {
		return err
	}
	o.awbCode = awbCode
	o.courierName = courierName
	return nil
}

// Complete moves the order into the successful terminal state.
func (o *Order) Complete() error {
	return o.advanceTo(Done)
}

// Fail moves the order into the Failed absorbing state, recording why.
// Earlier stages are not compensated: a pickup location or upstream
// order created before the failure stays upstream.
func (o *Order) Fail(reason string) error {
	next, err := o.status.Fail()
	if err != nil {
		return err
	}
	o.status = next
	o.failureReason = reason
	return nil
}

func (o *Order) advanceTo(expected Status) error {
	next, err := o.status.Advance()
	if err != nil {
		return err
	}
	if next != expected {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("cannot move from %s to %s", o.status, expected))
	}
	o.status = next
	return nil
}

// RestoreOrder reconstructs an order from persistence in a terminal
// state. Only terminal orders are persisted, so restoration accepts Done
// and Failed along with the recorded artifacts.
func RestoreOrder(
	id kernel.OrderID,
	sender Party,
	receiver Party,
	parcel Package,
	serviceType courier.ServiceType,
	createdAt time.Time,
	status Status,
	awbCode string,
	courierName string,
	failureReason string,
) (*Order, error) {
	o, err := NewOrder(id, sender, receiver, parcel, serviceType, createdAt)
	if err != nil {
		return nil, err
	}
	if !status.IsTerminal() {
		return nil, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a terminal status", status))
	}
	o.status = status
	o.awbCode = awbCode
	o.courierName = courierName
	o.failureReason = failureReason
	return o, nil
}
