package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"nexye/internal/core/domain/model/courier"
	"nexye/internal/core/domain/model/kernel"
	"nexye/internal/core/domain/model/order"
	"nexye/internal/core/ports"
	"nexye/internal/pkg/errs"
)

// Named fallback city/state pairs applied when a lookup service answers
// but leaves city or state blank. Distinct from the resolver's numeric
// range heuristic, which only runs when every service failed.
const (
	fallbackSenderCity    = "Delhi"
	fallbackSenderState   = "Delhi"
	fallbackReceiverCity  = "Sultanpur"
	fallbackReceiverState = "Uttar Pradesh"
)

// SubmitOrderResult is the terminal artifact of a successful pipeline
// run. Raw upstream payloads ride along for transparency; the order
// form surfaces the tracking code to the user.
type SubmitOrderResult struct {
	OrderID         string
	UpstreamOrderID int64
	ShipmentID      int64
	TrackingCode    string
	CourierName     string
	Rate            float64
	EstimatedDays   string

	OrderPayload      json.RawMessage
	AssignmentPayload json.RawMessage
}

// SubmitOrderCommandHandler drives the fulfillment pipeline for one
// order: postal resolution, carrier authentication, pickup
// provisioning, shipment creation, rate query and AWB assignment, in
// that order, each step fatal on failure.
//
// Failed steps are not compensated. A pickup location or upstream
// order created before a later failure stays upstream; pickup names
// are unique per order so repeats never collide.
type SubmitOrderCommandHandler struct {
	postal  ports.PostalResolver
	tokens  ports.TokenProvider
	carrier ports.CarrierGateway
	orders  ports.OrderRepository
	log     *slog.Logger
	now     func() time.Time
}

// NewSubmitOrderCommandHandler creates the pipeline handler.
func NewSubmitOrderCommandHandler(
	postal ports.PostalResolver,
	tokens ports.TokenProvider,
	carrier ports.CarrierGateway,
	orders ports.OrderRepository,
	log *slog.Logger,
) SubmitOrderCommandHandler {
	if log == nil {
		log = slog.Default()
	}
	return SubmitOrderCommandHandler{
		postal:  postal,
		tokens:  tokens,
		carrier: carrier,
		orders:  orders,
		log:     log,
		now:     time.Now,
	}
}

// Handle runs the pipeline to completion. The returned error, when
// non-nil, wraps exactly one pipeline sentinel so the transport layer
// can map it to a status code.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (SubmitOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return SubmitOrderResult{}, err
	}

	now := h.now()
	o, err := order.NewOrder(kernel.NewOrderID(now), cmd.Sender(), cmd.Receiver(), cmd.Parcel(),
		cmd.ServiceType(), now)
	if err != nil {
		return SubmitOrderResult{}, err
	}
	if err = o.MarkValidated(); err != nil {
		return SubmitOrderResult{}, err
	}

	h.log.InfoContext(ctx, "order received", "orderId", o.ID().String(),
		"senderPincode", cmd.Sender().Pincode().String(),
		"receiverPincode", cmd.Receiver().Pincode().String())

	senderLoc, err := h.postal.Resolve(ctx, cmd.Sender().Pincode().String())
	if err != nil {
		return h.fail(ctx, o, errs.NewLookupError(cmd.Sender().Pincode().String(),
			"Sender Pincode Error: "+err.Error()))
	}
	receiverLoc, err := h.postal.Resolve(ctx, cmd.Receiver().Pincode().String())
	if err != nil {
		return h.fail(ctx, o, errs.NewLookupError(cmd.Receiver().Pincode().String(),
			"Receiver Pincode Error: "+err.Error()))
	}
	if err = o.ResolveLocations(
		orFallback(senderLoc.City, fallbackSenderCity),
		orFallback(senderLoc.State, fallbackSenderState),
		orFallback(receiverLoc.City, fallbackReceiverCity),
		orFallback(receiverLoc.State, fallbackReceiverState),
	); err != nil {
		return SubmitOrderResult{}, err
	}

	if _, err = h.tokens.Token(ctx); err != nil {
		return h.fail(ctx, o, err)
	}
	if err = o.MarkAuthenticated(); err != nil {
		return SubmitOrderResult{}, err
	}

	pickupName, err := h.carrier.CreatePickupLocation(ctx, o)
	if err != nil {
		return h.fail(ctx, o, err)
	}
	if err = o.MarkPickupCreated(pickupName); err != nil {
		return SubmitOrderResult{}, err
	}

	created, err := h.carrier.CreateShipmentOrder(ctx, o)
	if err != nil {
		return h.fail(ctx, o, err)
	}
	if err = o.MarkOrderCreated(created.OrderID, created.ShipmentID); err != nil {
		return SubmitOrderResult{}, err
	}

	quotes, err := h.carrier.GetRates(ctx, rateCriteria(o))
	if err != nil {
		return h.fail(ctx, o, err)
	}
	if len(quotes) == 0 {
		return h.fail(ctx, o, errs.NewRateUnavailableError(
			"No courier services available for this route"))
	}
	if err = o.MarkRatesFetched(); err != nil {
		return SubmitOrderResult{}, err
	}

	// Historical selection policy: the upstream's first courier wins,
	// regardless of rate. See services.RateSelector for the cheapest
	// variant used by the price endpoint.
	selected := quotes[0]

	assignment, err := h.carrier.AssignAWB(ctx, o.ShipmentID(), selected.CourierCompanyID)
	if err != nil {
		return h.fail(ctx, o, err)
	}
	if err = o.AssignAWB(assignment.AWBCode, assignment.CourierName); err != nil {
		return SubmitOrderResult{}, err
	}
	if err = o.Complete(); err != nil {
		return SubmitOrderResult{}, err
	}

	h.persist(ctx, o)

	h.log.InfoContext(ctx, "order fulfilled", "orderId", o.ID().String(),
		"awb", o.AWBCode(), "courier", o.CourierName())

	rate, mode := selectedRate(selected)
	return SubmitOrderResult{
		OrderID:           o.ID().String(),
		UpstreamOrderID:   o.UpstreamOrderID(),
		ShipmentID:        o.ShipmentID(),
		TrackingCode:      o.AWBCode(),
		CourierName:       o.CourierName(),
		Rate:              rate,
		EstimatedDays:     selected.EstimatedDelivery(mode),
		OrderPayload:      created.Raw,
		AssignmentPayload: assignment.Raw,
	}, nil
}

// fail records the terminal failure on the order, persists the record
// best-effort and returns the pipeline error unchanged.
func (h *SubmitOrderCommandHandler) fail(ctx context.Context, o *order.Order, cause error) (SubmitOrderResult, error) {
	h.log.WarnContext(ctx, "order pipeline failed", "orderId", o.ID().String(),
		"status", o.Status().String(), "error", cause)

	if err := o.Fail(cause.Error()); err == nil {
		h.persist(ctx, o)
	}
	return SubmitOrderResult{}, cause
}

// persist stores the terminal order record. Persistence feeds the
// admin history view only, so a storage error never fails the request.
func (h *SubmitOrderCommandHandler) persist(ctx context.Context, o *order.Order) {
	if err := h.orders.Add(ctx, o); err != nil {
		h.log.WarnContext(ctx, "order record not persisted",
			"orderId", o.ID().String(), "error", err)
	}
}

func rateCriteria(o *order.Order) ports.RateCriteria {
	dims := o.Parcel().Dimensions()
	return ports.RateCriteria{
		PickupPostcode:   o.Sender().Pincode().String(),
		DeliveryPostcode: o.Receiver().Pincode().String(),
		Weight:           o.Parcel().Weight(),
		Length:           dims.Length(),
		Breadth:          dims.Breadth(),
		Height:           dims.Height(),
		DeclaredValue:    o.Parcel().DeclaredValue(),
		COD:              0,
	}
}

func selectedRate(q courier.Quote) (float64, courier.Mode) {
	if rate := q.SurfaceRate(); rate > 0 {
		return rate, courier.ModeSurface
	}
	return q.AirModeRate(), courier.ModeAir
}

func orFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
