package ports

import (
	"context"
	"encoding/json"

	"nexye/internal/core/domain/model/courier"
	"nexye/internal/core/domain/model/order"
)

// ShipmentOrderResult carries the ids the carrier assigns to an accepted
// shipment order, plus the raw upstream payload for transparency.
type ShipmentOrderResult struct {
	OrderID    int64
	ShipmentID int64
	Raw        json.RawMessage
}

// RateCriteria is the query for the carrier's serviceability endpoint.
// COD is always 0 (prepaid) in this portal.
type RateCriteria struct {
	PickupPostcode   string
	DeliveryPostcode string
	Weight           float64
	Length           float64
	Breadth          float64
	Height           float64
	DeclaredValue    float64
	COD              int
}

// AWBAssignment carries the tracking code and carrier name returned by
// the AWB assignment endpoint, plus the raw upstream payload.
type AWBAssignment struct {
	AWBCode     string
	CourierName string
	Raw         json.RawMessage
}

// PickupLocation is one registered pickup address as listed by the
// carrier.
type PickupLocation struct {
	ID         int64
	PickupName string
	Address    string
	City       string
	State      string
	PinCode    string
}

// CarrierGateway is the outbound contract to the shipping aggregator's
// API. Implementations authenticate each call through the TokenProvider
// and surface upstream rejections as the matching pipeline error kind.
type CarrierGateway interface {
	// CreatePickupLocation registers a pickup address derived from the
	// order's sender and resolved city/state, named uniquely per order.
	// Returns the registered pickup-location name.
	CreatePickupLocation(ctx context.Context, o *order.Order) (string, error)

	// ListPickupLocations returns the pickup addresses registered with
	// the carrier. Diagnostic use only; the pipeline never reuses them.
	ListPickupLocations(ctx context.Context) ([]PickupLocation, error)

	// CreateShipmentOrder submits the full shipment payload assembled
	// from the order aggregate. A non-success upstream status code is an
	// UpstreamOrderError carrying the raw payload.
	CreateShipmentOrder(ctx context.Context, o *order.Order) (ShipmentOrderResult, error)

	// GetRates queries serviceable couriers for the criteria and maps
	// the response 1:1 into quotes, preserving upstream order.
	GetRates(ctx context.Context, criteria RateCriteria) ([]courier.Quote, error)

	// AssignAWB asks the selected courier to assign a tracking code to
	// the shipment. A non-1 assignment status is an AssignmentError
	// carrying the raw payload.
	AssignAWB(ctx context.Context, shipmentID int64, courierID int) (AWBAssignment, error)
}
