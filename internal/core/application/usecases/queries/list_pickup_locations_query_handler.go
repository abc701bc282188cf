package queries

import (
	"context"

	"nexye/internal/core/ports"
)

// ListPickupLocationsQueryHandler reads the pickup-location registry
// straight from the carrier API; nothing is cached locally.
type ListPickupLocationsQueryHandler struct {
	carrier ports.CarrierGateway
}

// NewListPickupLocationsQueryHandler creates the handler.
func NewListPickupLocationsQueryHandler(carrier ports.CarrierGateway) ListPickupLocationsQueryHandler {
	return ListPickupLocationsQueryHandler{carrier: carrier}
}

// Handle returns the registered pickup locations in carrier order.
func (h ListPickupLocationsQueryHandler) Handle(
	ctx context.Context,
	query ListPickupLocationsQuery,
) ([]ListPickupLocationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	locations, err := h.carrier.ListPickupLocations(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]ListPickupLocationsQueryResponse, len(locations))
	for i, location := range locations {
		response[i] = ListPickupLocationsQueryResponse{
			ID:         location.ID,
			PickupName: location.PickupName,
			Address:    location.Address,
			City:       location.City,
			State:      location.State,
			PinCode:    location.PinCode,
		}
	}
	return response, nil
}
