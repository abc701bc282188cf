package shiprocket

import (
	"context"
	"encoding/json"
	"net/http"

	"nexye/internal/core/domain/model/order"
	"nexye/internal/core/ports"
	"nexye/internal/pkg/errs"
)

// CreatePickupLocation registers a pickup address built from the
// order's sender and resolved city/state, named Sender-<orderId> so
// repeated orders never collide upstream. Created locations are never
// garbage-collected; uniqueness makes them cheap to leave behind.
func (g *Gateway) CreatePickupLocation(ctx context.Context, o *order.Order) (string, error) {
	token, err := g.tokens.Token(ctx)
	if err != nil {
		return "", err
	}

	pickupName := o.ID().PickupName()
	payload := pickupRequest{
		PickupLocation: pickupName,
		Name:           o.Sender().Name(),
		Email:          o.Sender().Email(),
		Phone:          o.Sender().Phone(),
		Address:        o.Sender().Address(),
		Address2:       "",
		City:           o.SenderCity(),
		State:          o.SenderState(),
		Country:        "India",
		PinCode:        o.Sender().Pincode().String(),
	}

	req, err := g.client.newRequest(ctx, http.MethodPost,
		"/v1/external/settings/company/addpickup", token, payload)
	if err != nil {
		return "", err
	}

	status, body, err := g.client.do(req)
	if err != nil {
		return "", errs.NewProvisioningErrorWithCause("Failed to create pickup location.", err)
	}
	if status < 200 || status >= 300 {
		var decoded pickupResponse
		_ = json.Unmarshal(body, &decoded)
		message := decoded.Message
		if message == "" {
			message = "Failed to create pickup location."
		}
		return "", errs.NewProvisioningError(message)
	}

	return pickupName, nil
}

// ListPickupLocations returns the pickup addresses registered with the
// carrier. Diagnostic use only; the pipeline never reuses them.
func (g *Gateway) ListPickupLocations(ctx context.Context) ([]ports.PickupLocation, error) {
	token, err := g.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	req, err := g.client.newRequest(ctx, http.MethodGet,
		"/v1/external/settings/company/pickup", token, nil)
	if err != nil {
		return nil, err
	}

	status, body, err := g.client.do(req)
	if err != nil {
		return nil, err
	}

	var decoded pickupListResponse
	_ = json.Unmarshal(body, &decoded)

	if status < 200 || status >= 300 {
		message := decoded.Message
		if message == "" {
			message = "Failed to fetch pickup locations"
		}
		return nil, errs.NewProvisioningError(message)
	}

	locations := make([]ports.PickupLocation, 0, len(decoded.Data.ShippingAddress))
	for _, addr := range decoded.Data.ShippingAddress {
		locations = append(locations, ports.PickupLocation{
			ID:         addr.ID,
			PickupName: addr.PickupLocation,
			Address:    addr.Address,
			City:       addr.City,
			State:      addr.State,
			PinCode:    string(addr.PinCode),
		})
	}
	return locations, nil
}
