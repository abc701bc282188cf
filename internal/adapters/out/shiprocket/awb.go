package shiprocket

import (
	"context"
	"encoding/json"
	"net/http"

	"nexye/internal/core/ports"
	"nexye/internal/pkg/errs"
)

// AssignAWB asks the selected courier to assign a tracking code to the
// shipment. Only the application-level awb_assign_status flag decides
// the outcome; the upstream has been seen reporting success with a
// non-2xx transport status.
func (g *Gateway) AssignAWB(ctx context.Context, shipmentID int64, courierID int) (ports.AWBAssignment, error) {
	token, err := g.tokens.Token(ctx)
	if err != nil {
		return ports.AWBAssignment{}, err
	}

	req, err := g.client.newRequest(ctx, http.MethodPost,
		"/v1/external/courier/assign/awb", token, awbRequest{
			ShipmentID: shipmentID,
			CourierID:  courierID,
		})
	if err != nil {
		return ports.AWBAssignment{}, err
	}

	_, body, err := g.client.do(req)
	if err != nil {
		return ports.AWBAssignment{}, err
	}

	var decoded awbResponse
	_ = json.Unmarshal(body, &decoded)

	if decoded.AWBAssignStatus != 1 {
		return ports.AWBAssignment{}, errs.NewAssignmentError(
			"Failed to assign AWB in Shiprocket", json.RawMessage(body))
	}

	return ports.AWBAssignment{
		AWBCode:     decoded.Response.Data.AWBCode,
		CourierName: decoded.Response.Data.CourierName,
		Raw:         json.RawMessage(body),
	}, nil
}
