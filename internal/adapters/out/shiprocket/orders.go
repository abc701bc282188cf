package shiprocket

import (
	"context"
	"encoding/json"
	"net/http"

	"nexye/internal/core/domain/model/order"
	"nexye/internal/core/ports"
	"nexye/internal/pkg/errs"
)

// hsnPrintedBooks is the HSN code carried by every synthetic line
// item, as the portal has always declared shipments.
const hsnPrintedBooks = 49011000

// CreateShipmentOrder submits the full adhoc order payload assembled
// from the aggregate: billing from the sender, shipping from the
// receiver, one synthetic line item from the description and declared
// price, always prepaid. A non-1 application status code is an
// UpstreamOrderError carrying the raw upstream payload.
func (g *Gateway) CreateShipmentOrder(ctx context.Context, o *order.Order) (ports.ShipmentOrderResult, error) {
	token, err := g.tokens.Token(ctx)
	if err != nil {
		return ports.ShipmentOrderResult{}, err
	}

	dims := o.Parcel().Dimensions()
	payload := orderRequest{
		OrderID:        o.ID().String(),
		OrderDate:      o.OrderDate(),
		PickupLocation: o.PickupName(),
		Channel:        "Website",
		Comment:        o.Parcel().Description(),

		BillingCustomerName: o.Sender().FirstName(),
		BillingLastName:     o.Sender().LastName(),
		BillingAddress:      o.Sender().Address(),
		BillingAddress2:     "",
		BillingCity:         o.SenderCity(),
		BillingState:        o.SenderState(),
		BillingCountry:      "India",
		BillingEmail:        o.Sender().Email(),
		BillingPhone:        o.Sender().Phone(),
		BillingPincode:      o.Sender().Pincode().String(),

		ShippingCustomerName: o.Receiver().FirstName(),
		ShippingLastName:     o.Receiver().LastName(),
		ShippingAddress:      o.Receiver().Address(),
		ShippingAddress2:     "",
		ShippingCity:         o.ReceiverCity(),
		ShippingState:        o.ReceiverState(),
		ShippingCountry:      "India",
		ShippingEmail:        o.Receiver().Email(),
		ShippingPhone:        o.Receiver().Phone(),
		ShippingPincode:      o.Receiver().Pincode().String(),
		ShippingIsBilling:    false,

		OrderItems: []orderItem{{
			Name:         o.Parcel().Description(),
			SKU:          "SKU-" + o.ID().String(),
			Units:        1,
			SellingPrice: o.Parcel().DeclaredValue(),
			Discount:     0,
			Tax:          0,
			HSN:          hsnPrintedBooks,
		}},

		PaymentMethod:      "Prepaid",
		ShippingCharges:    0,
		GiftwrapCharges:    0,
		TransactionCharges: 0,
		TotalDiscount:      0,
		SubTotal:           o.Parcel().DeclaredValue(),

		Length:  dims.Length(),
		Breadth: dims.Breadth(),
		Height:  dims.Height(),
		Weight:  o.Parcel().Weight(),
	}

	req, err := g.client.newRequest(ctx, http.MethodPost,
		"/v1/external/orders/create/adhoc", token, payload)
	if err != nil {
		return ports.ShipmentOrderResult{}, err
	}

	_, body, err := g.client.do(req)
	if err != nil {
		return ports.ShipmentOrderResult{}, err
	}

	var decoded orderResponse
	_ = json.Unmarshal(body, &decoded)

	if decoded.StatusCode != 1 {
		return ports.ShipmentOrderResult{}, errs.NewUpstreamOrderError(
			"Failed to create order in Shiprocket", json.RawMessage(body))
	}

	return ports.ShipmentOrderResult{
		OrderID:    int64(decoded.OrderID),
		ShipmentID: int64(decoded.ShipmentID),
		Raw:        json.RawMessage(body),
	}, nil
}
