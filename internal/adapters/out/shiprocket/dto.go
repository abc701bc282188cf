package shiprocket

import (
	"encoding/json"
	"strconv"
	"strings"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

type pickupRequest struct {
	PickupLocation string `json:"pickup_location"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	Address2       string `json:"address_2"`
	City           string `json:"city"`
	State          string `json:"state"`
	Country        string `json:"country"`
	PinCode        string `json:"pin_code"`
}

type pickupResponse struct {
	Message string `json:"message"`
}

type pickupListResponse struct {
	Data struct {
		ShippingAddress []struct {
			ID             int64      `json:"id"`
			PickupLocation string     `json:"pickup_location"`
			Address        string     `json:"address"`
			City           string     `json:"city"`
			State          string     `json:"state"`
			PinCode        flexString `json:"pin_code"`
		} `json:"shipping_address"`
	} `json:"data"`
	Message string `json:"message"`
}

type orderItem struct {
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	Units        int     `json:"units"`
	SellingPrice float64 `json:"selling_price"`
	Discount     float64 `json:"discount"`
	Tax          float64 `json:"tax"`
	HSN          int     `json:"hsn"`
}

type orderRequest struct {
	OrderID        string `json:"order_id"`
	OrderDate      string `json:"order_date"`
	PickupLocation string `json:"pickup_location"`
	Channel        string `json:"channel"`
	Comment        string `json:"comment"`

	BillingCustomerName string `json:"billing_customer_name"`
	BillingLastName     string `json:"billing_last_name"`
	BillingAddress      string `json:"billing_address"`
	BillingAddress2     string `json:"billing_address_2"`
	BillingCity         string `json:"billing_city"`
	BillingState        string `json:"billing_state"`
	BillingCountry      string `json:"billing_country"`
	BillingEmail        string `json:"billing_email"`
	BillingPhone        string `json:"billing_phone"`
	BillingPincode      string `json:"billing_pincode"`

	ShippingCustomerName string `json:"shipping_customer_name"`
	ShippingLastName     string `json:"shipping_last_name"`
	ShippingAddress      string `json:"shipping_address"`
	ShippingAddress2     string `json:"shipping_address_2"`
	ShippingCity         string `json:"shipping_city"`
	ShippingState        string `json:"shipping_state"`
	ShippingCountry      string `json:"shipping_country"`
	ShippingEmail        string `json:"shipping_email"`
	ShippingPhone        string `json:"shipping_phone"`
	ShippingPincode      string `json:"shipping_pincode"`
	ShippingIsBilling    bool   `json:"shipping_is_billing"`

	OrderItems []orderItem `json:"order_items"`

	PaymentMethod      string  `json:"payment_method"`
	ShippingCharges    float64 `json:"shipping_charges"`
	GiftwrapCharges    float64 `json:"giftwrap_charges"`
	TransactionCharges float64 `json:"transaction_charges"`
	TotalDiscount      float64 `json:"total_discount"`
	SubTotal           float64 `json:"sub_total"`

	Length  float64 `json:"length"`
	Breadth float64 `json:"breadth"`
	Height  float64 `json:"height"`
	Weight  float64 `json:"weight"`
}

type orderResponse struct {
	StatusCode int     `json:"status_code"`
	OrderID    flexInt `json:"order_id"`
	ShipmentID flexInt `json:"shipment_id"`
	Message    string  `json:"message"`
}

type serviceabilityResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AvailableCourierCompanies []courierCompanyDTO `json:"available_courier_companies"`
	} `json:"data"`
}

type courierCompanyDTO struct {
	CourierCompanyID   int        `json:"courier_company_id"`
	CourierName        string     `json:"courier_name"`
	IsSurfaceAvailable flexBool   `json:"is_surface_available"`
	IsAirAvailable     flexBool   `json:"is_air_available"`
	Rate               flexFloat  `json:"rate"`
	FreightCharge      flexFloat  `json:"freight_charge"`
	AirRate            flexFloat  `json:"air_rate"`
	AirFreightCharge   flexFloat  `json:"air_freight_charge"`
	ETD                flexString `json:"etd"`
	AirETD             flexString `json:"air_etd"`
}

type awbRequest struct {
	ShipmentID int64 `json:"shipment_id"`
	CourierID  int   `json:"courier_id"`
}

type awbResponse struct {
	AWBAssignStatus int    `json:"awb_assign_status"`
	Message         string `json:"message"`
	Response        struct {
		Data struct {
			AWBCode     string `json:"awb_code"`
			CourierName string `json:"courier_name"`
		} `json:"data"`
	} `json:"response"`
}

// flexFloat decodes numeric fields the upstream sends as numbers or
// strings. Unparsable values decode to zero, matching the historical
// parseFloat-or-0 fallback.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	*f = 0

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexFloat(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, convErr := strconv.ParseFloat(strings.TrimSpace(s), 64); convErr == nil {
			*f = flexFloat(n)
		}
	}
	return nil
}

// flexInt decodes id fields that may arrive as numbers or strings.
type flexInt int64

func (i *flexInt) UnmarshalJSON(data []byte) error {
	var f flexFloat
	if err := f.UnmarshalJSON(data); err != nil {
		return err
	}
	*i = flexInt(f)
	return nil
}

// flexBool decodes availability flags that may arrive as booleans,
// 0/1 numbers or strings.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	*b = false

	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		*b = flexBool(v)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*b = n != 0
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		cleaned := strings.ToLower(strings.TrimSpace(s))
		*b = cleaned == "true" || cleaned == "1"
	}
	return nil
}

// flexString decodes text fields that may arrive as strings or
// numbers (estimated-days and pin codes do both).
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	*s = ""

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	var v string
	if err := json.Unmarshal(data, &v); err == nil {
		*s = flexString(v)
		return nil
	}

	*s = flexString(trimmed)
	return nil
}
