package http

import (
	"encoding/json"
	"time"
)

// submitOrderRequest carries the raw order form. Weight, dimensions and
// price stay raw: the portal form has historically sent them as numbers
// or strings interchangeably, and dimensions as an object or a "LxBxH"
// string.
type submitOrderRequest struct {
	SenderName    string `json:"senderName"`
	SenderPhone   string `json:"senderPhone"`
	SenderAddress string `json:"senderAddress"`
	SenderPincode string `json:"senderPincode"`
	SenderEmail   string `json:"senderEmail"`

	ReceiverName    string `json:"receiverName"`
	ReceiverPhone   string `json:"receiverPhone"`
	ReceiverAddress string `json:"receiverAddress"`
	ReceiverPincode string `json:"receiverPincode"`
	ReceiverEmail   string `json:"receiverEmail"`

	PackageWeight json.RawMessage `json:"packageWeight"`
	Dimensions    json.RawMessage `json:"dimensions"`
	Description   string          `json:"description"`
	ServiceType   string          `json:"serviceType"`
	Price         json.RawMessage `json:"price"`
}

type submitOrderResponse struct {
	Message           string          `json:"message"`
	OrderID           string          `json:"orderId"`
	ShiprocketOrderID int64           `json:"shiprocketOrderId"`
	ShipmentID        int64           `json:"shipmentId"`
	AWBCode           string          `json:"awbCode"`
	CourierName       string          `json:"courierName"`
	Rate              float64         `json:"rate"`
	EstimatedDelivery string          `json:"estimatedDelivery"`
	ShiprocketOrder   json.RawMessage `json:"shiprocketResponse,omitempty"`
	AssignAwb         json.RawMessage `json:"assignAwbResponse,omitempty"`
}

// failureResponse is the {success:false, message} shape used for
// validation, lookup, provisioning and rate failures, and for auth
// failures with a 401.
type failureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// upstreamFailureResponse carries the raw upstream payload when the
// carrier rejected an order creation or AWB assignment.
type upstreamFailureResponse struct {
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
}

type serverErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type priceResponse struct {
	WeightKg  float64 `json:"weight"`
	Price     int     `json:"price"`
	Breakdown string  `json:"breakdown"`
}

type sendOtpRequest struct {
	Email string `json:"email"`
}

type verifyOtpRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type verifyOtpResponse struct {
	Message  string `json:"message"`
	Verified bool   `json:"verified"`
	Token    string `json:"token,omitempty"`
}

type pickupLocationResponse struct {
	ID         int64  `json:"id"`
	PickupName string `json:"pickupLocation"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PinCode    string `json:"pinCode"`
}

type orderRecordResponse struct {
	OrderID         string    `json:"orderId"`
	SenderName      string    `json:"senderName"`
	ReceiverName    string    `json:"receiverName"`
	ReceiverPincode string    `json:"receiverPincode"`
	Weight          float64   `json:"weight"`
	DeclaredValue   float64   `json:"declaredValue"`
	ServiceType     string    `json:"serviceType"`
	Status          string    `json:"status"`
	AWBCode         string    `json:"awbCode,omitempty"`
	CourierName     string    `json:"courierName,omitempty"`
	FailureReason   string    `json:"failureReason,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
