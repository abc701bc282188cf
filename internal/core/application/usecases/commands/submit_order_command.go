// Package commands contains the write-side use cases: order submission
// (the fulfillment pipeline) and the OTP login pair.
package commands

import (
	"encoding/json"
	"strings"

	"nexye/internal/core/domain/model/courier"
	"nexye/internal/core/domain/model/kernel"
	"nexye/internal/core/domain/model/order"
	"nexye/internal/pkg/errs"
	"nexye/internal/pkg/guard"
)

// ErrSubmitOrderCommandIsNotConstructed is returned when a
// SubmitOrderCommand was not created via NewSubmitOrderCommand.
var ErrSubmitOrderCommandIsNotConstructed = errs.NewValueIsRequiredError(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor")

// SubmitOrderParams carries the raw order-form fields exactly as they
// arrive over the wire. Weight, Price and Dimensions stay raw because
// the form historically submits them as numbers, numeric strings or
// delimited strings interchangeably.
type SubmitOrderParams struct {
	SenderName    string
	SenderPhone   string
	SenderAddress string
	SenderPincode string
	SenderEmail   string

	ReceiverName    string
	ReceiverPhone   string
	ReceiverAddress string
	ReceiverPincode string
	ReceiverEmail   string

	Weight      json.RawMessage
	Dimensions  json.RawMessage
	Description string
	Price       json.RawMessage

	ServiceType string
}

// SubmitOrderCommand is a fully validated request to run the
// fulfillment pipeline. Construction performs every local check the
// pipeline requires, so a constructed command never fails validation
// later and no network call happens for malformed input.
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	sender      order.Party
	receiver    order.Party
	parcel      order.Package
	serviceType courier.ServiceType

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand validates the raw form fields and builds the
// command. Missing required fields are reported together in one
// ValidationError; weight and price must parse as strictly positive;
// pincodes must be exactly 6 digits. Unparseable dimensions silently
// become the default parcel, preserving the historical form contract.
func NewSubmitOrderCommand(p SubmitOrderParams) (SubmitOrderCommand, error) {
	if missing := missingFields(p); len(missing) > 0 {
		return SubmitOrderCommand{}, errs.NewMissingFieldsError(missing)
	}

	senderPincode, err := kernel.NewPincode(p.SenderPincode)
	if err != nil {
		return SubmitOrderCommand{}, errs.NewValidationError("Sender pincode must be exactly 6 digits")
	}
	receiverPincode, err := kernel.NewPincode(p.ReceiverPincode)
	if err != nil {
		return SubmitOrderCommand{}, errs.NewValidationError("Receiver pincode must be exactly 6 digits")
	}

	weight, err := kernel.ParsePositiveNumber(p.Weight, "packageWeight")
	if err != nil {
		return SubmitOrderCommand{}, errs.NewValidationError("Package weight must be a positive number")
	}
	price, err := kernel.ParsePositiveNumber(p.Price, "price")
	if err != nil {
		return SubmitOrderCommand{}, errs.NewValidationError("Price must be a positive number")
	}

	sender, err := order.NewParty(p.SenderName, p.SenderPhone, p.SenderAddress, senderPincode, p.SenderEmail)
	if err != nil {
		return SubmitOrderCommand{}, errs.NewValidationError(err.Error())
	}
	receiver, err := order.NewParty(p.ReceiverName, p.ReceiverPhone, p.ReceiverAddress, receiverPincode, p.ReceiverEmail)
	if err != nil {
		return SubmitOrderCommand{}, errs.NewValidationError(err.Error())
	}

	parcel, err := order.NewPackage(weight, kernel.ParseDimensions(p.Dimensions), p.Description, price)
	if err != nil {
		return SubmitOrderCommand{}, errs.NewValidationError(err.Error())
	}

	return SubmitOrderCommand{
		sender:      sender,
		receiver:    receiver,
		parcel:      parcel,
		serviceType: courier.ParseServiceType(p.ServiceType),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// Sender returns the validated pickup-side party.
func (c SubmitOrderCommand) Sender() order.Party {
	return c.sender
}

// Receiver returns the validated delivery-side party.
func (c SubmitOrderCommand) Receiver() order.Party {
	return c.receiver
}

// Parcel returns the validated package.
func (c SubmitOrderCommand) Parcel() order.Package {
	return c.parcel
}

// ServiceType returns the normalized service tier.
func (c SubmitOrderCommand) ServiceType() courier.ServiceType {
	return c.serviceType
}

// missingFields reports the absent required fields in the order the
// form presents them, matching the historical error message.
func missingFields(p SubmitOrderParams) []string {
	checks := []struct {
		name  string
		value string
	}{
		{"senderName", p.SenderName},
		{"senderPhone", p.SenderPhone},
		{"senderAddress", p.SenderAddress},
		{"senderPincode", p.SenderPincode},
		{"senderEmail", p.SenderEmail},
		{"receiverName", p.ReceiverName},
		{"receiverPhone", p.ReceiverPhone},
		{"receiverAddress", p.ReceiverAddress},
		{"receiverPincode", p.ReceiverPincode},
		{"receiverEmail", p.ReceiverEmail},
		{"packageWeight", string(p.Weight)},
		{"description", p.Description},
		{"price", string(p.Price)},
	}

	var missing []string
	for _, c := range checks {
		trimmed := strings.TrimSpace(c.value)
		if trimmed == "" || trimmed == "null" {
			missing = append(missing, c.name)
		}
	}
	return missing
}
