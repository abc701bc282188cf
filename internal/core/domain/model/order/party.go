package order

import (
	"strings"

	"nexye/internal/core/domain/model/kernel"
	"nexye/internal/pkg/errs"
	"nexye/internal/pkg/guard"
)

// ErrPartyIsNotConstructed is returned when a Party instance was not
// created through the NewParty constructor.
var ErrPartyIsNotConstructed = errs.NewValueIsRequiredError(
	"party must be created via NewParty constructor")

// Party identifies one side of a shipment - the sender or the receiver.
// It is an immutable value object; every field is required and the
// pincode is validated on construction.
type Party struct {
	name    string
	phone   string
	address string
	pincode kernel.Pincode
	email   string

	guard guard.ConstructorGuard
}

// NewParty creates a Party with validation. All fields are required;
// the pincode must already be a valid kernel.Pincode.
func NewParty(name, phone, address string, pincode kernel.Pincode, email string) (Party, error) {
	if strings.TrimSpace(name) == "" {
		return Party{}, errs.NewValueIsRequiredError("name")
	}
	if strings.TrimSpace(phone) == "" {
		return Party{}, errs.NewValueIsRequiredError("phone")
	}
	if strings.TrimSpace(address) == "" {
		return Party{}, errs.NewValueIsRequiredError("address")
	}
	if err := pincode.Validate(); err != nil {
		return Party{}, err
	}
	if strings.TrimSpace(email) == "" {
		return Party{}, errs.NewValueIsRequiredError("email")
	}

	return Party{
		name:    strings.TrimSpace(name),
		phone:   phone,
		address: address,
		pincode: pincode,
		email:   email,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Party was properly constructed.
func (p Party) Validate() error {
	return p.guard.Validate(ErrPartyIsNotConstructed)
}

// Name returns the party's full name as submitted.
func (p Party) Name() string {
	return p.name
}

// FirstName returns everything before the first space of the name.
// The carrier API wants names split; a single-word name has an empty
// last name.
func (p Party) FirstName() string {
	first, _, _ := strings.Cut(p.name, " ")
	return first
}

// LastName returns everything after the first space of the name, or the
// empty string for single-word names.
func (p Party) LastName() string {
	_, last, _ := strings.Cut(p.name, " ")
	return last
}

// Phone returns the contact phone number.
func (p Party) Phone() string {
	return p.phone
}

// Address returns the street address.
func (p Party) Address() string {
	return p.address
}

// Pincode returns the validated postal code.
func (p Party) Pincode() kernel.Pincode {
	return p.pincode
}

// Email returns the contact email.
func (p Party) Email() string {
	return p.email
}
