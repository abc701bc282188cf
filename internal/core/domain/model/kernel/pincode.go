package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"nexye/internal/pkg/errs"
)

var pincodePattern = regexp.MustCompile(`^\d{6}$`)

// Pincode is a validated 6-digit Indian postal code.
// The zero value is invalid - use NewPincode to create instances.
type Pincode string

// NewPincode creates a Pincode from raw input. Surrounding whitespace is
// trimmed before validation. Anything that is not exactly 6 digits is
// rejected without touching the network.
func NewPincode(raw string) (Pincode, error) {
	cleaned := strings.TrimSpace(raw)
	if !pincodePattern.MatchString(cleaned) {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"pincode",
			fmt.Errorf("%s must be exactly 6 digits", raw),
		)
	}
	return Pincode(cleaned), nil
}

// Validate checks that the pincode holds exactly 6 digits.
func (p Pincode) Validate() error {
	if !pincodePattern.MatchString(string(p)) {
		return errs.NewValueIsInvalidError("pincode")
	}
	return nil
}

// String returns the pincode digits.
func (p Pincode) String() string {
	return string(p)
}
