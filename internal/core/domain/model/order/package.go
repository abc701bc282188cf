package order

import (
	"fmt"
	"strings"

	"nexye/internal/core/domain/model/kernel"
	"nexye/internal/pkg/errs"
	"nexye/internal/pkg/guard"
)

// ErrPackageIsNotConstructed is returned when a Package instance was not
// created through the NewPackage constructor.
var ErrPackageIsNotConstructed = errs.NewValueIsRequiredError(
	"package must be created via NewPackage constructor")

// Package describes the parcel being shipped: weight in kilograms,
// dimensions in centimetres, a free-form description, and the declared
// value in rupees.
type Package struct {
	weight        float64
	dimensions    kernel.Dimensions
	description   string
	declaredValue float64

	guard guard.ConstructorGuard
}

// NewPackage creates a Package with validation. Weight and declared
// value must be strictly positive; dimensions must be constructed
// (ParseDimensions guarantees that, including its permissive default).
func NewPackage(weight float64, dimensions kernel.Dimensions, description string, declaredValue float64) (Package, error) {
	if weight <= 0 {
		return Package{}, errs.NewValueIsInvalidErrorWithCause("packageWeight",
			fmt.Errorf("%v is not greater than 0", weight))
	}
	if err := dimensions.Validate(); err != nil {
		return Package{}, err
	}
	if strings.TrimSpace(description) == "" {
		return Package{}, errs.NewValueIsRequiredError("description")
	}
	if declaredValue <= 0 {
		return Package{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is not greater than 0", declaredValue))
	}

	return Package{
		weight:        weight,
		dimensions:    dimensions,
		description:   description,
		declaredValue: declaredValue,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Package was properly constructed.
func (p Package) Validate() error {
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

// Weight returns the parcel weight in kilograms.
func (p Package) Weight() float64 {
	return p.weight
}

// Dimensions returns the parcel dimensions.
func (p Package) Dimensions() kernel.Dimensions {
	return p.dimensions
}

// Description returns the parcel contents description.
func (p Package) Description() string {
	return p.description
}

// DeclaredValue returns the declared parcel value in rupees.
func (p Package) DeclaredValue() float64 {
	return p.declaredValue
}
