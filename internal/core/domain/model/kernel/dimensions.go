package kernel

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"nexye/internal/pkg/errs"
	"nexye/internal/pkg/guard"
)

// Default parcel dimensions in centimetres, substituted when the order
// form sends nothing usable. This permissive fallback is a compatibility
// requirement of the original order flow, not a validation gap to close.
const (
	DefaultLength  = 10
	DefaultBreadth = 10
	DefaultHeight  = 5
)

// ErrDimensionsAreNotConstructed is returned when a Dimensions instance
// was not created through NewDimensions or ParseDimensions.
var ErrDimensionsAreNotConstructed = errs.NewValueIsRequiredError(
	"dimensions must be created via NewDimensions or ParseDimensions")

var dimensionsSeparator = regexp.MustCompile(`[x*]`)

// Dimensions holds parcel length, breadth and height in centimetres.
// It is an immutable value object; each side is strictly positive.
type Dimensions struct {
	length  float64
	breadth float64
	height  float64

	guard guard.ConstructorGuard
}

// NewDimensions creates Dimensions from explicit sides. Each side must be
// strictly positive.
func NewDimensions(length, breadth, height float64) (Dimensions, error) {
	for name, v := range map[string]float64{
		"length":  length,
		"breadth": breadth,
		"height":  height,
	} {
		if v <= 0 {
			return Dimensions{}, errs.NewValueIsInvalidErrorWithCause(name,
				fmt.Errorf("%v is not greater than 0", v))
		}
	}

	return Dimensions{
		length:  length,
		breadth: breadth,
		height:  height,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// DefaultDimensions returns the 10x10x5 cm fallback parcel.
func DefaultDimensions() Dimensions {
	d, _ := NewDimensions(DefaultLength, DefaultBreadth, DefaultHeight)
	return d
}

// ParseDimensions converts raw order-form input into Dimensions. It never
// fails: the order form historically sent either an object with
// length/breadth/height fields or a delimited string like "10x20x5" or
// "10*20*5", and anything unusable silently becomes the default parcel.
//
// Object fields that are missing, non-numeric or non-positive fall back
// per field; a delimited string is used only when all three parts parse
// as positive numbers.
func ParseDimensions(raw json.RawMessage) Dimensions {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return DefaultDimensions()
	}

	var obj struct {
		Length  json.RawMessage `json:"length"`
		Breadth json.RawMessage `json:"breadth"`
		Height  json.RawMessage `json:"height"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && strings.HasPrefix(trimmed, "{") {
		d, err := NewDimensions(
			fieldOrDefault(obj.Length, DefaultLength),
			fieldOrDefault(obj.Breadth, DefaultBreadth),
			fieldOrDefault(obj.Height, DefaultHeight),
		)
		if err != nil {
			return DefaultDimensions()
		}
		return d
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if d, ok := parseDelimited(s); ok {
			return d
		}
	}

	return DefaultDimensions()
}

func fieldOrDefault(raw json.RawMessage, fallback float64) float64 {
	v, err := ParseNumber(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func parseDelimited(s string) (Dimensions, bool) {
	parts := dimensionsSeparator.Split(s, -1)
	if len(parts) != 3 {
		return Dimensions{}, false
	}

	sides := make([]float64, 0, 3)
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || v <= 0 {
			return Dimensions{}, false
		}
		sides = append(sides, v)
	}

	d, err := NewDimensions(sides[0], sides[1], sides[2])
	if err != nil {
		return Dimensions{}, false
	}
	return d, true
}

// Validate ensures the Dimensions instance was properly constructed.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

// Length returns the parcel length in centimetres.
func (d Dimensions) Length() float64 {
	return d.length
}

// Breadth returns the parcel breadth in centimetres.
func (d Dimensions) Breadth() float64 {
	return d.breadth
}

// Height returns the parcel height in centimetres.
func (d Dimensions) Height() float64 {
	return d.height
}
