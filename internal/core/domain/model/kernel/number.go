package kernel

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"nexye/internal/pkg/errs"
)

// ParseNumber parses a JSON value that may arrive as a number or a
// numeric string. The order form historically submits both shapes.
func ParseNumber(raw json.RawMessage) (float64, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return 0, errs.NewValueIsRequiredError("number")
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		v, convErr := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if convErr != nil {
			return 0, errs.NewValueIsInvalidErrorWithCause("number",
				fmt.Errorf("%q is not numeric", s))
		}
		return v, nil
	}

	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("number", err)
	}
	return v, nil
}

// ParsePositiveNumber parses like ParseNumber and additionally requires
// the value to be strictly positive.
func ParsePositiveNumber(raw json.RawMessage, paramName string) (float64, error) {
	v, err := ParseNumber(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	if v <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%v is not greater than 0", v))
	}
	return v, nil
}
