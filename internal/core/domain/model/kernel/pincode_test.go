package kernel_test

import (
	"testing"

	"nexye/internal/core/domain/model/kernel"
	"nexye/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPincode(t *testing.T) {
	t.Run("accepts_exactly_six_digits", func(t *testing.T) {
		p, err := kernel.NewPincode("110001")

		require.NoError(t, err)
		assert.Equal(t, "110001", p.String())
		require.NoError(t, p.Validate())
	})

	t.Run("trims_surrounding_whitespace", func(t *testing.T) {
		p, err := kernel.NewPincode("  400001 ")

		require.NoError(t, err)
		assert.Equal(t, "400001", p.String())
	})

	t.Run("rejects_invalid_input", func(t *testing.T) {
		invalid := []string{"", "12345", "1234567", "11000a", "11 001", "ABCDEF"}

		for _, raw := range invalid {
			_, err := kernel.NewPincode(raw)
			require.Error(t, err, "input %q", raw)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var p kernel.Pincode
		require.Error(t, p.Validate())
	})
}
