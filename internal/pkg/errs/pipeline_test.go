package errs_test

import (
	"encoding/json"
	"testing"

	"nexye/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	t.Run("NewValidationError", func(t *testing.T) {
		err := errs.NewValidationError("Invalid package weight. Must be a positive number.")

		assert.Equal(t, "Invalid package weight. Must be a positive number.", err.Error())
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("NewMissingFieldsError", func(t *testing.T) {
		err := errs.NewMissingFieldsError([]string{"senderName", "receiverPhone"})

		assert.Equal(t, "Missing required fields: senderName, receiverPhone", err.Error())
		assert.Equal(t, []string{"senderName", "receiverPhone"}, err.MissingFields)
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestLookupError(t *testing.T) {
	err := errs.NewLookupError("999999", "Unable to fetch city/state for pincode 999999. All services unavailable.")

	assert.Equal(t, "999999", err.Pincode)
	assert.Contains(t, err.Error(), "All services unavailable")
	require.ErrorIs(t, err, errs.ErrLookup)
}

func TestAuthError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewAuthError("Invalid credentials")

		assert.Equal(t, "carrier authentication failed: Invalid credentials", err.Error())
		require.ErrorIs(t, err, errs.ErrAuth)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := assert.AnError
		err := errs.NewAuthErrorWithCause("login request failed", cause)

		assert.Contains(t, err.Error(), "login request failed")
		assert.Contains(t, err.Error(), cause.Error())
		require.ErrorIs(t, err, errs.ErrAuth)
	})
}

func TestUpstreamPayloadErrors(t *testing.T) {
	payload := json.RawMessage(`{"status_code":400,"message":"rejected"}`)

	t.Run("UpstreamOrderError keeps raw payload", func(t *testing.T) {
		err := errs.NewUpstreamOrderError("Failed to create order in Shiprocket", payload)

		assert.Equal(t, payload, err.Payload)
		assert.Contains(t, err.Error(), "Failed to create order in Shiprocket")
		require.ErrorIs(t, err, errs.ErrUpstreamOrder)
	})

	t.Run("AssignmentError keeps raw payload", func(t *testing.T) {
		err := errs.NewAssignmentError("Failed to assign AWB in Shiprocket", payload)

		assert.Equal(t, payload, err.Payload)
		require.ErrorIs(t, err, errs.ErrAssignment)
	})
}

func TestRateUnavailableError(t *testing.T) {
	err := errs.NewRateUnavailableError("Failed to fetch courier rates or no couriers available.")

	assert.Equal(t, "Failed to fetch courier rates or no couriers available.", err.Error())
	require.ErrorIs(t, err, errs.ErrRateUnavailable)
}

func TestProvisioningError(t *testing.T) {
	err := errs.NewProvisioningError("Address line should not be empty")

	assert.Contains(t, err.Error(), "Address line should not be empty")
	require.ErrorIs(t, err, errs.ErrProvisioning)
}
