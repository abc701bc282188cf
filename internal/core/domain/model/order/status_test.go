package order_test

import (
	"testing"

	"nexye/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Advance(t *testing.T) {
	t.Run("walks_the_full_pipeline", func(t *testing.T) {
		expected := []order.Status{
			order.Validated,
			order.LocationsResolved,
			order.Authenticated,
			order.PickupCreated,
			order.OrderCreated,
			order.RatesFetched,
			order.AWBAssigned,
			order.Done,
		}

		s := order.Received
		for _, want := range expected {
			next, err := s.Advance()
			require.NoError(t, err)
			assert.Equal(t, want, next)
			s = next
		}
	})

	t.Run("terminal_states_cannot_advance", func(t *testing.T) {
		_, err := order.Done.Advance()
		require.Error(t, err)

		_, err = order.Failed.Advance()
		require.Error(t, err)
	})

	t.Run("unknown_cannot_advance", func(t *testing.T) {
		_, err := order.Unknown.Advance()
		require.Error(t, err)
	})
}

func TestStatus_Fail(t *testing.T) {
	t.Run("every_non_terminal_step_can_fail", func(t *testing.T) {
		steps := []order.Status{
			order.Received, order.Validated, order.LocationsResolved,
			order.Authenticated, order.PickupCreated, order.OrderCreated,
			order.RatesFetched, order.AWBAssigned,
		}

		for _, s := range steps {
			next, err := s.Fail()
			require.NoError(t, err, "from %s", s)
			assert.Equal(t, order.Failed, next)
		}
	})

	t.Run("done_cannot_fail", func(t *testing.T) {
		_, err := order.Done.Fail()
		require.Error(t, err)
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Received", order.Received.String())
	assert.Equal(t, "AWBAssigned", order.AWBAssigned.String())
	assert.Equal(t, "Failed", order.Failed.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Received.Validate())
	require.NoError(t, order.Done.Validate())
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(99).Validate())
}
