package services_test

import (
	"testing"

	"nexye/internal/core/domain/model/courier"
	"nexye/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateSelector_SelectCheapest(t *testing.T) {
	selector := services.NewRateSelector()

	t.Run("standard_excludes_cheaper_air", func(t *testing.T) {
		quotes := []courier.Quote{
			{CourierCompanyID: 1, CourierName: "Surface Co", SurfaceAvailable: true, Rate: 100},
			{CourierCompanyID: 2, CourierName: "Air Co", AirAvailable: true, AirRate: 80},
		}

		selected, err := selector.SelectCheapest(quotes, courier.Standard)

		require.NoError(t, err)
		assert.Equal(t, 1, selected.Quote.CourierCompanyID)
		assert.Equal(t, courier.ModeSurface, selected.Mode)
		assert.InDelta(t, 100, selected.Rate, 0.001)
	})

	t.Run("express_considers_both_modes", func(t *testing.T) {
		quotes := []courier.Quote{
			{CourierCompanyID: 1, SurfaceAvailable: true, Rate: 100},
			{CourierCompanyID: 2, AirAvailable: true, AirRate: 80},
		}

		selected, err := selector.SelectCheapest(quotes, courier.Express)

		require.NoError(t, err)
		assert.Equal(t, 2, selected.Quote.CourierCompanyID)
		assert.Equal(t, courier.ModeAir, selected.Mode)
		assert.InDelta(t, 80, selected.Rate, 0.001)
	})

	t.Run("ties_keep_first_encountered", func(t *testing.T) {
		quotes := []courier.Quote{
			{CourierCompanyID: 1, SurfaceAvailable: true, Rate: 90},
			{CourierCompanyID: 2, SurfaceAvailable: true, Rate: 90},
		}

		selected, err := selector.SelectCheapest(quotes, courier.Express)

		require.NoError(t, err)
		assert.Equal(t, 1, selected.Quote.CourierCompanyID)
	})

	t.Run("falls_back_to_freight_charge", func(t *testing.T) {
		quotes := []courier.Quote{
			{CourierCompanyID: 1, SurfaceAvailable: true, FreightCharge: 75},
		}

		selected, err := selector.SelectCheapest(quotes, courier.Standard)

		require.NoError(t, err)
		assert.InDelta(t, 75, selected.Rate, 0.001)
	})

	t.Run("no_positive_rate_in_allowed_mode", func(t *testing.T) {
		quotes := []courier.Quote{
			{CourierCompanyID: 1, SurfaceAvailable: true}, // rate unparsable upstream -> 0
			{CourierCompanyID: 2, AirAvailable: true, AirRate: 50},
		}

		_, err := selector.SelectCheapest(quotes, courier.Standard)

		require.ErrorIs(t, err, services.ErrNoEligibleCourier)
	})

	t.Run("empty_quotes", func(t *testing.T) {
		_, err := selector.SelectCheapest(nil, courier.Express)
		require.ErrorIs(t, err, services.ErrNoEligibleCourier)
	})

	t.Run("quotes_without_modes_are_skipped", func(t *testing.T) {
		quotes := []courier.Quote{
			{CourierCompanyID: 1, Rate: 10}, // neither mode available
			{CourierCompanyID: 2, SurfaceAvailable: true, Rate: 120},
		}

		selected, err := selector.SelectCheapest(quotes, courier.Express)

		require.NoError(t, err)
		assert.Equal(t, 2, selected.Quote.CourierCompanyID)
	})

	t.Run("unknown_service_type_allows_both", func(t *testing.T) {
		quotes := []courier.Quote{
			{CourierCompanyID: 1, AirAvailable: true, AirRate: 60},
		}

		selected, err := selector.SelectCheapest(quotes, courier.ServiceType("economy"))

		require.NoError(t, err)
		assert.Equal(t, courier.ModeAir, selected.Mode)
	})
}
