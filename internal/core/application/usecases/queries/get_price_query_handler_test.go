package queries_test

import (
	"context"
	"testing"

	"nexye/internal/core/application/usecases/queries"
	"nexye/internal/core/domain/services"
	"nexye/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPriceQueryHandler_Handle(t *testing.T) {
	h := queries.NewGetPriceQueryHandler(services.NewPriceCalculator())

	tests := []struct {
		name      string
		rawWeight string
		want      int
	}{
		{"half_kg", "0.5", 270},
		{"exactly_2kg", "2", 320},
		{"two_and_a_half_kg", "2.5", 420},
		{"three_point_four_kg", "3.4", 520},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := queries.NewGetPriceQuery(tt.rawWeight)
			require.NoError(t, err)

			resp, err := h.Handle(context.Background(), query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Price)
			assert.NotEmpty(t, resp.Breakdown)
		})
	}

	t.Run("rejects_non_numeric_weight", func(t *testing.T) {
		_, err := queries.NewGetPriceQuery("heavy")
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("rejects_zero_weight", func(t *testing.T) {
		_, err := queries.NewGetPriceQuery("0")
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("unconstructed_query_fails", func(t *testing.T) {
		_, err := h.Handle(context.Background(), queries.GetPriceQuery{})
		require.Error(t, err)
	})
}
