package order_test

import (
	"testing"

	"nexye/internal/core/domain/model/kernel"
	"nexye/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPackage(t *testing.T) {
	dims := kernel.DefaultDimensions()

	t.Run("valid_package", func(t *testing.T) {
		p, err := order.NewPackage(1.5, dims, "Books", 500)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.InDelta(t, 1.5, p.Weight(), 0.001)
		assert.Equal(t, "Books", p.Description())
		assert.InDelta(t, 500, p.DeclaredValue(), 0.001)
	})

	t.Run("rejects_non_positive_weight", func(t *testing.T) {
		_, err := order.NewPackage(0, dims, "Books", 500)
		require.Error(t, err)
	})

	t.Run("rejects_non_positive_price", func(t *testing.T) {
		_, err := order.NewPackage(1.5, dims, "Books", -10)
		require.Error(t, err)
	})

	t.Run("rejects_empty_description", func(t *testing.T) {
		_, err := order.NewPackage(1.5, dims, "  ", 500)
		require.Error(t, err)
	})

	t.Run("rejects_unconstructed_dimensions", func(t *testing.T) {
		var bad kernel.Dimensions
		_, err := order.NewPackage(1.5, bad, "Books", 500)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var p order.Package
		require.ErrorIs(t, p.Validate(), order.ErrPackageIsNotConstructed)
	})
}
