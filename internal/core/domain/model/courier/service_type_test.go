package courier_test

import (
	"testing"

	"nexye/internal/core/domain/model/courier"

	"github.com/stretchr/testify/assert"
)

func TestParseServiceType(t *testing.T) {
	t.Run("empty_defaults_to_express", func(t *testing.T) {
		assert.Equal(t, courier.Express, courier.ParseServiceType(""))
		assert.Equal(t, courier.Express, courier.ParseServiceType("   "))
	})

	t.Run("normalizes_case_and_whitespace", func(t *testing.T) {
		assert.Equal(t, courier.Standard, courier.ParseServiceType(" Standard "))
		assert.Equal(t, courier.SameDay, courier.ParseServiceType("SAME_DAY"))
	})

	t.Run("unknown_values_kept_verbatim", func(t *testing.T) {
		assert.Equal(t, courier.ServiceType("economy"), courier.ParseServiceType("economy"))
	})
}

func TestServiceType_AllowedModes(t *testing.T) {
	cases := []struct {
		serviceType courier.ServiceType
		surface     bool
		air         bool
	}{
		{courier.Express, true, true},
		{courier.Standard, true, false},
		{courier.Overnight, false, true},
		{courier.SameDay, false, true},
		{courier.ServiceType("economy"), true, true}, // unknown allows both
	}

	for _, tc := range cases {
		t.Run(tc.serviceType.String(), func(t *testing.T) {
			surface, air := tc.serviceType.AllowedModes()
			assert.Equal(t, tc.surface, surface)
			assert.Equal(t, tc.air, air)
		})
	}
}
