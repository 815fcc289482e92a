package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFluidOunces(t *testing.T) {
	cases := []struct {
		unit   WaterUnit
		amount float64
		want   float64
	}{
		{UnitFluidOunce, 8, 8},
		{UnitCup, 2, 16},
		{UnitPint, 1, 16},
		{UnitLiter, 1, 33.814},
		{UnitMilliliter, 500, 16.907},
	}
	for _, tc := range cases {
		got, err := tc.unit.ToFluidOunces(tc.amount)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 0.001, "unit %s", tc.unit)
	}
}

func TestLitersAndMillilitersAgree(t *testing.T) {
	// 2 liters stored either way must reach the same base value
	fromLiters, err := UnitLiter.ToFluidOunces(2)
	require.NoError(t, err)
	fromMl, err := UnitMilliliter.ToFluidOunces(2000)
	require.NoError(t, err)

	assert.InDelta(t, fromLiters, fromMl, 0.01)
}

func TestUnsupportedUnit(t *testing.T) {
	_, err := WaterUnit("gallon").ToFluidOunces(1)
	assert.Error(t, err)
	assert.False(t, WaterUnit("gallon").Valid())
	assert.True(t, UnitCup.Valid())
}
