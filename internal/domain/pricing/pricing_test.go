package pricing

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_KnownScenario(t *testing.T) {
	// 10x5x2 granite slab: volume=100, subtotal=100*2+50+20=270, tax=27.
	got, err := Compute(Input{
		Length:         10,
		Width:          5,
		Thickness:      2,
		MaterialCost:   2,
		EdgeFinishCost: 20,
		LaborCost:      50,
		TaxRate:        10,
		Discount:       5,
	})
	require.NoError(t, err)
	assert.Equal(t, 292.0, got)
}

func TestCompute_InvalidDomain(t *testing.T) {
	valid := Input{Length: 10, Width: 5, Thickness: 2, MaterialCost: 2, EdgeFinishCost: 20, LaborCost: 50, TaxRate: 10, Discount: 5}

	cases := []struct {
		name   string
		mutate func(*Input)
	}{
		{"zero length", func(in *Input) { in.Length = 0 }},
		{"negative length", func(in *Input) { in.Length = -1 }},
		{"zero width", func(in *Input) { in.Width = 0 }},
		{"zero thickness", func(in *Input) { in.Thickness = 0 }},
		{"negative material cost", func(in *Input) { in.MaterialCost = -0.01 }},
		{"negative edge finish cost", func(in *Input) { in.EdgeFinishCost = -1 }},
		{"negative labor cost", func(in *Input) { in.LaborCost = -1 }},
		{"negative tax rate", func(in *Input) { in.TaxRate = -1 }},
		{"negative discount", func(in *Input) { in.Discount = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			assert.False(t, in.Valid())
			_, err := Compute(in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	// Zero costs are allowed, only dimensions must be strictly positive.
	t.Run("all costs zero", func(t *testing.T) {
		got, err := Compute(Input{Length: 1, Width: 1, Thickness: 1})
		require.NoError(t, err)
		assert.Equal(t, 0.0, got)
	})
}

func TestCompute_NoNegativeClamp(t *testing.T) {
	got, err := Compute(Input{Length: 1, Width: 1, Thickness: 1, Discount: 100})
	require.NoError(t, err)
	assert.Equal(t, -100.0, got)
}

func TestCompute_Deterministic(t *testing.T) {
	in := Input{Length: 3.7, Width: 1.2, Thickness: 0.9, MaterialCost: 4.45, EdgeFinishCost: 12.5, LaborCost: 50, TaxRate: 10, Discount: 3.33}
	first, err := Compute(in)
	require.NoError(t, err)
	second, err := Compute(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCompute_FormulaOverRandomInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		in := Input{
			Length:         rng.Float64()*500 + 0.001,
			Width:          rng.Float64()*500 + 0.001,
			Thickness:      rng.Float64()*50 + 0.001,
			MaterialCost:   rng.Float64() * 100,
			EdgeFinishCost: rng.Float64() * 1000,
			LaborCost:      rng.Float64() * 1000,
			TaxRate:        rng.Float64() * 30,
			Discount:       rng.Float64() * 2000,
		}

		got, err := Compute(in)
		require.NoError(t, err)

		subtotal := in.Length*in.Width*in.Thickness*in.MaterialCost + in.LaborCost + in.EdgeFinishCost
		want := subtotal + subtotal*in.TaxRate/100 - in.Discount
		assert.Equal(t, want, got)
	}
}
