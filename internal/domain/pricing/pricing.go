// Package pricing computes fabrication cost estimates for cut stone slabs.
//
// The engine is a pure function: no state, no I/O, identical inputs always
// produce identical output.
package pricing

import "errors"

// ErrInvalidInput is returned when the parameters fall outside the valid
// domain. There is no partial computation and no clamping: an invalid set
// yields no price at all, never zero.
var ErrInvalidInput = errors.New("invalid pricing input")

// Input holds the physical and cost parameters of a single estimate.
// Dimensions are in cm, MaterialCost is per cm^3, TaxRate is a percentage,
// EdgeFinishCost/LaborCost/Discount are flat currency amounts.
type Input struct {
	Length         float64
	Width          float64
	Thickness      float64
	MaterialCost   float64
	EdgeFinishCost float64
	LaborCost      float64
	TaxRate        float64
	Discount       float64
}

// Valid reports whether in is inside the computable domain: all three
// dimensions strictly positive, all cost parameters non-negative.
func (in Input) Valid() bool {
	if in.Length <= 0 || in.Width <= 0 || in.Thickness <= 0 {
		return false
	}
	if in.MaterialCost < 0 || in.EdgeFinishCost < 0 || in.LaborCost < 0 || in.TaxRate < 0 || in.Discount < 0 {
		return false
	}
	return true
}

// Compute returns the total cost for in, or ErrInvalidInput when the
// parameters fail Valid.
//
//	volume   = length * width * thickness
//	subtotal = volume*materialCost + laborCost + edgeFinishCost
//	tax      = subtotal * taxRate / 100
//	total    = subtotal + tax - discount
//
// The total may be negative when the discount exceeds subtotal plus tax;
// that is deliberate pass-through, not an error.
func Compute(in Input) (float64, error) {
	if !in.Valid() {
		return 0, ErrInvalidInput
	}

	volume := in.Length * in.Width * in.Thickness
	subtotal := volume*in.MaterialCost + in.LaborCost + in.EdgeFinishCost
	tax := subtotal * in.TaxRate / 100
	total := subtotal + tax - in.Discount
	return total, nil
}
