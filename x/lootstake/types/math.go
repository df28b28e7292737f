package types

import "math/bits"

// MulDiv computes floor(a*b/den) without intermediate overflow by carrying
// the product through a 128-bit high/low limb pair. It returns
// ErrDivisionByZero when den is zero and ErrOverflow when the quotient
// itself does not fit in 64 bits (bits.Div64 would panic on that input).
func MulDiv(a, b, den uint64) (uint64, error) {
	if den == 0 {
		return 0, ErrDivisionByZero
	}
	hi, lo := bits.Mul64(a, b)
	if hi >= den {
		return 0, ErrOverflow
	}
	q, _ := bits.Div64(hi, lo, den)
	return q, nil
}
