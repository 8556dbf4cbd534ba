package kernel

import "github.com/tinne26/efix/internal/word"

// Div returns x/y rounded to nearest, saturating on overflow. It never
// relies on a double width division: quotient digits are produced a
// chunk at a time with single word divisions of the shifted remainder.
func Div[W word.Word[W]](p *Params[W], x, y W) (W, error) {
	if y.IsZero() { return p.Zero, ErrDivisionByZero }
	if y == p.Two { return x.Sar(1), nil }

	negative := x.Xor(y).Negative()
	remainder := x
	if x.Negative() { remainder = p.Zero.Sub(x) }
	divider := y
	if y.Negative() { divider = p.Zero.Sub(y) }

	var quotient W
	bitPos := int(p.Frac) + 1

	// strip trailing zero nibbles from the divider
	nibble := p.Zero.FromUint64(0xF)
	for divider.And(nibble).IsZero() && bitPos >= 4 {
		divider = divider.Rsh(4)
		bitPos -= 4
	}

	for !remainder.IsZero() && bitPos >= 0 {
		shift := int(remainder.LeadingZeros())
		if shift > bitPos { shift = bitPos }
		remainder = remainder.Lsh(uint(shift))
		bitPos -= shift

		var digit W
		digit, remainder = remainder.QuoRem(divider)
		quotient = quotient.Add(digit.Lsh(uint(bitPos)))

		// the digit must fit in the bits left below the budget
		if !digit.And(p.AllOnes.Rsh(uint(bitPos)).Not()).IsZero() {
			if negative { return p.Min, nil }
			return p.Max, nil
		}

		remainder = remainder.Lsh(1)
		bitPos -= 1
	}

	// round to nearest on the extra quotient bit
	quotient = quotient.Add(p.Epsilon)
	result := quotient.Rsh(1)
	if negative { result = p.Zero.Sub(result) }
	return result, nil
}
