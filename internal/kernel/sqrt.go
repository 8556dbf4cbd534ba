package kernel

import "github.com/tinne26/efix/internal/word"

// Sqrt computes the square root digit by digit on the raw magnitude.
//
// The root of raw = v·2^F is sqrt(v)·2^(F/2), so a first pass extracts
// the integer part and the top half of the fraction bits. The remainder
// and the partial result are then rescaled by W/2 bits and a second
// pass extracts the rest, so no intermediate ever needs 2W bits.
func Sqrt[W word.Word[W]](p *Params[W], x W) (W, error) {
	if x.Negative() { return p.Zero, ErrNegativeSqrt }

	half := p.Zero.Width()/2
	num := x
	var result W
	bit := p.Epsilon.Lsh(p.Zero.Width() - 2)
	for num.Less(bit) { bit = bit.Rsh(2) }

	for pass := 0; pass < 2; pass++ {
		for !bit.IsZero() {
			candidate := result.Add(bit)
			if !num.Less(candidate) {
				num = num.Sub(candidate)
				result = result.Rsh(1).Add(bit)
			} else {
				result = result.Rsh(1)
			}
			bit = bit.Rsh(2)
		}

		if pass == 0 {
			limit := p.Epsilon.Lsh(half).Sub(p.Epsilon)
			roundBit := p.Epsilon.Lsh(half - 1)
			if limit.Less(num) {
				// num is too large to shift; account for the next result
				// bit being 1 manually:
				// num - (result + 0.5)^2 + result^2 == num - result - 0.5
				num = num.Sub(result)
				num = num.Lsh(half).Sub(roundBit)
				result = result.Lsh(half).Add(roundBit)
			} else {
				num = num.Lsh(half)
				result = result.Lsh(half)
			}
			bit = p.Epsilon.Lsh(half - 2)
		}
	}

	// round up if the next bit would have been 1
	if result.Less(num) { result = result.Add(p.Epsilon) }
	return result, nil
}
