package kernel

import "github.com/tinne26/efix/internal/word"

// partialProducts splits both operands at the binary point (a signed
// high half and an unsigned low half, F bits each) and returns the four
// products. Each fits in a single word, so wrapping native multiplies
// are exact.
func partialProducts[W word.Word[W]](p *Params[W], x, y W) (lolo, lohi, hilo, hihi W) {
	xlo, xhi := x.And(p.FracMask), x.Sar(p.Frac)
	ylo, yhi := y.And(p.FracMask), y.Sar(p.Frac)
	return xlo.Mul(ylo), xlo.Mul(yhi), xhi.Mul(ylo), xhi.Mul(yhi)
}

// addTrack adds two words and flags a carry into the sign bit.
func addTrack[W word.Word[W]](x, y W, overflow *bool) W {
	sum := x.Add(y)
	if x.Xor(y).Xor(sum).Negative() { *overflow = true }
	return sum
}

// Mul returns x*y, saturating when the product leaves the representable
// range.
func Mul[W word.Word[W]](p *Params[W], x, y W) W {
	switch {
	case x.IsZero() || y.IsZero(): return p.Zero
	case x == p.One   : return y
	case y == p.One   : return x
	case x == p.NegOne: return Neg(p, y)
	case y == p.NegOne: return Neg(p, x)
	}

	lolo, lohi, hilo, hihi := partialProducts(p, x, y)
	var overflow bool
	sum := addTrack(lolo.Rsh(p.Frac), lohi, &overflow)
	sum = addTrack(sum, hilo, &overflow)
	sum = addTrack(sum, hihi.Lsh(p.Frac), &overflow)

	signsEqual := !x.Xor(y).Negative()
	if signsEqual {
		xPositive := !x.Negative() // x is not zero here
		if sum.Negative() || (overflow && xPositive) { return p.Max }
	} else if !sum.Negative() && !sum.IsZero() {
		return p.Min
	}

	// the bits of hihi beyond F must be pure sign extension
	carry := hihi.Sar(p.Frac)
	if !carry.IsZero() && carry != p.AllOnes {
		if signsEqual { return p.Max }
		return p.Min
	}

	// a negative operand below -1 combined with a positive one above 1
	// can wrap back into the negative operand's sign
	if !signsEqual {
		posOp, negOp := x, y
		if x.SignedLess(y) { posOp, negOp = y, x }
		if negOp.SignedLess(sum) && negOp.SignedLess(p.NegOne) && p.One.SignedLess(posOp) {
			return p.Min
		}
	}

	return sum
}

// fastMul multiplies without any overflow handling. Only valid when the
// caller knows the product is representable.
func fastMul[W word.Word[W]](p *Params[W], x, y W) W {
	lolo, lohi, hilo, hihi := partialProducts(p, x, y)
	return lolo.Rsh(p.Frac).Add(lohi).Add(hilo).Add(hihi.Lsh(p.Frac))
}
