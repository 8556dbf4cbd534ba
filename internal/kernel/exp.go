package kernel

import "github.com/tinne26/efix/internal/word"

// Log2 computes the binary logarithm with Turner's bit by bit method:
// normalize into [1, 2) while counting the integer part, then square
// once per fraction bit, emitting a 1 whenever the square reaches 2.
func Log2[W word.Word[W]](p *Params[W], x W) (W, error) {
	if x.Negative() || x.IsZero() { return p.Zero, ErrLogDomain }

	b := p.Half
	var y W
	z := x
	for z.SignedLess(p.One) {
		z = z.Lsh(1)
		y = y.Sub(p.One)
	}
	for !z.SignedLess(p.Two) {
		z = z.Rsh(1)
		y = y.Add(p.One)
	}

	for i := uint(0); i < p.Frac; i++ {
		z = fastMul(p, z, z) // z in [1, 2), z² in [1, 4)
		if !z.SignedLess(p.Two) {
			z = z.Rsh(1)
			y = y.Add(b)
		}
		b = b.Rsh(1)
	}
	return y, nil
}

// Ln returns the natural logarithm, Log2(x)·Ln2.
func Ln[W word.Word[W]](p *Params[W], x W) (W, error) {
	log2, err := Log2(p, x)
	if err != nil { return p.Zero, err }
	return Mul(p, log2, p.Ln2), nil
}

// Pow2 returns 2^x. The fractional part is expanded as the power series
// of e^(f·ln2), adding terms until one underflows to zero; the integer
// part is applied as a raw shift.
func Pow2[W word.Word[W]](p *Params[W], x W) W {
	if x.IsZero() { return p.One }
	if !x.SignedLess(p.Log2Max) { return p.Max }
	if !p.Log2Min.SignedLess(x) { return p.Zero }

	// 2^-x == 1/2^x
	negative := x.Negative()
	if negative { x = Neg(p, x) }
	if x == p.One {
		if negative { return p.Half }
		return p.Two
	}
	if !x.SignedLess(p.Log2Max) {
		reciprocal, _ := Div(p, p.One, p.Max)
		return reciprocal
	}

	intPart := uint(x.Sar(p.Frac).Uint64())
	x = x.And(p.FracMask)

	result, term := p.One, p.One
	for i := int64(1); !term.IsZero(); i++ {
		term = fastMul(p, fastMul(p, x, term), p.Ln2)
		term, _ = Div(p, term, p.FromInt(i))
		result = Add(p, result, term)
	}

	result = result.Lsh(intPart)
	if negative {
		result, _ = Div(p, p.One, result)
	}
	return result
}

// Exp returns e^x, computed as 2^(x·log2(e)).
func Exp[W word.Word[W]](p *Params[W], x W) W {
	return Pow2(p, Mul(p, x, p.Log2E))
}

// Pow returns base^exponent through Pow2(exponent·Log2(base)).
//
// Negative bases only accept integer exponents. With a non-integer
// exponent the result is Zero; this is a known limitation and not
// reported as an error.
func Pow[W word.Word[W]](p *Params[W], base, exponent W) (W, error) {
	if base == p.One || exponent.IsZero() { return p.One, nil }
	if base.IsZero() {
		if exponent.Negative() { return p.Zero, ErrDivisionByZero }
		return p.Zero, nil
	}

	if base.Negative() {
		if !exponent.And(p.FracMask).IsZero() { return p.Zero, nil }
		log2, _ := Log2(p, Neg(p, base))
		result := Pow2(p, Mul(p, exponent, log2))
		if !exponent.And(p.One).IsZero() { result = Neg(p, result) } // odd
		return result, nil
	}

	log2, _ := Log2(p, base)
	return Pow2(p, Mul(p, exponent, log2)), nil
}
