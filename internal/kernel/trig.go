package kernel

import "github.com/tinne26/efix/internal/word"

// wrapAngle maps x into [-Pi, Pi). The raw remainder modulo Tau gives
// the same value as repeatedly subtracting Tau, with bounded work.
func wrapAngle[W word.Word[W]](p *Params[W], x W) W {
	negative := x.Negative()
	mag := x
	if negative { mag = p.Zero.Sub(x) } // Min's magnitude is still right as unsigned
	_, r := mag.QuoRem(p.Tau)
	if negative { r = p.Zero.Sub(r) }

	if !r.SignedLess(p.Pi) { return r.Sub(p.Tau) }
	if r.SignedLess(p.Zero.Sub(p.Pi)) { return r.Add(p.Tau) }
	return r
}

// cosSeries evaluates the truncated Taylor series of the cosine in
// Horner form. Only accurate for x in [0, Pi/4].
func cosSeries[W word.Word[W]](p *Params[W], x W) W {
	x2 := fastMul(p, x, x)
	r := p.One
	for k := uint64(p.TrigTerms - 1); k > 0; k-- {
		r = p.One.Sub(quoInt(p, fastMul(p, x2, r), (2*k - 1)*(2*k)))
	}
	return r
}

// sinSeries evaluates the truncated Taylor series of the sine in Horner
// form. Only accurate for x in [0, Pi/4].
func sinSeries[W word.Word[W]](p *Params[W], x W) W {
	x2 := fastMul(p, x, x)
	r := p.One
	for k := uint64(p.TrigTerms - 1); k > 0; k-- {
		r = p.One.Sub(quoInt(p, fastMul(p, x2, r), (2*k)*(2*k + 1)))
	}
	return fastMul(p, x, r)
}

// Cos returns the cosine of x, in radians.
func Cos[W word.Word[W]](p *Params[W], x W) W {
	x = wrapAngle(p, x)
	if x.Negative() { x = p.Zero.Sub(x) } // cos(-x) == cos(x)

	// cos(Pi - x) == -cos(x)
	negate := p.PiOver2.SignedLess(x)
	if negate {
		x = p.Pi.Sub(x)
		if x.Negative() { x = p.Zero }
	}

	var result W
	if x.SignedLess(p.PiOver4) || x == p.PiOver4 {
		result = cosSeries(p, x)
	} else {
		result = sinSeries(p, p.PiOver2.Sub(x))
	}
	if negate { return p.Zero.Sub(result) }
	return result
}

// Sin returns the sine of x, computed as Cos(x - Pi/2). The angle is
// wrapped first so the subtraction can't saturate near Min.
func Sin[W word.Word[W]](p *Params[W], x W) W {
	return Cos(p, wrapAngle(p, x).Sub(p.PiOver2))
}

// SinCos returns Sin(x) and Cos(x).
func SinCos[W word.Word[W]](p *Params[W], x W) (sin, cos W) {
	x = wrapAngle(p, x)
	return Cos(p, x.Sub(p.PiOver2)), Cos(p, x)
}

// Tan returns Sin(x)/Cos(x). A zero cosine saturates toward the sign of
// the sine.
func Tan[W word.Word[W]](p *Params[W], x W) W {
	sin, cos := SinCos(p, x)
	if cos.IsZero() {
		if sin.Negative() { return p.Min }
		return p.Max
	}
	tan, _ := Div(p, sin, cos)
	return tan
}

// Atan returns the arctangent of x through Euler's series. Arguments
// above 1 are inverted first, using atan(x) == Pi/2 - atan(1/x).
func Atan[W word.Word[W]](p *Params[W], x W) W {
	if x.IsZero() { return p.Zero }

	negative := x.Negative()
	if negative { x = Neg(p, x) }
	invert := p.One.SignedLess(x)
	if invert { x, _ = Div(p, p.One, x) }

	x2 := Mul(p, x, x)
	x2Twice := Add(p, x2, x2)
	x2PlusOne := Add(p, x2, p.One)
	x2PlusOneTwice := Add(p, x2PlusOne, x2PlusOne)
	dividend := x2Twice
	divisor := Mul(p, x2PlusOne, p.FromInt(3))

	result, term := p.One, p.One
	for i := 2; i < 30; i++ {
		ratio, _ := Div(p, dividend, divisor)
		term = Mul(p, term, ratio)
		result = Add(p, result, term)
		if term.IsZero() { break }
		dividend = Add(p, dividend, x2Twice)
		divisor = Add(p, divisor, x2PlusOneTwice)
	}

	result, _ = Div(p, Mul(p, result, x), x2PlusOne)
	if invert { result = Sub(p, p.PiOver2, result) }
	if negative { result = Neg(p, result) }
	return result
}

// Atan2 returns the angle of the point (x, y) in [-Pi, Pi], using a fast
// rational approximation of the arctangent.
func Atan2[W word.Word[W]](p *Params[W], y, x W) W {
	if x.IsZero() {
		switch {
		case y.IsZero(): return p.Zero
		case y.Negative(): return p.Zero.Sub(p.PiOver2)
		default: return p.PiOver2
		}
	}

	z, _ := Div(p, y, x)
	kz2 := Mul(p, Mul(p, p.AtanK, z), z)

	// ratio too large to approximate
	if Add(p, p.One, kz2) == p.Max {
		if y.Negative() { return p.Zero.Sub(p.PiOver2) }
		return p.PiOver2
	}

	if Abs(p, z).SignedLess(p.One) {
		atan, _ := Div(p, z, Add(p, p.One, kz2))
		if x.Negative() {
			if y.Negative() { return Sub(p, atan, p.Pi) }
			return Add(p, atan, p.Pi)
		}
		return atan
	}

	q, _ := Div(p, z, Add(p, Mul(p, z, z), p.AtanK))
	atan := Sub(p, p.PiOver2, q)
	if y.Negative() { return Sub(p, atan, p.Pi) }
	return atan
}

// Acos returns the arccosine of x, which must be within [-1, 1].
func Acos[W word.Word[W]](p *Params[W], x W) (W, error) {
	if x.SignedLess(p.NegOne) || p.One.SignedLess(x) {
		return p.Zero, ErrAcosDomain
	}
	if x.IsZero() { return p.PiOver2, nil }

	root, _ := Sqrt(p, Sub(p, p.One, Mul(p, x, x)))
	ratio, _ := Div(p, root, x)
	result := Atan(p, ratio)
	if x.Negative() { return Add(p, result, p.Pi), nil }
	return result, nil
}
