package kernel

import "github.com/tinne26/efix/internal/word"

// Add returns a + b, saturating to Min/Max on signed overflow. Overflow
// happened iff both operands share a sign that the sum doesn't.
func Add[W word.Word[W]](p *Params[W], a, b W) W {
	sum := a.Add(b)
	if !a.Xor(b).Negative() && a.Xor(sum).Negative() {
		if a.Negative() { return p.Min }
		return p.Max
	}
	return sum
}

// Sub returns a - b, saturating to Min/Max on signed overflow. Overflow
// happened iff the operands' signs differ and the result's sign differs
// from the minuend's.
func Sub[W word.Word[W]](p *Params[W], a, b W) W {
	diff := a.Sub(b)
	if a.Xor(b).Negative() && a.Xor(diff).Negative() {
		if a.Negative() { return p.Min }
		return p.Max
	}
	return diff
}

// Neg returns -a. The negation of Min saturates to Max.
func Neg[W word.Word[W]](p *Params[W], a W) W {
	if a == p.Min { return p.Max }
	return p.Zero.Sub(a)
}

// Abs returns |a|. The absolute value of Min saturates to Max.
func Abs[W word.Word[W]](p *Params[W], a W) W {
	if a == p.Min { return p.Max }
	if a.Negative() { return p.Zero.Sub(a) }
	return a
}

// Sign returns -1, 0 or +1.
func Sign[W word.Word[W]](a W) int {
	if a.Negative() { return -1 }
	if a.IsZero() { return 0 }
	return 1
}

// Cmp compares the raw values as signed integers.
func Cmp[W word.Word[W]](a, b W) int {
	if a == b { return 0 }
	if a.SignedLess(b) { return -1 }
	return 1
}

// Floor rounds toward negative infinity.
func Floor[W word.Word[W]](p *Params[W], a W) W {
	return a.And(p.FracMask.Not())
}

// Ceil rounds toward positive infinity, saturating near Max.
func Ceil[W word.Word[W]](p *Params[W], a W) W {
	if a.And(p.FracMask).IsZero() { return a }
	return Add(p, Floor(p, a), p.One)
}

// Round rounds to the nearest integer, with ties to even.
func Round[W word.Word[W]](p *Params[W], a W) W {
	fract := a.And(p.FracMask)
	floor := Floor(p, a)
	switch {
	case fract.Less(p.Half): return floor
	case p.Half.Less(fract): return Add(p, floor, p.One)
	}
	if floor.And(p.One).IsZero() { return floor }
	return Add(p, floor, p.One)
}

// quoInt divides a raw value by a small positive integer, rounding the
// magnitude to nearest.
func quoInt[W word.Word[W]](p *Params[W], a W, n uint64) W {
	neg := a.Negative()
	mag := a
	if neg { mag = p.Zero.Sub(a) }
	d := p.Zero.FromUint64(n)
	q, r := mag.QuoRem(d)
	if !r.Less(d.Sub(r)) { q = q.Add(p.Epsilon) } // 2r >= n
	if neg { return p.Zero.Sub(q) }
	return q
}
