package word

import "math/bits"

// U128 is the word of the wide format, stored as two 64 bit limbs.
type U128 struct {
	Hi uint64
	Lo uint64
}

func (self U128) Add(other U128) U128 {
	lo, carry := bits.Add64(self.Lo, other.Lo, 0)
	hi, _ := bits.Add64(self.Hi, other.Hi, carry)
	return U128{ Hi: hi, Lo: lo }
}

func (self U128) Sub(other U128) U128 {
	lo, borrow := bits.Sub64(self.Lo, other.Lo, 0)
	hi, _ := bits.Sub64(self.Hi, other.Hi, borrow)
	return U128{ Hi: hi, Lo: lo }
}

// Low 128 bits of the product. The cross terms only affect the high
// limb, so their own high halves can be discarded.
func (self U128) Mul(other U128) U128 {
	hi, lo := bits.Mul64(self.Lo, other.Lo)
	hi += self.Hi*other.Lo + self.Lo*other.Hi
	return U128{ Hi: hi, Lo: lo }
}

// Unsigned quotient and remainder. When the divisor spans both limbs a
// trial quotient within one of the real one is derived from the
// normalized top limbs and then corrected.
func (self U128) QuoRem(other U128) (U128, U128) {
	if other.Hi == 0 {
		q, r := self.quoRem64(other.Lo)
		return q, U128{ Lo: r }
	}

	n := uint(bits.LeadingZeros64(other.Hi))
	v1 := other.Lsh(n)
	u1 := self.Rsh(1)
	tq, _ := bits.Div64(u1.Hi, u1.Lo, v1.Hi)
	tq >>= 63 - n
	if tq != 0 { tq -= 1 }
	q := U128{ Lo: tq }
	r := self.Sub(other.Mul(q))
	if !r.Less(other) {
		q = q.Add(U128{ Lo: 1 })
		r = r.Sub(other)
	}
	return q, r
}

func (self U128) quoRem64(v uint64) (q U128, r uint64) {
	if self.Hi < v {
		q.Lo, r = bits.Div64(self.Hi, self.Lo, v)
	} else {
		q.Hi, r = bits.Div64(0, self.Hi, v)
		q.Lo, r = bits.Div64(r, self.Lo, v)
	}
	return q, r
}

func (self U128) And(other U128) U128 { return U128{ Hi: self.Hi & other.Hi, Lo: self.Lo & other.Lo } }
func (self U128) Or(other U128) U128 { return U128{ Hi: self.Hi | other.Hi, Lo: self.Lo | other.Lo } }
func (self U128) Xor(other U128) U128 { return U128{ Hi: self.Hi ^ other.Hi, Lo: self.Lo ^ other.Lo } }
func (self U128) Not() U128 { return U128{ Hi: ^self.Hi, Lo: ^self.Lo } }

func (self U128) Lsh(n uint) U128 {
	switch {
	case n >= 128: return U128{}
	case n >= 64 : return U128{ Hi: self.Lo << (n - 64) }
	case n == 0  : return self
	}
	return U128{ Hi: self.Hi << n | self.Lo >> (64 - n), Lo: self.Lo << n }
}

func (self U128) Rsh(n uint) U128 {
	switch {
	case n >= 128: return U128{}
	case n >= 64 : return U128{ Lo: self.Hi >> (n - 64) }
	case n == 0  : return self
	}
	return U128{ Hi: self.Hi >> n, Lo: self.Lo >> n | self.Hi << (64 - n) }
}

func (self U128) Sar(n uint) U128 {
	fill := uint64(int64(self.Hi) >> 63)
	switch {
	case n >= 128: return U128{ Hi: fill, Lo: fill }
	case n >= 64 : return U128{ Hi: fill, Lo: uint64(int64(self.Hi) >> (n - 64)) }
	case n == 0  : return self
	}
	return U128{ Hi: uint64(int64(self.Hi) >> n), Lo: self.Lo >> n | self.Hi << (64 - n) }
}

func (self U128) LeadingZeros() uint {
	if self.Hi != 0 { return uint(bits.LeadingZeros64(self.Hi)) }
	return 64 + uint(bits.LeadingZeros64(self.Lo))
}

func (self U128) Less(other U128) bool {
	if self.Hi != other.Hi { return self.Hi < other.Hi }
	return self.Lo < other.Lo
}

func (self U128) SignedLess(other U128) bool {
	if self.Hi != other.Hi { return int64(self.Hi) < int64(other.Hi) }
	return self.Lo < other.Lo
}

func (self U128) Negative() bool { return int64(self.Hi) < 0 }
func (self U128) IsZero() bool { return self.Hi == 0 && self.Lo == 0 }
func (self U128) Int64() int64 { return int64(self.Lo) }
func (self U128) Uint64() uint64 { return self.Lo }
func (U128) FromInt64(v int64) U128 { return U128{ Hi: uint64(v >> 63), Lo: uint64(v) } }
func (U128) FromUint64(v uint64) U128 { return U128{ Lo: v } }
func (U128) Width() uint { return 128 }
