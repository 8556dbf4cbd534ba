// Package word defines the unsigned machine words the fixed point kernel
// is built on. Each word stores the raw bits of a fixed point value and
// knows how to read them both as an unsigned and as a two's complement
// signed integer.
package word

import "math/bits"

// Word is the set of primitives the kernel needs from an integer of a
// given width. All arithmetic wraps around on overflow, exactly like
// Go's native unsigned integers.
//
// Constructors (FromInt64, FromUint64) are called on the zero value.
type Word[T any] interface {
	comparable

	Add(T) T
	Sub(T) T
	Mul(T) T // low half of the product
	QuoRem(T) (T, T) // unsigned, panics on zero divisor
	And(T) T
	Or(T) T
	Xor(T) T
	Not() T
	Lsh(n uint) T
	Rsh(n uint) T // logical
	Sar(n uint) T // arithmetic

	LeadingZeros() uint
	Less(T) bool // unsigned
	SignedLess(T) bool // two's complement
	Negative() bool
	IsZero() bool

	// Low 64 bits, sign extended when the word is narrower.
	Int64() int64
	// Low 64 bits, zero extended when the word is narrower.
	Uint64() uint64

	FromInt64(int64) T
	FromUint64(uint64) T
	Width() uint
}

// U32 is the word of the narrow format.
type U32 uint32

func (self U32) Add(other U32) U32 { return self + other }
func (self U32) Sub(other U32) U32 { return self - other }
func (self U32) Mul(other U32) U32 { return self * other }
func (self U32) QuoRem(other U32) (U32, U32) { return self / other, self % other }
func (self U32) And(other U32) U32 { return self & other }
func (self U32) Or(other U32) U32 { return self | other }
func (self U32) Xor(other U32) U32 { return self ^ other }
func (self U32) Not() U32 { return ^self }
func (self U32) Lsh(n uint) U32 { return self << n }
func (self U32) Rsh(n uint) U32 { return self >> n }
func (self U32) Sar(n uint) U32 { return U32(int32(self) >> n) }
func (self U32) LeadingZeros() uint { return uint(bits.LeadingZeros32(uint32(self))) }
func (self U32) Less(other U32) bool { return self < other }
func (self U32) SignedLess(other U32) bool { return int32(self) < int32(other) }
func (self U32) Negative() bool { return int32(self) < 0 }
func (self U32) IsZero() bool { return self == 0 }
func (self U32) Int64() int64 { return int64(int32(self)) }
func (self U32) Uint64() uint64 { return uint64(self) }
func (U32) FromInt64(v int64) U32 { return U32(uint32(v)) }
func (U32) FromUint64(v uint64) U32 { return U32(uint32(v)) }
func (U32) Width() uint { return 32 }

// U64 is the word of the standard format.
type U64 uint64

func (self U64) Add(other U64) U64 { return self + other }
func (self U64) Sub(other U64) U64 { return self - other }
func (self U64) Mul(other U64) U64 { return self * other }
func (self U64) QuoRem(other U64) (U64, U64) { return self / other, self % other }
func (self U64) And(other U64) U64 { return self & other }
func (self U64) Or(other U64) U64 { return self | other }
func (self U64) Xor(other U64) U64 { return self ^ other }
func (self U64) Not() U64 { return ^self }
func (self U64) Lsh(n uint) U64 { return self << n }
func (self U64) Rsh(n uint) U64 { return self >> n }
func (self U64) Sar(n uint) U64 { return U64(int64(self) >> n) }
func (self U64) LeadingZeros() uint { return uint(bits.LeadingZeros64(uint64(self))) }
func (self U64) Less(other U64) bool { return self < other }
func (self U64) SignedLess(other U64) bool { return int64(self) < int64(other) }
func (self U64) Negative() bool { return int64(self) < 0 }
func (self U64) IsZero() bool { return self == 0 }
func (self U64) Int64() int64 { return int64(self) }
func (self U64) Uint64() uint64 { return uint64(self) }
func (U64) FromInt64(v int64) U64 { return U64(uint64(v)) }
func (U64) FromUint64(v uint64) U64 { return U64(v) }
func (U64) Width() uint { return 64 }

// Compile time checks.
func implements[T Word[T]]() {}

var _ = implements[U32]
var _ = implements[U64]
var _ = implements[U128]
