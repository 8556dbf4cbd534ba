// efix is a package for deterministic fixed point arithmetic in Golang,
// designed mainly for simulations that need bit-identical results on
// every machine: lockstep networking, replays, physics.
//
// Floating point operations can give slightly different results
// depending on the platform, the compiler and the optimizations in use.
// The fixed point types in this package only use integer operations
// with a fixed number of steps, so the same inputs always produce the
// same outputs. There are three widths:
//   - [Fixed32]: 16.16, stored in 32 bits.
//   - [Fixed64]: 32.32, stored in 64 bits.
//   - [Fixed128]: 64.64, stored in 128 bits.
//
// Basic usage looks like this:
//   x := efix.Fixed64FromInt(7)
//   y, err := x.Div(efix.Fixed64FromInt(2))
//   if err != nil { ... } // only for division by zero
//   fmt.Println(y.Mul(efix.Fixed64Pi).Sin()) // about -1
//
// Arithmetic saturates instead of wrapping around: Fixed64Max.Add(x)
// stays at [Fixed64Max] for any positive x. Only arguments outside of a
// function's domain are reported as errors, all wrapping [ErrDomain].
//
// Transcendental functions use bounded iteration counts and have a
// small approximation error, but are exactly reproducible. [Fixed64.Atan2]
// in particular is a fast approximation with an error up to about 0.005
// radians; use [Fixed64.Atan] when more precision is needed.
//
// Code that has to work with any width can use the [Number] and [Real]
// interfaces together with the [Width32], [Width64] and [Width128]
// descriptors. The subpackages provide conversions with
// [golang.org/x/image/math/fixed] (efixed), order preserving binary
// keys (eorder) and 2D geometry helpers (geom).
package efix
