package efix

import "github.com/tinne26/efix/internal/kernel"

// ErrDomain is wrapped by all the errors caused by arguments outside of
// a function's domain:
//   if errors.Is(err, efix.ErrDomain) { ... }
// Overflows are never errors; results saturate to the Min and Max
// values of each type instead.
var ErrDomain = kernel.ErrDomain

// Domain errors.
var (
	ErrDivisionByZero = kernel.ErrDivisionByZero // also for zero raised to a negative power
	ErrNegativeSqrt   = kernel.ErrNegativeSqrt
	ErrLogDomain      = kernel.ErrLogDomain
	ErrAcosDomain     = kernel.ErrAcosDomain
)

// ErrSyntax is wrapped by the errors of the parsing functions.
var ErrSyntax = kernel.ErrSyntax
