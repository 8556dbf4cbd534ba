package kernel

import "errors"

// ErrDomain is the root of all the errors for arguments outside of a
// function's domain. Saturation is never reported as an error.
var ErrDomain = errors.New("efix: argument outside of the function's domain")

var (
	ErrDivisionByZero error = domainError("efix: division by zero")
	ErrNegativeSqrt   error = domainError("efix: square root of a negative value")
	ErrLogDomain      error = domainError("efix: logarithm of a non-positive value")
	ErrAcosDomain     error = domainError("efix: arccosine argument outside of [-1, 1]")
)

// ErrSyntax is returned when parsing malformed text.
var ErrSyntax = errors.New("efix: invalid syntax")

type domainError string

func (self domainError) Error() string { return string(self) }
func (self domainError) Unwrap() error { return ErrDomain }
