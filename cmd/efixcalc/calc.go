package main

import "encoding"
import "encoding/hex"
import "errors"
import "fmt"
import "sort"

import "github.com/tinne26/efix"

// number is implemented by the three efix types.
type number[T any] interface {
	efix.Real[T]
	encoding.BinaryMarshaler
}

type result struct {
	Text string
	Bits []byte // big endian raw value, nil for domain errors
}

type calculator interface {
	Name() string
	Eval(op string, operands []string) (result, error)
	Consts() []namedResult
}

type namedResult struct {
	Name string
	result
}

type operation[T any] struct {
	arity int
	eval  func(args []T) (T, error)
}

func newCalculator(width int, raw bool) (calculator, error) {
	switch width {
	case 32 : return &calc[efix.Fixed32]{ efix.Width32, raw }, nil
	case 64 : return &calc[efix.Fixed64]{ efix.Width64, raw }, nil
	case 128: return &calc[efix.Fixed128]{ efix.Width128, raw }, nil
	default:
		return nil, fmt.Errorf("invalid width %d (expected 32, 64 or 128)", width)
	}
}

type calc[T number[T]] struct {
	width efix.Width[T]
	raw bool
}

func (self *calc[T]) Name() string { return self.width.Name }

func (self *calc[T]) Eval(op string, operands []string) (result, error) {
	operation, found := operations[T]()[op]
	if !found { return result{}, fmt.Errorf("unknown operation %q", op) }
	if len(operands) != operation.arity {
		return result{}, fmt.Errorf("%s expects %d operand(s), got %d", op, operation.arity, len(operands))
	}

	args := make([]T, len(operands))
	for i, operand := range operands {
		var err error
		args[i], err = self.width.Parse(operand)
		if err != nil { return result{}, err }
	}

	value, err := operation.eval(args)
	if err != nil {
		if errors.Is(err, efix.ErrDomain) {
			return result{ Text: "error: " + err.Error() }, nil
		}
		return result{}, err
	}
	return self.result(value), nil
}

func (self *calc[T]) Consts() []namedResult {
	return []namedResult{
		{ "zero", self.result(self.width.Zero) },
		{ "one", self.result(self.width.One) },
		{ "half", self.result(self.width.Half) },
		{ "epsilon", self.result(self.width.Epsilon) },
		{ "min", self.result(self.width.Min) },
		{ "max", self.result(self.width.Max) },
		{ "pi", self.result(self.width.Pi) },
		{ "e", self.result(self.width.E) },
	}
}

func (self *calc[T]) result(value T) result {
	bits, _ := value.MarshalBinary() // never fails
	if self.raw { return result{ "0x" + hex.EncodeToString(bits), bits } }
	return result{ value.String(), bits }
}

// Returns the sorted names of the supported operations.
func operationNames() []string {
	ops := operations[efix.Fixed64]()
	names := make([]string, 0, len(ops))
	for name := range ops { names = append(names, name) }
	sort.Strings(names)
	return names
}

func operations[T number[T]]() map[string]operation[T] {
	unary := func(fn func(T) T) operation[T] {
		return operation[T]{ 1, func(args []T) (T, error) { return fn(args[0]), nil } }
	}
	unaryErr := func(fn func(T) (T, error)) operation[T] {
		return operation[T]{ 1, func(args []T) (T, error) { return fn(args[0]) } }
	}
	binary := func(fn func(T, T) T) operation[T] {
		return operation[T]{ 2, func(args []T) (T, error) { return fn(args[0], args[1]), nil } }
	}
	binaryErr := func(fn func(T, T) (T, error)) operation[T] {
		return operation[T]{ 2, func(args []T) (T, error) { return fn(args[0], args[1]) } }
	}

	return map[string]operation[T]{
		"add"  : binary(func(a, b T) T { return a.Add(b) }),
		"sub"  : binary(func(a, b T) T { return a.Sub(b) }),
		"mul"  : binary(func(a, b T) T { return a.Mul(b) }),
		"div"  : binaryErr(func(a, b T) (T, error) { return a.Div(b) }),
		"pow"  : binaryErr(func(a, b T) (T, error) { return a.Pow(b) }),
		"atan2": binary(func(y, x T) T { return y.Atan2(x) }),
		"neg"  : unary(func(x T) T { return x.Neg() }),
		"abs"  : unary(func(x T) T { return x.Abs() }),
		"floor": unary(func(x T) T { return x.Floor() }),
		"ceil" : unary(func(x T) T { return x.Ceil() }),
		"round": unary(func(x T) T { return x.Round() }),
		"exp2" : unary(func(x T) T { return x.Exp2() }),
		"exp"  : unary(func(x T) T { return x.Exp() }),
		"sin"  : unary(func(x T) T { return x.Sin() }),
		"cos"  : unary(func(x T) T { return x.Cos() }),
		"tan"  : unary(func(x T) T { return x.Tan() }),
		"atan" : unary(func(x T) T { return x.Atan() }),
		"sqrt" : unaryErr(func(x T) (T, error) { return x.Sqrt() }),
		"log2" : unaryErr(func(x T) (T, error) { return x.Log2() }),
		"ln"   : unaryErr(func(x T) (T, error) { return x.Ln() }),
		"acos" : unaryErr(func(x T) (T, error) { return x.Acos() }),
	}
}
