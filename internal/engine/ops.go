package engine

import (
	"fmt"
	"math"
)

type unaryFunc func(a value) (value, error)
type binaryFunc func(a, b value) (value, error)

func checkReal(f float64) (value, error) {
	if math.IsNaN(f) {
		return value{}, fmt.Errorf("%w: result is not a number", ErrDomain)
	}
	return realValue(f), nil
}

func add(a, b value) (value, error) {
	if a.isInt() && b.isInt() {
		if s, ok := addInt(a.i, b.i); ok {
			return intValue(s), nil
		}
	}
	return checkReal(a.float() + b.float())
}

func sub(a, b value) (value, error) {
	if a.isInt() && b.isInt() && b.i != math.MinInt64 {
		if s, ok := addInt(a.i, -b.i); ok {
			return intValue(s), nil
		}
	}
	return checkReal(a.float() - b.float())
}

func mul(a, b value) (value, error) {
	if a.isInt() && b.isInt() {
		if p, ok := mulInt(a.i, b.i); ok {
			return intValue(p), nil
		}
	}
	return checkReal(a.float() * b.float())
}

func div(a, b value) (value, error) {
	if b.isZero() {
		return value{}, ErrDivideByZero
	}
	if a.isInt() && b.isInt() && a.i%b.i == 0 && !(a.i == math.MinInt64 && b.i == -1) {
		return intValue(a.i / b.i), nil
	}
	return checkReal(a.float() / b.float())
}

// mod is floored: the result takes the sign of the divisor.
func mod(a, b value) (value, error) {
	if b.isZero() {
		return value{}, ErrDivideByZero
	}
	if a.isInt() && b.isInt() {
		if b.i == -1 {
			return intValue(0), nil
		}
		m := a.i % b.i
		if m != 0 && (m < 0) != (b.i < 0) {
			m += b.i
		}
		return intValue(m), nil
	}
	m := math.Mod(a.float(), b.float())
	if m != 0 && (m < 0) != (b.float() < 0) {
		m += b.float()
	}
	return checkReal(m)
}

func pow(a, b value) (value, error) {
	if a.isZero() && b.float() < 0 {
		return value{}, ErrDivideByZero
	}
	if a.isInt() && b.isInt() && b.i >= 0 {
		if p, ok := powInt(a.i, b.i); ok {
			return intValue(p), nil
		}
	}
	return checkReal(math.Pow(a.float(), b.float()))
}

func neg(a value) (value, error) {
	if a.isInt() && a.i != math.MinInt64 {
		return intValue(-a.i), nil
	}
	return checkReal(-a.float())
}

func inv(a value) (value, error) {
	if a.isZero() {
		return value{}, ErrDivideByZero
	}
	if a.isInt() && (a.i == 1 || a.i == -1) {
		return a, nil
	}
	return checkReal(1 / a.float())
}

func sqrt(a value) (value, error) {
	if a.float() < 0 {
		return value{}, fmt.Errorf("%w: square root of a negative number", ErrDomain)
	}
	if a.isInt() {
		if r, exact := isqrt(a.i); exact {
			return intValue(r), nil
		}
	}
	return checkReal(math.Sqrt(a.float()))
}

func abs(a value) (value, error) {
	if a.float() < 0 {
		return neg(a)
	}
	return a, nil
}

func sq(a value) (value, error) { return mul(a, a) }
