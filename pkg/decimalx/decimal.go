// Package decimalx provides the fixed-precision arithmetic primitive used by
// every calculation in pkg/curve. It wraps shopspring/decimal so the rest of
// the module never imports it directly, and adds the rounding-mode, WAD, and
// basis-point vocabulary the elastic AMM math needs but shopspring/decimal
// does not expose directly.
package decimalx

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidDecimal indicates a string did not parse as a decimal number.
	ErrInvalidDecimal = errors.New("invalid decimal value")
	// ErrDivisionByZero indicates a division where the divisor is exactly zero
	// and the caller did not want that distinguished from insufficient liquidity.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNegativeInput indicates an operation received a negative value where
	// only a non-negative quantity is valid.
	ErrNegativeInput = errors.New("negative input")
	// ErrNaN indicates an operation received a value that failed to parse as
	// a finite number.
	ErrNaN = errors.New("nan input")
)

// RoundingMode selects how a quantity-producing operation truncates excess
// precision. Quantities default to RoundDown to match on-chain integer
// truncation; ratios and exchange rates are typically left unrounded.
type RoundingMode int

const (
	// RoundDown truncates toward zero. This is the default for token
	// quantities because on-chain integer division truncates.
	RoundDown RoundingMode = iota
	// RoundUp rounds away from zero on any non-zero remainder.
	RoundUp
	// RoundHalfEven rounds to the nearest value, ties to the even digit
	// (banker's rounding).
	RoundHalfEven
)

const (
	// BasisPointsDenominator is 100% expressed in basis points.
	BasisPointsDenominator = 10000
	// WADScale is 10^18, the scale factor used by on-chain fixed-point math.
	WADScale = "1000000000000000000"
)

// Decimal is an arbitrary-precision signed decimal value.
type Decimal struct {
	value decimal.Decimal
}

// WAD returns 10^18 as a Decimal.
func WAD() Decimal {
	return MustFromString(WADScale)
}

// New creates a Decimal from an int64.
func New(v int64) Decimal {
	return Decimal{value: decimal.NewFromInt(v)}
}

// NewFromFloat creates a Decimal from a float64. Prefer NewFromString for
// any value that originated outside this process (RPC responses, user
// input) since float64 cannot exactly represent most decimal fractions.
func NewFromFloat(v float64) Decimal {
	return Decimal{value: decimal.NewFromFloat(v)}
}

// NewFromString parses a Decimal from its base-10 string representation.
// Returns an error wrapping ErrNaN if v does not parse.
func NewFromString(v string) (Decimal, error) {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return Decimal{}, fmt.Errorf("%w: %s: %s", ErrNaN, v, err)
	}
	return Decimal{value: d}, nil
}

// MustFromString parses a Decimal, panicking on error. Only use for known-
// valid constants (WAD, test fixtures).
func MustFromString(v string) Decimal {
	d, err := NewFromString(v)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns the additive identity.
func Zero() Decimal { return Decimal{value: decimal.Zero} }

// One returns the multiplicative identity.
func One() Decimal { return Decimal{value: decimal.NewFromInt(1)} }

// Add returns d + other.
func (d Decimal) Add(other Decimal) Decimal {
	return Decimal{value: d.value.Add(other.value)}
}

// Sub returns d - other.
func (d Decimal) Sub(other Decimal) Decimal {
	return Decimal{value: d.value.Sub(other.value)}
}

// Mul returns d * other.
func (d Decimal) Mul(other Decimal) Decimal {
	return Decimal{value: d.value.Mul(other.value)}
}

// Div returns d / other at unbounded (shopspring default) precision.
// Returns ErrDivisionByZero if other is zero.
func (d Decimal) Div(other Decimal) (Decimal, error) {
	if other.value.IsZero() {
		return Decimal{}, ErrDivisionByZero
	}
	return Decimal{value: d.value.Div(other.value)}, nil
}

// Abs returns the absolute value of d.
func (d Decimal) Abs() Decimal { return Decimal{value: d.value.Abs()} }

// Neg returns the negation of d.
func (d Decimal) Neg() Decimal { return Decimal{value: d.value.Neg()} }

// IsZero reports whether d is exactly zero.
func (d Decimal) IsZero() bool { return d.value.IsZero() }

// IsNegative reports whether d is strictly less than zero.
func (d Decimal) IsNegative() bool { return d.value.IsNegative() }

// IsPositive reports whether d is strictly greater than zero.
func (d Decimal) IsPositive() bool { return d.value.IsPositive() }

// GreaterThan reports whether d > other.
func (d Decimal) GreaterThan(other Decimal) bool { return d.value.GreaterThan(other.value) }

// GreaterThanOrEqual reports whether d >= other.
func (d Decimal) GreaterThanOrEqual(other Decimal) bool {
	return d.value.GreaterThanOrEqual(other.value)
}

// LessThan reports whether d < other.
func (d Decimal) LessThan(other Decimal) bool { return d.value.LessThan(other.value) }

// LessThanOrEqual reports whether d <= other.
func (d Decimal) LessThanOrEqual(other Decimal) bool { return d.value.LessThanOrEqual(other.value) }

// Equal reports whether d == other.
func (d Decimal) Equal(other Decimal) bool { return d.value.Equal(other.value) }

// Float64 returns the float64 approximation of d. Use only for display;
// never feed the result back into further calculations.
func (d Decimal) Float64() float64 {
	f, _ := d.value.Float64()
	return f
}

// String returns the base-10 string representation of d.
func (d Decimal) String() string { return d.value.String() }

// Round rounds d to the given number of decimal places using mode.
func (d Decimal) Round(places int32, mode RoundingMode) Decimal {
	switch mode {
	case RoundDown:
		return Decimal{value: d.value.Truncate(places)}
	case RoundHalfEven:
		return Decimal{value: d.value.RoundBank(places)}
	case RoundUp:
		return Decimal{value: roundUp(d.value, places)}
	default:
		return Decimal{value: d.value.Truncate(places)}
	}
}

// roundUp rounds away from zero at the given number of places whenever the
// truncated remainder is non-zero. shopspring/decimal does not expose this
// mode directly.
func roundUp(v decimal.Decimal, places int32) decimal.Decimal {
	truncated := v.Truncate(places)
	if truncated.Equal(v) {
		return truncated
	}
	unit := decimal.New(1, -places)
	if v.IsNegative() {
		return truncated.Sub(unit)
	}
	return truncated.Add(unit)
}

// DivRound divides d by other and rounds the quotient to places using mode.
// Returns ErrDivisionByZero if other is zero.
func (d Decimal) DivRound(other Decimal, places int32, mode RoundingMode) (Decimal, error) {
	q, err := d.Div(other)
	if err != nil {
		return Decimal{}, err
	}
	return q.Round(places, mode), nil
}

// Pow returns d raised to the power exp.
func (d Decimal) Pow(exp Decimal) Decimal {
	return Decimal{value: d.value.Pow(exp.value)}
}

// Sqrt returns the square root of d via Newton's method, accurate to 36
// decimal places. shopspring/decimal exposes no square root operation, and
// none of the example libraries expose one over arbitrary-precision decimal
// (only over big.Float, which loses the exact-decimal guarantee this module
// needs for on-chain parity), so this is implemented directly.
// Returns ErrNegativeInput if d is negative.
func (d Decimal) Sqrt() (Decimal, error) {
	if d.IsNegative() {
		return Decimal{}, ErrNegativeInput
	}
	if d.IsZero() {
		return Zero(), nil
	}

	const places = 36
	one := decimal.NewFromInt(1)
	two := decimal.NewFromInt(2)

	// Initial guess: d itself for d<1, else d/2, avoids a slow climb from 1.
	guess := d.value
	if guess.GreaterThan(one) {
		guess = guess.Div(two)
	}
	if guess.IsZero() {
		guess = one
	}

	for i := 0; i < 100; i++ {
		// next = (guess + d/guess) / 2
		quotient := d.value.DivRound(guess, places+10)
		next := guess.Add(quotient).DivRound(two, places+10)
		diff := next.Sub(guess).Abs()
		guess = next
		if diff.LessThanOrEqual(decimal.New(1, -(places))) {
			break
		}
	}

	return Decimal{value: guess.Truncate(places)}, nil
}

// BasisPoints is an integer percentage scaled by 10000 (10000 == 100%).
// Used for swap fees and as the denominator of slippage tolerances.
type BasisPoints int

// Valid reports whether bp is within [0, BasisPointsDenominator].
func (bp BasisPoints) Valid() bool {
	return bp >= 0 && bp <= BasisPointsDenominator
}

// Decimal returns bp as an unscaled Decimal count of basis points, e.g.
// BasisPoints(30).Decimal() == 30. Callers divide by BasisPointsDenominator
// themselves where a fraction is needed.
func (bp BasisPoints) Decimal() Decimal {
	return New(int64(bp))
}
