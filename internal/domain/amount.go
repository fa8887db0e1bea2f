package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AmountScale is the number of Amount units in one whole currency unit.
const AmountScale = 10_000

var (
	ErrInvalidIntegerPortion       = errors.New("invalid integer portion of amount")
	ErrNonDigitInFractionalPortion = errors.New("non-digit in fractional portion of amount")
)

// Amount is a signed fixed-point value with four fractional digits,
// stored as an integer count of 1/10,000ths.
//
// Balances may go negative (a dispute after a withdrawal), so the
// underlying integer is signed even though input amounts are not.
type Amount int64

// ParseAmount turns a string like "321.54689" into an Amount. Digits past
// the fourth fractional place are checked but dropped without rounding.
func ParseAmount(s string) (Amount, error) {
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIntegerPortion, intPart)
	}
	if whole > math.MaxInt64/AmountScale || whole < math.MinInt64/AmountScale {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidIntegerPortion, intPart)
	}

	var frac int64
	if hasFrac {
		place := int64(AmountScale / 10)
		for _, r := range fracPart {
			if r < '0' || r > '9' {
				return 0, fmt.Errorf("%w: %q", ErrNonDigitInFractionalPortion, fracPart)
			}
			// keep scanning after the fourth digit so trailing garbage is still rejected
			frac += int64(r-'0') * place
			place /= 10
		}
	}

	scaled := whole * AmountScale
	if strings.HasPrefix(intPart, "-") {
		if scaled < math.MinInt64+frac {
			return 0, fmt.Errorf("%w: %q out of range", ErrInvalidIntegerPortion, s)
		}
		return Amount(scaled - frac), nil
	}
	if scaled > math.MaxInt64-frac {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidIntegerPortion, s)
	}
	return Amount(scaled + frac), nil
}

// MustParseAmount is like ParseAmount but panics on error. Meant for tests
// and constants.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Scaled returns the underlying count of 1/10,000ths.
func (a Amount) Scaled() int64 { return int64(a) }

// Add returns a + b without overflow checks.
func (a Amount) Add(b Amount) Amount { return a + b }

// Sub returns a - b without overflow checks.
func (a Amount) Sub(b Amount) Amount { return a - b }

// LessThan reports whether a < b.
func (a Amount) LessThan(b Amount) bool { return a < b }

// IsNegative reports whether a < 0.
func (a Amount) IsNegative() bool { return a < 0 }

// String renders the amount with exactly four fractional digits and a
// leading minus sign only when negative.
func (a Amount) String() string {
	v := int64(a)
	sign := ""
	if v < 0 {
		sign = "-"
	}
	whole := v / AmountScale
	frac := v % AmountScale
	if whole < 0 {
		whole = -whole
	}
	if frac < 0 {
		frac = -frac
	}
	return fmt.Sprintf("%s%d.%04d", sign, whole, frac)
}

func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Amount) UnmarshalText(text []byte) error {
	v, err := ParseAmount(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
