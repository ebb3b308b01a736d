package payledger

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Amounts carry 4 implied fractional digits ("fractional units") over an
// unbounded integer part. They are stored as the value scaled by 10000, so
// addition and subtraction are plain integer arithmetic with no carry logic
// and no floating point error.

const (
	fracScale       = 10000
	fracScaleDigits = 4
)

var bigFracScale = big.NewInt(fracScale)

// ErrFractionRange is returned by the amount constructors when the
// fractional-unit argument exceeds one whole unit.
var ErrFractionRange = errors.New("fractional units out of range")

// Amount is a non-negative monetary value as it appears on an input row.
// Amounts cannot be negated; widen to a SignedAmount first.
type Amount struct {
	d decimal.Decimal
}

// SignedAmount is a monetary value that may be negative. Account balances are
// signed: a disputed deposit can push available below zero.
type SignedAmount struct {
	d decimal.Decimal
}

// NewAmount builds an amount from an integer part and fractional units.
// Fractional units above 10000 are rejected; exactly 10000 carries into the
// integer part.
func NewAmount(integer uint64, frac uint32) (Amount, error) {
	if frac > fracScale {
		return Amount{}, ErrFractionRange
	}
	return Amount{d: scaledDecimal(false, new(big.Int).SetUint64(integer), frac)}, nil
}

// NewSignedAmount builds a signed amount from an integer part and fractional
// units. The fractional units grow the magnitude away from zero, so
// NewSignedAmount(-1, 5000) is -1.5.
func NewSignedAmount(integer int64, frac uint32) (SignedAmount, error) {
	if frac > fracScale {
		return SignedAmount{}, ErrFractionRange
	}
	neg := integer < 0
	abs := new(big.Int).SetInt64(integer)
	abs.Abs(abs)
	return SignedAmount{d: scaledDecimal(neg, abs, frac)}, nil
}

// scaledDecimal folds an (integer, fractional units) pair into the scaled
// representation. integer must be non-negative; neg applies the sign to the
// whole value so that "-0.5" is representable.
func scaledDecimal(neg bool, integer *big.Int, frac uint32) decimal.Decimal {
	scaled := new(big.Int).Mul(integer, bigFracScale)
	scaled.Add(scaled, big.NewInt(int64(frac)))
	if neg {
		scaled.Neg(scaled)
	}
	return decimal.NewFromBigInt(scaled, -fracScaleDigits)
}

// Signed widens the amount. Always lossless; there is no narrowing back.
func (a Amount) Signed() SignedAmount { return SignedAmount{d: a.d} }

func (a Amount) Equal(b Amount) bool { return a.d.Equal(b.d) }
func (a Amount) IsZero() bool        { return a.d.IsZero() }

// String renders the integer part and, when non-zero, the 4 zero-padded
// fractional digits. "1.5000" and "2", never "2.0000".
func (a Amount) String() string { return formatScaled(a.d) }

func (s SignedAmount) Add(o SignedAmount) SignedAmount { return SignedAmount{d: s.d.Add(o.d)} }
func (s SignedAmount) Sub(o SignedAmount) SignedAmount { return SignedAmount{d: s.d.Sub(o.d)} }
func (s SignedAmount) Neg() SignedAmount               { return SignedAmount{d: s.d.Neg()} }

func (s SignedAmount) Equal(o SignedAmount) bool { return s.d.Equal(o.d) }
func (s SignedAmount) Cmp(o SignedAmount) int    { return s.d.Cmp(o.d) }
func (s SignedAmount) IsZero() bool              { return s.d.IsZero() }
func (s SignedAmount) IsNegative() bool          { return s.d.IsNegative() }

// GreaterOrEqual reports whether the signed value is non-negative and at
// least a. It gates withdrawals: a negative balance can never fund one.
func (s SignedAmount) GreaterOrEqual(a Amount) bool {
	return !s.d.IsNegative() && s.d.Cmp(a.d) >= 0
}

func (s SignedAmount) String() string { return formatScaled(s.d) }

func formatScaled(d decimal.Decimal) string {
	scaled := d.Shift(fracScaleDigits).BigInt()
	var q, r big.Int
	q.QuoRem(scaled, bigFracScale, &r)
	if r.Sign() == 0 {
		return q.String()
	}
	sign := ""
	if scaled.Sign() < 0 {
		sign = "-"
	}
	q.Abs(&q)
	r.Abs(&r)
	return fmt.Sprintf("%s%s.%04d", sign, q.String(), r.Int64())
}
