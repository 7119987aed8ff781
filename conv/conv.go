// Package conv converts fixed-point numbers to and from arbitrary precision
// decimals.
//
// Base 10 numbers map directly: the representation is the coefficient and
// the scale is the exponent. Base 2 numbers convert exactly as well, since
// 2^-n = 5^n * 10^-n holds for every n.
package conv

import (
	"math/big"

	"github.com/calebcase/oops"
	"github.com/shopspring/decimal"
	"github.com/zeebo/errs"

	"github.com/calebcase/fxp"
)

var (
	Error = errs.Class("conv")

	ErrRange = Error.New("out of range")
)

// ToDecimal returns f as an arbitrary precision decimal. The conversion is
// exact for both radixes.
func ToDecimal[Rep fxp.Representation, Rad fxp.Radix](f fxp.Fixed[Rep, Rad]) decimal.Decimal {
	var rad Rad

	s := f.Scaled()

	if rad.Base() == 10 {
		return decimal.New(int64(s.Value), int32(s.Scale))
	}

	coef := big.NewInt(int64(s.Value))
	switch {
	case s.Scale > 0:
		coef.Lsh(coef, uint(s.Scale))

		return decimal.NewFromBigInt(coef, 0)
	case s.Scale < 0:
		n := int64(s.Scale.Neg())
		coef.Mul(coef, new(big.Int).Exp(big.NewInt(5), big.NewInt(n), nil))

		return decimal.NewFromBigInt(coef, int32(s.Scale))
	default:
		return decimal.NewFromBigInt(coef, 0)
	}
}

// FromDecimal returns d as a base 10 fixed-point number with the decimal's
// exponent as the scale. If the coefficient does not fit the representation
// it returns ErrRange.
func FromDecimal[Rep fxp.Representation](d decimal.Decimal) (f fxp.Fixed[Rep, fxp.Base10], err error) {
	defer Error.WrapP(&err)

	coef := d.Coefficient()
	if !coef.IsInt64() {
		return f, oops.Trace(ErrRange)
	}

	v := coef.Int64()
	if int64(Rep(v)) != v {
		return f, oops.Trace(ErrRange)
	}

	return fxp.FromScaled[fxp.Base10](fxp.Scaled[Rep]{
		Value: Rep(v),
		Scale: fxp.Scale(d.Exponent()),
	}), nil
}
