package domain

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// ExactDecimal returns the exact binary value of v as a decimal.
// Unlike decimal.NewFromFloat it does not go through the shortest printed form,
// so 2.675 stays 2.67499999... and rounds down.
func ExactDecimal(v float64) decimal.Decimal {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	frac, exp := math.Frexp(v)
	mant := big.NewInt(int64(frac * (1 << 53)))
	exp -= 53
	if exp >= 0 {
		return decimal.NewFromBigInt(mant.Lsh(mant, uint(exp)), 0)
	}
	// 2^-k == 5^k / 10^k
	k := int64(-exp)
	pow5 := new(big.Int).Exp(big.NewInt(5), big.NewInt(k), nil)
	return decimal.NewFromBigInt(mant.Mul(mant, pow5), -int32(k))
}

// Round rounds v to places decimals, half to even on the exact binary value.
// Non-finite values are returned unchanged.
func Round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return ExactDecimal(v).RoundBank(places).InexactFloat64()
}
