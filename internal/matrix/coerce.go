package matrix

import (
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"uva-matrix/internal/utils"
)

// Rounding precision of the emitted numbers
const (
	L1WeightPlaces int32 = 4
	L2WeightPlaces int32 = 2
	ScorePlaces    int32 = 2
)

// ParseNumber reads a cell as a decimal number. Blank or non-numeric cells report false.
func ParseNumber(cell string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Round converts d to the nearest float64 and rounds that binary value half to
// even at the given number of decimal places. Rounding the double rather than
// the decimal text keeps values such as 2.675 at 2.67, the way existing
// matrix files were produced.
func Round(d decimal.Decimal, places int32) float64 {
	return exactDecimal(d.InexactFloat64()).RoundBank(places).InexactFloat64()
}

// exactDecimal returns the exact decimal expansion of a finite float64
func exactDecimal(f float64) decimal.Decimal {
	frac, exp := math.Frexp(f)
	mant := big.NewInt(int64(frac * (1 << 53)))
	exp -= 53
	if exp >= 0 {
		return decimal.NewFromBigInt(mant.Lsh(mant, uint(exp)), 0)
	}
	// mant * 2^exp == mant * 5^-exp * 10^exp
	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-exp)), nil)
	return decimal.NewFromBigInt(mant.Mul(mant, five), int32(exp))
}

// Weight coerces a weight cell; anything unreadable becomes 0
func Weight(cell string, places int32) float64 {
	d, ok := ParseNumber(cell)
	if !ok {
		return 0
	}
	return Round(d, places)
}

// Score coerces a PETS score cell. Missing, blank, not-available and
// non-numeric cells all yield 0; coercion never fails.
func Score(cell string, notAvailable []string) float64 {
	if utils.IsBlank(cell) || utils.IsNotAvailable(cell, notAvailable) {
		return 0
	}
	return Weight(cell, ScorePlaces)
}
