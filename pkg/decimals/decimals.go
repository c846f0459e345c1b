// Package decimals converts integer base-unit amounts to and from decimal.Decimal.
package decimals

import (
	"math"
	"math/big"

	"github.com/durgadao/anjoli-custody/pkg/logger"
	"github.com/durgadao/anjoli-custody/pkg/logger/slogx"
	"github.com/gaze-network/uint128"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

const DefaultDivPrecision = 36

func init() {
	decimal.DivisionPrecision = DefaultDivPrecision
}

// PowerOfTen returns 10^n.
func PowerOfTen[T constraints.Integer](n T) decimal.Decimal {
	return decimal.New(1, int32(n))
}

// ToDecimal scales an integer amount of base units down by 10^decimals.
// Supported amounts are Go integers, decimal strings, *big.Int and uint128.
// Any other type is treated as zero. It panics if decimals does not fit an int32 exponent.
func ToDecimal[T constraints.Integer](amount any, decimals T) decimal.Decimal {
	if int64(decimals) > math.MaxInt32 || int64(decimals) < math.MinInt32+1 {
		logger.Panic("ToDecimal: decimals out of range", slogx.Any("decimals", decimals))
	}
	return decimal.NewFromBigInt(toBigInt(amount), -int32(decimals))
}

// ToUint128 scales a unit amount (decimal or integer) up by 10^decimals, truncating any remaining fraction.
// It panics if the result is negative or overflows 128 bits.
func ToUint128(amount any, decimals uint16) uint128.Uint128 {
	var d decimal.Decimal
	switch v := amount.(type) {
	case decimal.Decimal:
		d = v
	case *decimal.Decimal:
		d = *v
	default:
		d = decimal.NewFromBigInt(toBigInt(v), 0)
	}

	result, err := uint128.FromBig(d.Mul(PowerOfTen(decimals)).BigInt())
	if err != nil {
		logger.Panic("ToUint128: amount out of range", slogx.Any("amount", amount), slogx.Any("decimals", decimals), slogx.Error(err))
	}
	return result
}

func toBigInt(amount any) *big.Int {
	switch v := amount.(type) {
	case int:
		return big.NewInt(int64(v))
	case int8:
		return big.NewInt(int64(v))
	case int16:
		return big.NewInt(int64(v))
	case int32:
		return big.NewInt(int64(v))
	case int64:
		return big.NewInt(v)
	case uint:
		return new(big.Int).SetUint64(uint64(v))
	case uint8:
		return new(big.Int).SetUint64(uint64(v))
	case uint16:
		return new(big.Int).SetUint64(uint64(v))
	case uint32:
		return new(big.Int).SetUint64(uint64(v))
	case uint64:
		return new(big.Int).SetUint64(v)
	case string:
		n, ok := new(big.Int).SetString(v, 10)
		if !ok {
			return new(big.Int)
		}
		return n
	case *big.Int:
		return new(big.Int).Set(v)
	case uint128.Uint128:
		return v.Big()
	case *uint128.Uint128:
		return v.Big()
	}
	return new(big.Int)
}
