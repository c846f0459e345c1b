package contract

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common/errs"
)

// RateDivisor is the number of inbound value units exchanged for one asset unit.
// 1,000,000 value units yield 10 ANJ.
const RateDivisor uint64 = 100_000

// NativeDecimals is the number of decimal places of the host ledger's native value unit.
// It only affects how value amounts are displayed.
const NativeDecimals = 6

// TokensForAmount converts an inbound value amount to asset units using truncating division.
func TokensForAmount(amount uint64) (uint64, error) {
	tokens := amount / RateDivisor
	if tokens == 0 {
		return 0, errors.Wrapf(ErrDonationTooSmall, "amount %d is below the rate divisor %d", amount, RateDivisor)
	}
	return tokens, nil
}

// AmountForTokens returns the smallest inbound value amount that yields the given asset units.
func AmountForTokens(tokens uint64) (uint64, error) {
	if tokens > math.MaxUint64/RateDivisor {
		return 0, errors.Wrapf(errs.OverflowUint64, "%d tokens", tokens)
	}
	return tokens * RateDivisor, nil
}
