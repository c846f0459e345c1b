package httphandler

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common"
	"github.com/durgadao/anjoli-custody/common/errs"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/contract"
	"github.com/durgadao/anjoli-custody/pkg/decimals"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// maxQuoteValue is the largest value, in whole native units, whose base-unit amount fits a donation.
var maxQuoteValue = decimals.ToDecimal(uint64(math.MaxUint64), contract.NativeDecimals)

// getQuoteRequest takes exactly one of the wanted asset units or a value in whole native units, e.g. "1.5".
type getQuoteRequest struct {
	Tokens string `query:"tokens"`
	Value  string `query:"value"`
}

func (r getQuoteRequest) Validate() error {
	var errList []error
	if (r.Tokens == "") == (r.Value == "") {
		errList = append(errList, errors.New("exactly one of 'tokens' or 'value' is required"))
	}
	return errs.WithPublicMessageCode(errors.Join(errList...), "validation error", contract.CodeInvalidArgument)
}

type getQuoteResult struct {
	// Tokens are the asset units a donation of Amount receives.
	Tokens uint64 `json:"tokens"`
	// Amount is the donation in native base units.
	Amount     uint64          `json:"amount"`
	AmountUnit decimal.Decimal `json:"amountUnit"`
}

type getQuoteResponse = common.HttpResponse[getQuoteResult]

// GetQuote prices a donation at the fixed rate, by wanted asset units or by value.
func (h *HttpHandler) GetQuote(ctx *fiber.Ctx) (err error) {
	var req getQuoteRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errs.WithPublicMessageCode(errors.WithStack(err), "invalid query", contract.CodeInvalidArgument)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	var amount uint64
	if req.Tokens != "" {
		amount, err = quoteTokens(req.Tokens)
	} else {
		amount, err = quoteValue(req.Value)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	tokens, err := contract.TokensForAmount(amount)
	if err != nil && !errors.Is(err, contract.ErrDonationTooSmall) {
		return errors.Wrap(err, "error during TokensForAmount")
	}

	return errors.WithStack(ctx.JSON(getQuoteResponse{
		Result: &getQuoteResult{
			Tokens:     tokens,
			Amount:     amount,
			AmountUnit: decimals.ToDecimal(amount, contract.NativeDecimals),
		},
	}))
}

// quoteTokens returns the smallest amount receiving the given asset units.
func quoteTokens(s string) (uint64, error) {
	tokens, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errs.WrapPublic(errors.Wrap(errs.InvalidArgument, err.Error()), "'tokens' must be a non-negative integer", contract.CodeInvalidArgument)
	}
	amount, err := contract.AmountForTokens(tokens)
	if err != nil {
		return 0, errs.WrapPublic(errors.Mark(err, errs.InvalidArgument), "'tokens' is too large", contract.CodeInvalidArgument)
	}
	return amount, nil
}

// quoteValue converts whole native units to base units, dropping sub-unit digits.
func quoteValue(s string) (uint64, error) {
	value, err := decimal.NewFromString(s)
	if err != nil || value.IsNegative() || value.GreaterThan(maxQuoteValue) {
		return 0, errs.WrapPublic(errors.Wrapf(errs.InvalidArgument, "value %q", s), "'value' must be a non-negative number of native units", contract.CodeInvalidArgument)
	}
	return decimals.ToUint128(value, contract.NativeDecimals).Uint64(), nil
}
