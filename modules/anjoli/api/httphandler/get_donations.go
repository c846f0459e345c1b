package httphandler

import (
	"net/url"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common"
	"github.com/durgadao/anjoli-custody/common/errs"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/contract"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type getDonationsRequest struct {
	Sender string `params:"sender"`
}

func (r getDonationsRequest) Validate() error {
	var errList []error
	if r.Sender == "" {
		errList = append(errList, errors.New("'sender' is required"))
	}
	return errs.WithPublicMessageCode(errors.Join(errList...), "validation error", contract.CodeInvalidArgument)
}

type getDonationsResult struct {
	List        []donation `json:"list"`
	TotalAmount uint64     `json:"totalAmount"`
	TotalTokens uint64     `json:"totalTokens"`
}

type getDonationsResponse = common.HttpResponse[getDonationsResult]

func (h *HttpHandler) GetDonations(ctx *fiber.Ctx) (err error) {
	var req getDonationsRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	// route params are not unescaped by fiber
	if req.Sender, err = url.PathUnescape(req.Sender); err != nil {
		return errs.WithPublicMessageCode(errors.WithStack(err), "invalid sender", contract.CodeInvalidArgument)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	donations, err := h.usecase.GetDonationsBySender(ctx.UserContext(), entity.Address(req.Sender))
	if err != nil {
		return errors.Wrap(err, "error during GetDonationsBySender")
	}

	result := getDonationsResult{
		List: lo.Map(donations, func(d entity.Donation, _ int) donation { return mapDonation(d) }),
	}
	for _, d := range donations {
		result.TotalAmount += d.Amount
		result.TotalTokens += d.Tokens
	}

	return errors.WithStack(ctx.JSON(getDonationsResponse{Result: &result}))
}
