package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common"
	"github.com/durgadao/anjoli-custody/common/errs"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/contract"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

// donateRequest is the value transfer attached to the donate invocation.
type donateRequest struct {
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Amount   uint64 `json:"amount"`
}

func (r donateRequest) Validate() error {
	var errList []error
	if r.Sender == "" {
		errList = append(errList, errors.New("'sender' is required"))
	}
	if r.Receiver == "" {
		errList = append(errList, errors.New("'receiver' is required"))
	}
	return errs.WithPublicMessageCode(errors.Join(errList...), "validation error", contract.CodeInvalidArgument)
}

type donateResponse = common.HttpResponse[donation]

func (h *HttpHandler) Donate(ctx *fiber.Ctx) (err error) {
	var req donateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errs.WithPublicMessageCode(errors.WithStack(err), "invalid request body", contract.CodeInvalidArgument)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.usecase.Donate(ctx.UserContext(), entity.TransferContext{
		Sender:   entity.Address(req.Sender),
		Receiver: entity.Address(req.Receiver),
		Amount:   req.Amount,
	})
	if err != nil {
		return errors.Wrap(err, "error during Donate")
	}

	resp := donateResponse{
		Result: lo.ToPtr(mapDonation(result)),
	}

	return errors.WithStack(ctx.JSON(resp))
}
