package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common"
	"github.com/durgadao/anjoli-custody/common/errs"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/contract"
	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	defaultInvocationsLimit = 100
	maxInvocationsLimit     = 1000
)

type getInvocationsRequest struct {
	Limit int32 `query:"limit"`
}

func (r getInvocationsRequest) Validate() error {
	var errList []error
	if r.Limit < 0 || r.Limit > maxInvocationsLimit {
		errList = append(errList, errors.Errorf("'limit' must be between 1 and %d", maxInvocationsLimit))
	}
	return errs.WithPublicMessageCode(errors.Join(errList...), "validation error", contract.CodeInvalidArgument)
}

type invocation struct {
	Id        uuid.UUID `json:"id"`
	Operation string    `json:"operation"`
	Sender    string    `json:"sender"`
	Amount    uint64    `json:"amount"`
	Success   bool      `json:"success"`
	ErrorCode string    `json:"errorCode,omitempty"`
	Timestamp int64     `json:"timestamp"`
}

type getInvocationsResult struct {
	List []invocation `json:"list"`
}

type getInvocationsResponse = common.HttpResponse[getInvocationsResult]

// GetInvocations returns the latest invocation audit records, newest first.
func (h *HttpHandler) GetInvocations(ctx *fiber.Ctx) (err error) {
	var req getInvocationsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errs.WithPublicMessageCode(errors.WithStack(err), "invalid query", contract.CodeInvalidArgument)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}
	if req.Limit == 0 {
		req.Limit = defaultInvocationsLimit
	}

	invocations, err := h.usecase.GetInvocations(ctx.UserContext(), req.Limit)
	if err != nil {
		return errors.Wrap(err, "error during GetInvocations")
	}

	result := getInvocationsResult{
		List: lo.Map(invocations, func(i entity.Invocation, _ int) invocation {
			return invocation{
				Id:        i.ID,
				Operation: string(i.Operation),
				Sender:    i.Sender.String(),
				Amount:    i.Amount,
				Success:   i.Success,
				ErrorCode: i.ErrorCode,
				Timestamp: i.CreatedAt.Unix(),
			}
		}),
	}

	return errors.WithStack(ctx.JSON(getInvocationsResponse{Result: &result}))
}
