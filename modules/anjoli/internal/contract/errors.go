package contract

import (
	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/common/errs"
)

// Every contract error aborts the whole invocation.
const (
	ErrAssetCreationFailed = errs.ErrorKind("asset creation failed")
	ErrAlreadyInitialized  = errs.ErrorKind("asset already created")
	ErrUninitializedAsset  = errs.ErrorKind("asset not yet created")
	ErrInvalidRecipient    = errs.ErrorKind("payment must be to app address")
	ErrDonationTooSmall    = errs.ErrorKind("donation too small for any ANJ")
	ErrReserveExhausted    = errs.ErrorKind("reserve has insufficient asset balance")
)

const (
	CodeAssetCreationFailed = "ASSET_CREATION_FAILED"
	CodeAlreadyInitialized  = "ALREADY_INITIALIZED"
	CodeUninitializedAsset  = "UNINITIALIZED_ASSET"
	CodeInvalidRecipient    = "INVALID_RECIPIENT"
	CodeDonationTooSmall    = "DONATION_TOO_SMALL"
	CodeReserveExhausted    = "RESERVE_EXHAUSTED"
	CodeInvalidArgument     = "INVALID_ARGUMENT"
	CodeInternal            = "INTERNAL"
)

var errorCodes = []struct {
	kind errs.ErrorKind
	code string
}{
	{ErrAssetCreationFailed, CodeAssetCreationFailed},
	{ErrAlreadyInitialized, CodeAlreadyInitialized},
	{ErrUninitializedAsset, CodeUninitializedAsset},
	{ErrInvalidRecipient, CodeInvalidRecipient},
	{ErrDonationTooSmall, CodeDonationTooSmall},
	{ErrReserveExhausted, CodeReserveExhausted},
	{errs.InvalidArgument, CodeInvalidArgument},
}

// ErrorCode returns the stable code of a contract error, "" for nil and CodeInternal for anything unknown.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	for _, ec := range errorCodes {
		if errors.Is(err, ec.kind) {
			return ec.code
		}
	}
	return CodeInternal
}

// IsContractError reports whether err was raised by a contract precondition rather than by infrastructure.
func IsContractError(err error) bool {
	code := ErrorCode(err)
	return code != "" && code != CodeInternal
}
