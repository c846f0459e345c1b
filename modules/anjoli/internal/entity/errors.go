package entity

import "github.com/durgadao/anjoli-custody/common/errs"

// ErrInsufficientBalance is returned by the ledger when a holding cannot cover a transfer.
const ErrInsufficientBalance = errs.ErrorKind("insufficient asset balance")

// ErrAssetIDConflict is returned when saving a contract state would replace an asset id that is already set.
const ErrAssetIDConflict = errs.ErrorKind("contract asset id is already set")
