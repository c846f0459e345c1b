package entity

import (
	"time"

	"github.com/gaze-network/uint128"
	"github.com/google/uuid"
)

// Address is an account address on the host ledger.
type Address string

func (a Address) String() string {
	return string(a)
}

func (a Address) IsZero() bool {
	return a == ""
}

type ContractStatus string

const (
	ContractStatusUninitialized ContractStatus = "uninitialized"
	ContractStatusActive        ContractStatus = "active"
)

// ContractState is the single persistent record of a contract instance.
// AssetID is 0 until the asset is minted and never changes afterwards.
type ContractState struct {
	AppAddress Address
	AssetID    uint64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (s ContractState) Status() ContractStatus {
	if s.AssetID == 0 {
		return ContractStatusUninitialized
	}
	return ContractStatusActive
}

// AssetParams are the attributes of an asset creation request.
type AssetParams struct {
	Name     string
	UnitName string
	Total    uint64
	Decimals uint32
	Manager  Address
	Reserve  Address
	Fee      uint64
}

type Asset struct {
	ID uint64
	AssetParams
	CreatedAt time.Time
}

// TransferContext describes the value transfer attached to an invocation.
// The host guarantees Sender and Receiver are authentic.
type TransferContext struct {
	Sender   Address
	Receiver Address
	Amount   uint64
}

// AssetTransfer is an outbound asset transfer instruction.
type AssetTransfer struct {
	AssetID uint64
	From    Address
	To      Address
	Amount  uint64
	Fee     uint64
}

// Payment is a settled inbound value transfer.
type Payment struct {
	ID        uuid.UUID
	Sender    Address
	Receiver  Address
	Amount    uint64
	CreatedAt time.Time
}

type Donation struct {
	ID        uuid.UUID
	PaymentID uuid.UUID
	AssetID   uint64
	Sender    Address
	Amount    uint64
	Tokens    uint64
	CreatedAt time.Time
}

type Operation string

const (
	OperationInitialize Operation = "initialize"
	OperationDonate     Operation = "donate"
)

// Invocation is the audit record of a mutating call, kept whether the call committed or aborted.
type Invocation struct {
	ID        uuid.UUID
	Operation Operation
	Sender    Address
	Amount    uint64
	Success   bool
	ErrorCode string
	CreatedAt time.Time
}

// Stats are cumulative figures over all committed donations.
type Stats struct {
	DonationCount     uint64
	ValueReceived     uint128.Uint128
	TokensDistributed uint128.Uint128
}
