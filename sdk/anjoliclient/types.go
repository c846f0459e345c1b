package anjoliclient

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DonateRequest struct {
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Amount   uint64 `json:"amount"`
}

type Donation struct {
	ID        uuid.UUID `json:"id"`
	PaymentID uuid.UUID `json:"paymentId"`
	AssetID   uint64    `json:"assetId"`
	Sender    string    `json:"sender"`
	Amount    uint64    `json:"amount"`
	Tokens    uint64    `json:"tokens"`
	Timestamp int64     `json:"timestamp"`
}

type Donations struct {
	List        []Donation `json:"list"`
	TotalAmount uint64     `json:"totalAmount"`
	TotalTokens uint64     `json:"totalTokens"`
}

type Asset struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	UnitName string `json:"unitName"`
	Total    uint64 `json:"total"`
	Decimals uint32 `json:"decimals"`
	Manager  string `json:"manager"`
	Reserve  string `json:"reserve"`
}

// Quote is a donation priced at the fixed rate.
type Quote struct {
	Tokens     uint64          `json:"tokens"`
	Amount     uint64          `json:"amount"`
	AmountUnit decimal.Decimal `json:"amountUnit"`
}

type Info struct {
	AppAddress        string          `json:"appAddress"`
	Network           string          `json:"network"`
	Status            string          `json:"status"`
	AssetID           uint64          `json:"assetId"`
	Asset             *Asset          `json:"asset"`
	RateDivisor       uint64          `json:"rateDivisor"`
	TokenPrice        decimal.Decimal `json:"tokenPrice"`
	RemainingSupply   uint64          `json:"remainingSupply"`
	DonationCount     uint64          `json:"donationCount"`
	ValueReceived     string          `json:"valueReceived"`
	ValueReceivedUnit decimal.Decimal `json:"valueReceivedUnit"`
	TokensDistributed string          `json:"tokensDistributed"`
}

type Invocation struct {
	ID        uuid.UUID `json:"id"`
	Operation string    `json:"operation"`
	Sender    string    `json:"sender"`
	Amount    uint64    `json:"amount"`
	Success   bool      `json:"success"`
	ErrorCode string    `json:"errorCode"`
	Timestamp int64     `json:"timestamp"`
}

type assetIDResult struct {
	AssetID uint64 `json:"assetId"`
}

type invocationsResult struct {
	List []Invocation `json:"list"`
}
