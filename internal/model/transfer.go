package model

import "github.com/shopspring/decimal"

// Transfer represents a row in transfers.csv. Club ids are 0 when the source
// row carries only a name (free agents, retirements, long-tail clubs).
type Transfer struct {
	PlayerID     string // opaque source identifier, never computed on
	PlayerName   string
	Season       string // "YY/YY"
	TransferFee  string // free text, parsed by the fees package
	FromClubID   int64
	FromClubName string
	ToClubID     int64
	ToClubName   string
}

// EnrichedTransfer is a Transfer plus the derived fee and country buckets.
type EnrichedTransfer struct {
	Transfer
	FeeEUR      decimal.Decimal
	FromCountry string
	ToCountry   string
}
