package model

import "github.com/shopspring/decimal"

// TeamStatistics aggregates games and transfer money for one club, either
// over a season selection or for a single season (Season set).
type TeamStatistics struct {
	ClubID      int64
	Season      string // empty for aggregates over a selection
	GamesPlayed int
	GamesWon    int
	WinPct      float64 // 0-100, rounded to 2 decimals
	MoneySpent  decimal.Decimal
	MoneyEarned decimal.Decimal
}
