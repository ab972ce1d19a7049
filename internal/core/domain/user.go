package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is a ledger account, provisioned on first contact (get-or-create).
// Balance is mutated by the wallet only; TotalProfit is an analytics counter
// maintained by the settlement paths and never drives balance.
type User struct {
	ID          int64           `json:"user_id"`
	Username    string          `json:"username"`
	Balance     decimal.Decimal `json:"balance"`
	TotalBets   int             `json:"total_bets"`
	TotalWins   int             `json:"total_wins"`
	TotalProfit decimal.Decimal `json:"total_profit"`
	CreatedAt   time.Time       `json:"created_at"`
}

// RoundMoney applies the 2-decimal fixed-point rule used at every money
// mutation boundary.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
