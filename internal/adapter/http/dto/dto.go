// Package dto defines request bodies for the public API.
package dto

import "github.com/shopspring/decimal"

// BetRequest is the body of POST /api/bet.
type BetRequest struct {
	UserID     int64           `json:"user_id" binding:"required"`
	EventID    string          `json:"event_id" binding:"required,max=100"`
	EventTitle string          `json:"event_title" binding:"required,max=200"`
	Pick       string          `json:"pick" binding:"required,oneof=team_a draw team_b"`
	PickLabel  string          `json:"pick_label" binding:"max=100"`
	Odds       decimal.Decimal `json:"odds" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
}

// CashoutRequest is the body of POST /api/cashout.
type CashoutRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
	BetID  int64 `json:"bet_id" binding:"required"`
}

// QuickBetRequest is the body of POST /api/quick-bet.
type QuickBetRequest struct {
	UserID int64           `json:"user_id" binding:"required"`
	Game   string          `json:"game" binding:"required,oneof=coinflip dice roulette"`
	Pick   string          `json:"pick" binding:"required,max=20"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}
