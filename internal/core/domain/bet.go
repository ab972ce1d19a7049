package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BetResult is the bet's lifecycle state.
type BetResult string

const (
	BetResultPending BetResult = "pending"
	BetResultWin     BetResult = "win"
	BetResultLose    BetResult = "lose"
	BetResultCashout BetResult = "cashout"
)

// Pick codes for event outcomes.
const (
	PickTeamA = "team_a"
	PickDraw  = "draw"
	PickTeamB = "team_b"
)

// Bet is a single wager with a frozen stake and potential payout.
// Stake and PotentialWin are immutable once set; Result moves out of
// pending at most once.
type Bet struct {
	ID               int64           `json:"id"`
	UserID           int64           `json:"user_id"`
	EventID          string          `json:"event_id"`
	EventTitle       string          `json:"event_title"`
	Pick             string          `json:"pick"`
	PickLabel        string          `json:"pick_label"`
	Odds             decimal.Decimal `json:"odds"`
	Amount           decimal.Decimal `json:"amount"`
	PotentialWin     decimal.Decimal `json:"potential_win"`
	Result           BetResult       `json:"result"`
	CashoutAvailable bool            `json:"cashout_available"`
	CreatedAt        time.Time       `json:"created_at"`
}

// IsTerminal returns true once the bet has settled (win, lose or cashout).
func (b *Bet) IsTerminal() bool {
	return b.Result != BetResultPending
}

// CanCashout reports whether an early cashout is still permitted.
func (b *Bet) CanCashout() bool {
	return b.Result == BetResultPending && b.CashoutAvailable
}

// PotentialPayout computes the frozen payout recorded at placement time.
func PotentialPayout(amount, odds decimal.Decimal) decimal.Decimal {
	return RoundMoney(amount.Mul(odds))
}
