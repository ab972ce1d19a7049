package ports

import (
	"context"
	"time"

	"betmachine/internal/core/domain"

	"github.com/shopspring/decimal"
)

// WalletService owns all balance mutation.
type WalletService interface {
	GetOrCreate(ctx context.Context, userID int64, username string) (*domain.User, error)
	Balance(ctx context.Context, userID int64) (decimal.Decimal, error)
	// Adjust atomically applies delta and returns the new balance.
	Adjust(ctx context.Context, userID int64, delta decimal.Decimal) (decimal.Decimal, error)
	Leaderboard(ctx context.Context) ([]domain.User, error)
}

// PlaceBetRequest carries a wager against a cached event.
type PlaceBetRequest struct {
	UserID     int64
	EventID    string
	EventTitle string
	Pick       string
	PickLabel  string
	Odds       decimal.Decimal
	Amount     decimal.Decimal
}

// QuickPlayRequest carries an instant mini-game wager.
type QuickPlayRequest struct {
	UserID int64
	Game   string
	Pick   string
	Amount decimal.Decimal
}

// QuickPlayResult is the settled outcome of one instant play.
type QuickPlayResult struct {
	Game       string          `json:"game"`
	Pick       string          `json:"pick"`
	Result     string          `json:"result"`
	Win        bool            `json:"win"`
	Winnings   decimal.Decimal `json:"winnings"`
	NewBalance decimal.Decimal `json:"new_balance"`
}

// CashoutResult is the payout of an early voluntary settlement.
type CashoutResult struct {
	BetID         int64           `json:"bet_id"`
	CashoutAmount decimal.Decimal `json:"cashout_amount"`
	NewBalance    decimal.Decimal `json:"new_balance"`
}

// BetService validates and places wagers.
type BetService interface {
	PlaceBet(ctx context.Context, req PlaceBetRequest) (*domain.Bet, decimal.Decimal, error)
	QuickPlay(ctx context.Context, req QuickPlayRequest) (*QuickPlayResult, error)
	Cashout(ctx context.Context, userID, betID int64) (*CashoutResult, error)
	UserBets(ctx context.Context, userID int64) ([]domain.Bet, error)
}

// SettledBet records one bet resolved by a settlement pass.
type SettledBet struct {
	BetID   int64
	UserID  int64
	Outcome domain.BetResult
	Payout  decimal.Decimal
}

// SettlementService resolves pending bets once an event outcome is known.
type SettlementService interface {
	Settle(ctx context.Context, eventID, winningPick string) ([]SettledBet, error)
}

// EventService serves the time-bounded event cache.
type EventService interface {
	// Events returns the cached set filtered by category, refreshing first
	// when the snapshot is older than the configured TTL.
	Events(ctx context.Context, category string) ([]domain.Event, time.Time, error)
	// Refresh forces a synchronous refresh regardless of snapshot age.
	Refresh(ctx context.Context) error
}

// EventResult is a completed match from the scores feed with its derived
// winning outcome.
type EventResult struct {
	EventID   string
	Completed bool
	// Winner is a pick code: team_a, team_b or draw. Empty when the
	// outcome could not be determined.
	Winner string
	Score  string
}

// OddsFeed is the opaque external odds/scores source.
type OddsFeed interface {
	// FetchOdds returns the upcoming events for one sport key, already
	// parsed into the internal shape; events without complete primary
	// pricing are dropped.
	FetchOdds(ctx context.Context, sportKey string) ([]domain.Event, error)
	// FetchScores returns completed matches for one sport key within the
	// lookback window.
	FetchScores(ctx context.Context, sportKey string, lookbackDays int) ([]EventResult, error)
}
