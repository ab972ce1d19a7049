package ports

import (
	"context"

	"betmachine/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// UserRepository defines persistence operations for ledger accounts.
// Methods accepting pgx.Tx run inside transaction blocks so that a debit and
// its bet record commit or roll back as one unit.
type UserRepository interface {
	// GetOrCreate provisions the user with the starting balance on first
	// contact and returns the row either way.
	GetOrCreate(ctx context.Context, userID int64, username string, startBalance decimal.Decimal) (*domain.User, error)
	GetByID(ctx context.Context, userID int64) (*domain.User, error)
	// AdjustBalance atomically adds delta (positive or negative) to the
	// balance in a single statement and returns the new balance. No
	// lower-bound check: overdraft prevention is the caller's concern.
	AdjustBalance(ctx context.Context, userID int64, delta decimal.Decimal) (decimal.Decimal, error)
	// DebitStake conditionally debits a stake and bumps total_bets inside
	// tx, returning the new balance. Returns ok=false when the balance does
	// not cover the amount.
	DebitStake(ctx context.Context, tx pgx.Tx, userID int64, amount decimal.Decimal) (decimal.Decimal, bool, error)
	// Credit adds amount to the balance inside tx and returns the new balance.
	Credit(ctx context.Context, tx pgx.Tx, userID int64, amount decimal.Decimal) (decimal.Decimal, error)
	// ApplySettlement records a settlement outcome: credit is added to the
	// balance (zero on a loss), profitDelta to total_profit, and total_wins
	// is bumped when won is true. One statement, one row.
	ApplySettlement(ctx context.Context, tx pgx.Tx, userID int64, credit, profitDelta decimal.Decimal, won bool) error
	// Leaderboard returns the top users ordered by balance descending.
	Leaderboard(ctx context.Context, limit int) ([]domain.User, error)
}

// BetRepository defines persistence operations for bet records.
type BetRepository interface {
	// Create inserts the bet inside tx and fills in the store-assigned id.
	Create(ctx context.Context, tx pgx.Tx, bet *domain.Bet) error
	GetByID(ctx context.Context, betID int64) (*domain.Bet, error)
	// ListByUser returns the most recent bets, newest first.
	ListByUser(ctx context.Context, userID int64, limit int) ([]domain.Bet, error)
	// PendingEventIDs returns the distinct event ids that still have
	// pending bets. Feeds the reconciliation loop.
	PendingEventIDs(ctx context.Context) ([]string, error)
	ListPendingByEvent(ctx context.Context, tx pgx.Tx, eventID string) ([]domain.Bet, error)
	// MarkResult performs the conditional pending->result transition. The
	// predicate includes result='pending', so of two racing writers exactly
	// one observes applied=true; the other treats the bet as already settled.
	MarkResult(ctx context.Context, tx pgx.Tx, betID int64, result domain.BetResult) (bool, error)
}

// SnapshotStore is the durable fallback for the event cache. A process
// restart serves the stored snapshot until the first live refresh lands.
type SnapshotStore interface {
	Save(ctx context.Context, snap *domain.EventSnapshot) error
	// Load returns nil, nil when no snapshot has been stored yet.
	Load(ctx context.Context) (*domain.EventSnapshot, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
