package postgres

import (
	"context"
	"errors"
	"fmt"

	"betmachine/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

const betColumns = `id, user_id, event_id, event_title, pick, pick_label, odds, amount, potential_win, result, cashout_available, created_at`

// BetRepo implements ports.BetRepository.
type BetRepo struct {
	pool Pool
}

// NewBetRepo creates a new BetRepo.
func NewBetRepo(pool Pool) *BetRepo {
	return &BetRepo{pool: pool}
}

func scanBet(row pgx.Row) (*domain.Bet, error) {
	b := &domain.Bet{}
	err := row.Scan(&b.ID, &b.UserID, &b.EventID, &b.EventTitle, &b.Pick, &b.PickLabel,
		&b.Odds, &b.Amount, &b.PotentialWin, &b.Result, &b.CashoutAvailable, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Create inserts a bet within a transaction and fills in the store-assigned id.
func (r *BetRepo) Create(ctx context.Context, tx pgx.Tx, bet *domain.Bet) error {
	query := `INSERT INTO bets
		(user_id, event_id, event_title, pick, pick_label, odds, amount, potential_win, result, cashout_available, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	err := tx.QueryRow(ctx, query,
		bet.UserID, bet.EventID, bet.EventTitle, bet.Pick, bet.PickLabel,
		bet.Odds, bet.Amount, bet.PotentialWin, bet.Result, bet.CashoutAvailable, bet.CreatedAt,
	).Scan(&bet.ID)
	if err != nil {
		return fmt.Errorf("insert bet: %w", err)
	}
	return nil
}

// GetByID fetches a bet. Returns nil, nil when absent.
func (r *BetRepo) GetByID(ctx context.Context, betID int64) (*domain.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets WHERE id = $1`

	b, err := scanBet(r.pool.QueryRow(ctx, query, betID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bet by id: %w", err)
	}
	return b, nil
}

// ListByUser returns the user's most recent bets, newest first.
func (r *BetRepo) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets WHERE user_id = $1 ORDER BY id DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query user bets: %w", err)
	}
	defer rows.Close()

	var bets []domain.Bet
	for rows.Next() {
		b, err := scanBet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bet row: %w", err)
		}
		bets = append(bets, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user bets: %w", err)
	}
	return bets, nil
}

// PendingEventIDs returns distinct event ids that still have pending bets.
func (r *BetRepo) PendingEventIDs(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT event_id FROM bets WHERE result = 'pending'`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query pending event ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan event id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending event ids: %w", err)
	}
	return ids, nil
}

// ListPendingByEvent loads the pending bets for an event within a transaction.
func (r *BetRepo) ListPendingByEvent(ctx context.Context, tx pgx.Tx, eventID string) ([]domain.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets WHERE event_id = $1 AND result = 'pending'`

	rows, err := tx.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("query pending bets: %w", err)
	}
	defer rows.Close()

	var bets []domain.Bet
	for rows.Next() {
		b, err := scanBet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pending bet: %w", err)
		}
		bets = append(bets, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending bets: %w", err)
	}
	return bets, nil
}

// MarkResult performs the conditional pending->result transition. The
// predicate includes result = 'pending', so when a cashout and a settlement
// race on the same bet exactly one update affects a row; the other returns
// false and must treat the bet as already settled.
func (r *BetRepo) MarkResult(ctx context.Context, tx pgx.Tx, betID int64, result domain.BetResult) (bool, error) {
	query := `UPDATE bets SET result = $2, cashout_available = FALSE
		WHERE id = $1 AND result = 'pending'`

	tag, err := tx.Exec(ctx, query, betID, result)
	if err != nil {
		return false, fmt.Errorf("mark bet result: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
