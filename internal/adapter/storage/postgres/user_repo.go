package postgres

import (
	"context"
	"errors"
	"fmt"

	"betmachine/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const userColumns = `user_id, username, balance, total_bets, total_wins, total_profit, created_at`

// UserRepo implements ports.UserRepository.
type UserRepo struct {
	pool Pool
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(pool Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.Username, &u.Balance, &u.TotalBets, &u.TotalWins, &u.TotalProfit, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetOrCreate provisions the user on first contact and returns the row.
// The insert is a no-op when the user already exists, so concurrent first
// contacts for the same id cannot create duplicate rows.
func (r *UserRepo) GetOrCreate(ctx context.Context, userID int64, username string, startBalance decimal.Decimal) (*domain.User, error) {
	insert := `INSERT INTO users (user_id, username, balance)
		VALUES ($1, $2, $3) ON CONFLICT (user_id) DO NOTHING`

	if _, err := r.pool.Exec(ctx, insert, userID, username, startBalance); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	u, err := r.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %d missing after get-or-create", userID)
	}
	return u, nil
}

// GetByID fetches a user. Returns nil, nil when absent.
func (r *UserRepo) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	u, err := scanUser(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// AdjustBalance applies delta in a single atomic read-modify-write. The
// statement serializes concurrent adjustments on the row lock, so no update
// is lost. No lower-bound check here.
func (r *UserRepo) AdjustBalance(ctx context.Context, userID int64, delta decimal.Decimal) (decimal.Decimal, error) {
	query := `UPDATE users SET balance = ROUND(balance + $2, 2) WHERE user_id = $1 RETURNING balance`

	var balance decimal.Decimal
	err := r.pool.QueryRow(ctx, query, userID, delta).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("user not found: %d", userID)
		}
		return decimal.Zero, fmt.Errorf("adjust balance: %w", err)
	}
	return balance, nil
}

// DebitStake debits the stake and bumps total_bets, but only when the
// balance covers the amount. The funds check lives in the predicate so the
// debit and the check are one atomic statement. Returns ok=false when the
// balance does not cover the stake (or the user does not exist).
func (r *UserRepo) DebitStake(ctx context.Context, tx pgx.Tx, userID int64, amount decimal.Decimal) (decimal.Decimal, bool, error) {
	query := `UPDATE users
		SET balance = ROUND(balance - $2, 2), total_bets = total_bets + 1
		WHERE user_id = $1 AND balance >= $2
		RETURNING balance`

	var balance decimal.Decimal
	err := tx.QueryRow(ctx, query, userID, amount).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("debit stake: %w", err)
	}
	return balance, true, nil
}

// Credit adds amount to the balance within a transaction.
func (r *UserRepo) Credit(ctx context.Context, tx pgx.Tx, userID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	query := `UPDATE users SET balance = ROUND(balance + $2, 2) WHERE user_id = $1 RETURNING balance`

	var balance decimal.Decimal
	if err := tx.QueryRow(ctx, query, userID, amount).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("credit balance: %w", err)
	}
	return balance, nil
}

// ApplySettlement records a settlement outcome in one statement: credit goes
// to the balance (zero on a loss — the stake was already debited at
// placement), profitDelta to total_profit, and total_wins is bumped on a win.
func (r *UserRepo) ApplySettlement(ctx context.Context, tx pgx.Tx, userID int64, credit, profitDelta decimal.Decimal, won bool) error {
	winInc := 0
	if won {
		winInc = 1
	}

	query := `UPDATE users
		SET balance = ROUND(balance + $2, 2),
		    total_profit = ROUND(total_profit + $3, 2),
		    total_wins = total_wins + $4
		WHERE user_id = $1`

	tag, err := tx.Exec(ctx, query, userID, credit, profitDelta, winInc)
	if err != nil {
		return fmt.Errorf("apply settlement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %d", userID)
	}
	return nil
}

// Leaderboard returns the top users by balance.
func (r *UserRepo) Leaderboard(ctx context.Context, limit int) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY balance DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan leaderboard row: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leaderboard: %w", err)
	}
	return users, nil
}
