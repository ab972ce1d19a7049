package service

import (
	"context"
	"fmt"

	"betmachine/config"
	"betmachine/internal/core/domain"
	"betmachine/internal/core/ports"
	"betmachine/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// WalletServiceImpl implements ports.WalletService. It is the only
// component that mutates balances outside of bet transactions.
type WalletServiceImpl struct {
	userRepo        ports.UserRepository
	startBalance    decimal.Decimal
	leaderboardSize int
	log             zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(userRepo ports.UserRepository, cfg config.BettingConfig, log zerolog.Logger) *WalletServiceImpl {
	return &WalletServiceImpl{
		userRepo:        userRepo,
		startBalance:    decimal.NewFromFloat(cfg.StartBalance).Round(2),
		leaderboardSize: cfg.LeaderboardSize,
		log:             log,
	}
}

// GetOrCreate provisions the account with the starting balance on first
// contact.
func (s *WalletServiceImpl) GetOrCreate(ctx context.Context, userID int64, username string) (*domain.User, error) {
	user, err := s.userRepo.GetOrCreate(ctx, userID, username, s.startBalance)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get or create user: %w", err))
	}
	return user, nil
}

// Balance returns the current balance for an existing account.
func (s *WalletServiceImpl) Balance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return decimal.Zero, apperror.ErrDatabaseError(fmt.Errorf("get user: %w", err))
	}
	if user == nil {
		return decimal.Zero, apperror.ErrNotFound("User")
	}
	return user.Balance, nil
}

// Adjust atomically applies delta and returns the new balance.
func (s *WalletServiceImpl) Adjust(ctx context.Context, userID int64, delta decimal.Decimal) (decimal.Decimal, error) {
	balance, err := s.userRepo.AdjustBalance(ctx, userID, domain.RoundMoney(delta))
	if err != nil {
		return decimal.Zero, apperror.ErrDatabaseError(fmt.Errorf("adjust balance: %w", err))
	}
	return balance, nil
}

// Leaderboard returns the top accounts ordered by balance.
func (s *WalletServiceImpl) Leaderboard(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.Leaderboard(ctx, s.leaderboardSize)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("leaderboard: %w", err))
	}
	return users, nil
}
