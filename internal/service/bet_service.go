package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"betmachine/config"
	"betmachine/internal/core/domain"
	"betmachine/internal/core/ports"
	"betmachine/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// BetServiceImpl implements ports.BetService. It owns bet creation and the
// pending->cashout transition; settlement transitions belong to the
// settlement service.
type BetServiceImpl struct {
	userRepo   ports.UserRepository
	betRepo    ports.BetRepository
	transactor ports.DBTransactor
	log        zerolog.Logger

	minStake     decimal.Decimal
	cashoutMin   float64
	cashoutMax   float64
	historyLimit int

	// rand.Rand is not safe for concurrent use.
	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewBetService creates a new BetServiceImpl. The rng is injected so draws
// can be seeded deterministically in tests.
func NewBetService(
	userRepo ports.UserRepository,
	betRepo ports.BetRepository,
	transactor ports.DBTransactor,
	cfg config.BettingConfig,
	rng *rand.Rand,
	log zerolog.Logger,
) *BetServiceImpl {
	return &BetServiceImpl{
		userRepo:     userRepo,
		betRepo:      betRepo,
		transactor:   transactor,
		log:          log,
		minStake:     decimal.NewFromFloat(cfg.MinStake).Round(2),
		cashoutMin:   cfg.CashoutMin,
		cashoutMax:   cfg.CashoutMax,
		historyLimit: cfg.BetHistoryLimit,
		rng:          rng,
	}
}

// PlaceBet validates and places a wager against a cached event. The debit
// and the bet insert commit as one unit.
func (s *BetServiceImpl) PlaceBet(ctx context.Context, req ports.PlaceBetRequest) (*domain.Bet, decimal.Decimal, error) {
	if req.Amount.LessThan(s.minStake) {
		return nil, decimal.Zero, apperror.ErrBelowMinimumStake(s.minStake.String())
	}
	if req.Odds.LessThan(decimal.NewFromInt(1)) {
		return nil, decimal.Zero, apperror.Validation("Odds must be at least 1.0")
	}

	amount := domain.RoundMoney(req.Amount)
	bet := &domain.Bet{
		UserID:           req.UserID,
		EventID:          req.EventID,
		EventTitle:       req.EventTitle,
		Pick:             req.Pick,
		PickLabel:        req.PickLabel,
		Odds:             req.Odds,
		Amount:           amount,
		PotentialWin:     domain.PotentialPayout(amount, req.Odds),
		Result:           domain.BetResultPending,
		CashoutAvailable: true,
		CreatedAt:        time.Now().UTC(),
	}

	var newBalance decimal.Decimal
	err := withTxRetry(ctx, s.log, "place_bet", func(ctx context.Context) error {
		dbTx, err := s.transactor.Begin(ctx)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
		}
		defer dbTx.Rollback(ctx) //nolint:errcheck

		balance, ok, err := s.userRepo.DebitStake(ctx, dbTx, req.UserID, amount)
		if err != nil {
			return err
		}
		if !ok {
			return apperror.ErrInsufficientFunds()
		}

		if err := s.betRepo.Create(ctx, dbTx, bet); err != nil {
			return err
		}

		if err := dbTx.Commit(ctx); err != nil {
			return fmt.Errorf("commit tx: %w", err)
		}
		newBalance = balance
		return nil
	})
	if err != nil {
		return nil, decimal.Zero, s.asAppError(err)
	}

	s.log.Info().
		Int64("user_id", req.UserID).
		Int64("bet_id", bet.ID).
		Str("event_id", req.EventID).
		Str("pick", req.Pick).
		Str("amount", amount.String()).
		Msg("bet placed")

	return bet, newBalance, nil
}

// QuickPlay runs an instant mini-game wager: debit, draw, credit on a win,
// all in one transaction. No bet row is persisted.
func (s *BetServiceImpl) QuickPlay(ctx context.Context, req ports.QuickPlayRequest) (*ports.QuickPlayResult, error) {
	if req.Amount.LessThan(s.minStake) {
		return nil, apperror.ErrBelowMinimumStake(s.minStake.String())
	}
	amount := domain.RoundMoney(req.Amount)

	s.rngMu.Lock()
	outcome, err := domain.PlayGame(req.Game, req.Pick, amount, s.rng)
	s.rngMu.Unlock()
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownGame):
			return nil, apperror.ErrUnknownGame(req.Game)
		case errors.Is(err, domain.ErrInvalidPick):
			return nil, apperror.ErrInvalidPick(req.Pick)
		default:
			return nil, apperror.InternalError(err)
		}
	}

	var newBalance decimal.Decimal
	err = withTxRetry(ctx, s.log, "quick_play", func(ctx context.Context) error {
		dbTx, err := s.transactor.Begin(ctx)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
		}
		defer dbTx.Rollback(ctx) //nolint:errcheck

		balance, ok, err := s.userRepo.DebitStake(ctx, dbTx, req.UserID, amount)
		if err != nil {
			return err
		}
		if !ok {
			return apperror.ErrInsufficientFunds()
		}

		if outcome.Win {
			balance, err = s.userRepo.Credit(ctx, dbTx, req.UserID, outcome.Winnings)
			if err != nil {
				return err
			}
			profit := outcome.Winnings.Sub(amount)
			if err := s.userRepo.ApplySettlement(ctx, dbTx, req.UserID, decimal.Zero, profit, true); err != nil {
				return err
			}
		} else {
			if err := s.userRepo.ApplySettlement(ctx, dbTx, req.UserID, decimal.Zero, amount.Neg(), false); err != nil {
				return err
			}
		}

		if err := dbTx.Commit(ctx); err != nil {
			return fmt.Errorf("commit tx: %w", err)
		}
		newBalance = balance
		return nil
	})
	if err != nil {
		return nil, s.asAppError(err)
	}

	s.log.Info().
		Int64("user_id", req.UserID).
		Str("game", req.Game).
		Str("result", outcome.Result).
		Bool("win", outcome.Win).
		Str("amount", amount.String()).
		Msg("quick play resolved")

	return &ports.QuickPlayResult{
		Game:       outcome.Game,
		Pick:       outcome.Pick,
		Result:     outcome.Result,
		Win:        outcome.Win,
		Winnings:   outcome.Winnings,
		NewBalance: newBalance,
	}, nil
}

// Cashout settles a pending bet early at a discounted rate drawn uniformly
// from the configured band. Exactly one of a racing cashout and settlement
// wins the conditional transition; the loser sees "already settled".
func (s *BetServiceImpl) Cashout(ctx context.Context, userID, betID int64) (*ports.CashoutResult, error) {
	bet, err := s.betRepo.GetByID(ctx, betID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get bet: %w", err))
	}
	if bet == nil || bet.UserID != userID {
		return nil, apperror.ErrBetNotFound()
	}
	if bet.IsTerminal() {
		return nil, apperror.ErrBetAlreadySettled()
	}
	if !bet.CanCashout() {
		return nil, apperror.ErrCashoutNotAvailable()
	}

	s.rngMu.Lock()
	rate := s.cashoutMin + s.rng.Float64()*(s.cashoutMax-s.cashoutMin)
	s.rngMu.Unlock()
	payout := domain.RoundMoney(bet.Amount.Mul(decimal.NewFromFloat(rate)))

	var newBalance decimal.Decimal
	err = withTxRetry(ctx, s.log, "cashout", func(ctx context.Context) error {
		dbTx, err := s.transactor.Begin(ctx)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
		}
		defer dbTx.Rollback(ctx) //nolint:errcheck

		applied, err := s.betRepo.MarkResult(ctx, dbTx, betID, domain.BetResultCashout)
		if err != nil {
			return err
		}
		if !applied {
			// Lost the race against a concurrent settlement.
			return apperror.ErrBetAlreadySettled()
		}

		balance, err := s.userRepo.Credit(ctx, dbTx, userID, payout)
		if err != nil {
			return err
		}
		profit := payout.Sub(bet.Amount)
		if err := s.userRepo.ApplySettlement(ctx, dbTx, userID, decimal.Zero, profit, false); err != nil {
			return err
		}

		if err := dbTx.Commit(ctx); err != nil {
			return fmt.Errorf("commit tx: %w", err)
		}
		newBalance = balance
		return nil
	})
	if err != nil {
		return nil, s.asAppError(err)
	}

	s.log.Info().
		Int64("user_id", userID).
		Int64("bet_id", betID).
		Str("payout", payout.String()).
		Msg("bet cashed out")

	return &ports.CashoutResult{
		BetID:         betID,
		CashoutAmount: payout,
		NewBalance:    newBalance,
	}, nil
}

// UserBets returns the most recent bets, newest first.
func (s *BetServiceImpl) UserBets(ctx context.Context, userID int64) ([]domain.Bet, error) {
	bets, err := s.betRepo.ListByUser(ctx, userID, s.historyLimit)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list bets: %w", err))
	}
	return bets, nil
}

// asAppError passes structured rejections through and wraps anything else
// as an internal database failure.
func (s *BetServiceImpl) asAppError(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperror.ErrDatabaseError(err)
}
