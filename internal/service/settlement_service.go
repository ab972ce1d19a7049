package service

import (
	"context"
	"errors"
	"fmt"

	"betmachine/internal/core/domain"
	"betmachine/internal/core/ports"
	"betmachine/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// SettlementServiceImpl implements ports.SettlementService. It owns the
// pending->win and pending->lose transitions.
type SettlementServiceImpl struct {
	userRepo   ports.UserRepository
	betRepo    ports.BetRepository
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewSettlementService creates a new SettlementServiceImpl.
func NewSettlementService(
	userRepo ports.UserRepository,
	betRepo ports.BetRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *SettlementServiceImpl {
	return &SettlementServiceImpl{
		userRepo:   userRepo,
		betRepo:    betRepo,
		transactor: transactor,
		log:        log,
	}
}

// Settle resolves every pending bet on the event in one transaction. A bet
// that lost its conditional transition (settled concurrently, e.g. by a
// cashout) is skipped, never double-paid, so re-running after a crash is
// safe.
func (s *SettlementServiceImpl) Settle(ctx context.Context, eventID, winningPick string) ([]ports.SettledBet, error) {
	var settled []ports.SettledBet

	err := withTxRetry(ctx, s.log, "settle", func(ctx context.Context) error {
		settled = settled[:0]

		dbTx, err := s.transactor.Begin(ctx)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
		}
		defer dbTx.Rollback(ctx) //nolint:errcheck

		bets, err := s.betRepo.ListPendingByEvent(ctx, dbTx, eventID)
		if err != nil {
			return err
		}

		for i := range bets {
			bet := &bets[i]

			outcome := domain.BetResultLose
			if bet.Pick == winningPick {
				outcome = domain.BetResultWin
			}

			applied, err := s.betRepo.MarkResult(ctx, dbTx, bet.ID, outcome)
			if err != nil {
				return err
			}
			if !applied {
				continue
			}

			payout := decimal.Zero
			if outcome == domain.BetResultWin {
				payout = bet.PotentialWin
				profit := payout.Sub(bet.Amount)
				if err := s.userRepo.ApplySettlement(ctx, dbTx, bet.UserID, payout, profit, true); err != nil {
					return err
				}
			} else {
				// Balance already reflects the stake debit from
				// placement; only the profit counter moves.
				if err := s.userRepo.ApplySettlement(ctx, dbTx, bet.UserID, decimal.Zero, bet.Amount.Neg(), false); err != nil {
					return err
				}
			}

			settled = append(settled, ports.SettledBet{
				BetID:   bet.ID,
				UserID:  bet.UserID,
				Outcome: outcome,
				Payout:  payout,
			})
		}

		if err := dbTx.Commit(ctx); err != nil {
			return fmt.Errorf("commit tx: %w", err)
		}
		return nil
	})
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperror.ErrDatabaseError(err)
	}

	if len(settled) > 0 {
		s.log.Info().
			Str("event_id", eventID).
			Str("winning_pick", winningPick).
			Int("settled", len(settled)).
			Msg("event settled")
	}
	return settled, nil
}
