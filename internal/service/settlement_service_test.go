package service

import (
	"context"
	"testing"

	"betmachine/internal/core/domain"
	"betmachine/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type settlementTestDeps struct {
	svc        *SettlementServiceImpl
	userRepo   *mocks.MockUserRepository
	betRepo    *mocks.MockBetRepository
	transactor *mocks.MockDBTransactor
	ctrl       *gomock.Controller
}

func setupSettlementService(t *testing.T) *settlementTestDeps {
	ctrl := gomock.NewController(t)
	d := &settlementTestDeps{
		userRepo:   mocks.NewMockUserRepository(ctrl),
		betRepo:    mocks.NewMockBetRepository(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewSettlementService(d.userRepo, d.betRepo, d.transactor, zerolog.Nop())
	return d
}

func eventBet(id, userID int64, pick string, stake, potential int64) domain.Bet {
	return domain.Bet{
		ID:               id,
		UserID:           userID,
		EventID:          "evt-100",
		Pick:             pick,
		Amount:           decimal.NewFromInt(stake),
		PotentialWin:     decimal.NewFromInt(potential),
		Result:           domain.BetResultPending,
		CashoutAvailable: true,
	}
}

func TestSettlementService_Settle_WinnersAndLosers(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	winner := eventBet(1, 42, domain.PickTeamA, 100, 210)
	loser := eventBet(2, 43, domain.PickTeamB, 50, 160)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.betRepo.EXPECT().
		ListPendingByEvent(ctx, tx, "evt-100").
		Return([]domain.Bet{winner, loser}, nil)

	d.betRepo.EXPECT().
		MarkResult(ctx, tx, int64(1), domain.BetResultWin).
		Return(true, nil)
	// Win: credit the frozen payout, profit moves by payout - stake.
	d.userRepo.EXPECT().
		ApplySettlement(ctx, tx, int64(42), decEq(decimal.NewFromInt(210)), decEq(decimal.NewFromInt(110)), true).
		Return(nil)

	d.betRepo.EXPECT().
		MarkResult(ctx, tx, int64(2), domain.BetResultLose).
		Return(true, nil)
	// Loss: no balance change, profit drops by the stake.
	d.userRepo.EXPECT().
		ApplySettlement(ctx, tx, int64(43), decEq(decimal.Zero), decEq(decimal.NewFromInt(-50)), false).
		Return(nil)

	settled, err := d.svc.Settle(ctx, "evt-100", domain.PickTeamA)
	require.NoError(t, err)
	require.Len(t, settled, 2)

	assert.Equal(t, int64(1), settled[0].BetID)
	assert.Equal(t, domain.BetResultWin, settled[0].Outcome)
	assert.True(t, settled[0].Payout.Equal(decimal.NewFromInt(210)))

	assert.Equal(t, int64(2), settled[1].BetID)
	assert.Equal(t, domain.BetResultLose, settled[1].Outcome)
	assert.True(t, settled[1].Payout.IsZero())
}

func TestSettlementService_Settle_SkipsConcurrentlySettledBet(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	racing := eventBet(1, 42, domain.PickTeamA, 100, 210)
	clean := eventBet(2, 43, domain.PickTeamA, 20, 42)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.betRepo.EXPECT().
		ListPendingByEvent(ctx, tx, "evt-100").
		Return([]domain.Bet{racing, clean}, nil)

	// Bet 1 was cashed out between the list and the transition: skip it,
	// no credit.
	d.betRepo.EXPECT().
		MarkResult(ctx, tx, int64(1), domain.BetResultWin).
		Return(false, nil)

	d.betRepo.EXPECT().
		MarkResult(ctx, tx, int64(2), domain.BetResultWin).
		Return(true, nil)
	d.userRepo.EXPECT().
		ApplySettlement(ctx, tx, int64(43), decEq(decimal.NewFromInt(42)), decEq(decimal.NewFromInt(22)), true).
		Return(nil)

	settled, err := d.svc.Settle(ctx, "evt-100", domain.PickTeamA)
	require.NoError(t, err)
	require.Len(t, settled, 1)
	assert.Equal(t, int64(2), settled[0].BetID)
}

func TestSettlementService_Settle_NoPendingBets(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.betRepo.EXPECT().
		ListPendingByEvent(ctx, tx, "evt-100").
		Return(nil, nil)

	settled, err := d.svc.Settle(ctx, "evt-100", domain.PickDraw)
	require.NoError(t, err)
	assert.Empty(t, settled)
}
