package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"betmachine/config"
	"betmachine/internal/core/domain"
	"betmachine/internal/core/ports"
	"betmachine/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

type reconcilerTestDeps struct {
	rec        *Reconciler
	feed       *mocks.MockOddsFeed
	betRepo    *mocks.MockBetRepository
	settlement *mocks.MockSettlementService
	ctrl       *gomock.Controller
}

func setupReconciler(t *testing.T, sports []string) *reconcilerTestDeps {
	ctrl := gomock.NewController(t)
	d := &reconcilerTestDeps{
		feed:       mocks.NewMockOddsFeed(ctrl),
		betRepo:    mocks.NewMockBetRepository(ctrl),
		settlement: mocks.NewMockSettlementService(ctrl),
		ctrl:       ctrl,
	}
	d.rec = NewReconciler(
		d.feed, d.betRepo, d.settlement,
		config.OddsConfig{Sports: sports},
		config.ReconcilerConfig{Interval: 600 * time.Second, LookbackDays: 3},
		zerolog.Nop(),
	)
	return d
}

func TestReconciler_SettlesOnlyEventsWithPendingBets(t *testing.T) {
	d := setupReconciler(t, []string{"soccer_epl"})
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.betRepo.EXPECT().PendingEventIDs(ctx).Return([]string{"evt-100"}, nil)
	d.feed.EXPECT().FetchScores(ctx, "soccer_epl", 3).Return([]ports.EventResult{
		{EventID: "evt-100", Completed: true, Winner: domain.PickTeamA, Score: "2:1"},
		{EventID: "evt-999", Completed: true, Winner: domain.PickTeamB, Score: "0:3"},
		{EventID: "evt-100", Completed: false},
	}, nil)
	// Only the completed match holding pending bets is settled.
	d.settlement.EXPECT().
		Settle(ctx, "evt-100", domain.PickTeamA).
		Return([]ports.SettledBet{{BetID: 1, UserID: 42, Outcome: domain.BetResultWin}}, nil)

	d.rec.RunOnce(ctx)
}

func TestReconciler_NoPendingBetsSkipsFeed(t *testing.T) {
	d := setupReconciler(t, []string{"soccer_epl"})
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.betRepo.EXPECT().PendingEventIDs(ctx).Return(nil, nil)
	// No FetchScores expectation: the cycle ends early.

	d.rec.RunOnce(ctx)
}

func TestReconciler_SportFailureIsIsolated(t *testing.T) {
	d := setupReconciler(t, []string{"soccer_epl", "basketball_nba"})
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.betRepo.EXPECT().PendingEventIDs(ctx).Return([]string{"evt-200"}, nil)
	d.feed.EXPECT().FetchScores(ctx, "soccer_epl", 3).
		Return(nil, errors.New("feed down"))
	d.feed.EXPECT().FetchScores(ctx, "basketball_nba", 3).Return([]ports.EventResult{
		{EventID: "evt-200", Completed: true, Winner: domain.PickTeamB, Score: "98:102"},
	}, nil)
	d.settlement.EXPECT().
		Settle(ctx, "evt-200", domain.PickTeamB).
		Return(nil, nil)

	d.rec.RunOnce(ctx)
}

func TestReconciler_SettlementFailureContinuesCycle(t *testing.T) {
	d := setupReconciler(t, []string{"soccer_epl"})
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.betRepo.EXPECT().PendingEventIDs(ctx).Return([]string{"evt-1", "evt-2"}, nil)
	d.feed.EXPECT().FetchScores(ctx, "soccer_epl", 3).Return([]ports.EventResult{
		{EventID: "evt-1", Completed: true, Winner: domain.PickDraw, Score: "1:1"},
		{EventID: "evt-2", Completed: true, Winner: domain.PickTeamA, Score: "3:0"},
	}, nil)
	d.settlement.EXPECT().
		Settle(ctx, "evt-1", domain.PickDraw).
		Return(nil, errors.New("storage down"))
	d.settlement.EXPECT().
		Settle(ctx, "evt-2", domain.PickTeamA).
		Return(nil, nil)

	d.rec.RunOnce(ctx)
}

func TestReconciler_RunStopsOnCancel(t *testing.T) {
	d := setupReconciler(t, nil)
	defer d.ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	d.betRepo.EXPECT().PendingEventIDs(gomock.Any()).Return(nil, nil).AnyTimes()

	done := make(chan struct{})
	go func() {
		d.rec.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("reconciler did not stop on context cancellation")
	}
}
