package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"betmachine/config"
	"betmachine/internal/core/domain"
	"betmachine/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type eventTestDeps struct {
	svc       *EventServiceImpl
	feed      *mocks.MockOddsFeed
	snapStore *mocks.MockSnapshotStore
	ctrl      *gomock.Controller
}

func setupEventService(t *testing.T, sports []string) *eventTestDeps {
	ctrl := gomock.NewController(t)
	d := &eventTestDeps{
		feed:      mocks.NewMockOddsFeed(ctrl),
		snapStore: mocks.NewMockSnapshotStore(ctrl),
		ctrl:      ctrl,
	}
	d.svc = NewEventService(
		d.feed, d.snapStore,
		config.OddsConfig{Sports: sports},
		config.CacheConfig{EventsTTL: 300 * time.Second},
		zerolog.Nop(),
	)
	return d
}

func feedEvent(id, category string) domain.Event {
	return domain.Event{
		ID:       id,
		Category: category,
		OddsA:    decimal.RequireFromString("1.90"),
		OddsB:    decimal.RequireFromString("1.95"),
		Status:   "upcoming",
	}
}

func TestEventService_Events_RefreshesColdCache(t *testing.T) {
	d := setupEventService(t, []string{"soccer_epl", "basketball_nba"})
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.feed.EXPECT().FetchOdds(ctx, "soccer_epl").
		Return([]domain.Event{feedEvent("e1", "football")}, nil)
	d.feed.EXPECT().FetchOdds(ctx, "basketball_nba").
		Return([]domain.Event{feedEvent("e2", "basketball")}, nil)
	d.snapStore.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	events, updated, err := d.svc.Events(ctx, "")
	require.NoError(t, err)
	assert.Len(t, events, 2)
	assert.WithinDuration(t, time.Now(), updated, 5*time.Second)
}

func TestEventService_Events_ServesFreshSnapshotWithoutFetch(t *testing.T) {
	d := setupEventService(t, []string{"soccer_epl"})
	defer d.ctrl.Finish()
	ctx := context.Background()

	// Exactly one upstream fetch for two reads inside the TTL.
	d.feed.EXPECT().FetchOdds(ctx, "soccer_epl").
		Return([]domain.Event{feedEvent("e1", "football")}, nil).
		Times(1)
	d.snapStore.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(1)

	_, first, err := d.svc.Events(ctx, "")
	require.NoError(t, err)
	_, second, err := d.svc.Events(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEventService_Events_CategoryFilter(t *testing.T) {
	d := setupEventService(t, []string{"soccer_epl", "basketball_nba"})
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.feed.EXPECT().FetchOdds(ctx, "soccer_epl").
		Return([]domain.Event{feedEvent("e1", "football")}, nil)
	d.feed.EXPECT().FetchOdds(ctx, "basketball_nba").
		Return([]domain.Event{feedEvent("e2", "basketball")}, nil)
	d.snapStore.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	events, _, err := d.svc.Events(ctx, "basketball")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "e2", events[0].ID)
}

func TestEventService_Refresh_PerSportFailureIsIsolated(t *testing.T) {
	d := setupEventService(t, []string{"soccer_epl", "basketball_nba"})
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.feed.EXPECT().FetchOdds(ctx, "soccer_epl").
		Return(nil, errors.New("quota exhausted"))
	d.feed.EXPECT().FetchOdds(ctx, "basketball_nba").
		Return([]domain.Event{feedEvent("e2", "basketball")}, nil)
	d.snapStore.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	require.NoError(t, d.svc.Refresh(ctx))

	events, _, err := d.svc.Events(ctx, "")
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestEventService_Refresh_FallsBackToDurableSnapshot(t *testing.T) {
	d := setupEventService(t, []string{"soccer_epl"})
	defer d.ctrl.Finish()
	ctx := context.Background()

	stored := &domain.EventSnapshot{
		Events:    []domain.Event{feedEvent("old", "football")},
		UpdatedAt: time.Now().Add(-time.Hour),
	}

	d.feed.EXPECT().FetchOdds(ctx, "soccer_epl").
		Return(nil, errors.New("feed down"))
	d.snapStore.EXPECT().Load(ctx).Return(stored, nil)

	require.NoError(t, d.svc.Refresh(ctx))

	// Stale but usable beats empty, so subsequent reads inside the loop
	// keep the fallback data.
	snap := d.svc.snapshot.Load()
	require.NotNil(t, snap)
	assert.Equal(t, "old", snap.Events[0].ID)
}

func TestEventService_Refresh_SeedsWhenEverythingEmpty(t *testing.T) {
	d := setupEventService(t, []string{"soccer_epl"})
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.feed.EXPECT().FetchOdds(ctx, "soccer_epl").Return(nil, nil)
	d.snapStore.EXPECT().Load(ctx).Return(nil, nil)
	d.snapStore.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	require.NoError(t, d.svc.Refresh(ctx))

	events, _, err := d.svc.Events(ctx, "")
	require.NoError(t, err)
	assert.NotEmpty(t, events)
	// Demo set carries both draw and no-draw sports.
	assert.Equal(t, "seed_1", events[0].ID)
}

func TestEventService_KeepsSnapshotWhenLaterFetchEmpty(t *testing.T) {
	d := setupEventService(t, []string{"soccer_epl"})
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.feed.EXPECT().FetchOdds(ctx, "soccer_epl").
		Return([]domain.Event{feedEvent("e1", "football")}, nil)
	d.snapStore.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	require.NoError(t, d.svc.Refresh(ctx))

	// Second forced refresh fails upstream; the previous snapshot stays.
	d.feed.EXPECT().FetchOdds(ctx, "soccer_epl").
		Return(nil, errors.New("feed down"))
	require.NoError(t, d.svc.Refresh(ctx))

	events, _, err := d.svc.Events(ctx, "")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "e1", events[0].ID)
}
