package redis

import (
	"context"
	"testing"
	"time"

	"betmachine/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() *domain.EventSnapshot {
	return &domain.EventSnapshot{
		Events: []domain.Event{
			{
				ID:           "evt-001",
				Title:        "Arsenal vs Chelsea",
				League:       "EPL",
				Category:     "football",
				TeamA:        "Arsenal",
				TeamB:        "Chelsea",
				OddsA:        decimal.RequireFromString("2.10"),
				OddsDraw:     decimal.RequireFromString("3.40"),
				OddsB:        decimal.RequireFromString("3.20"),
				CommenceTime: time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC),
				Status:       "upcoming",
			},
			{
				ID:       "evt-002",
				Title:    "Lakers vs Celtics",
				Category: "basketball",
				TeamA:    "Lakers",
				TeamB:    "Celtics",
				OddsA:    decimal.RequireFromString("1.85"),
				OddsB:    decimal.RequireFromString("1.95"),
				Status:   "upcoming",
			},
		},
		UpdatedAt: time.Date(2026, 2, 28, 12, 0, 0, 0, time.UTC),
	}
}

func TestSnapshotStore_SaveAndLoad(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewSnapshotStore(client, 24*time.Hour)
	ctx := context.Background()

	// Load before save => nil
	snap, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.Nil(t, snap)

	// Save
	err = store.Save(ctx, testSnapshot())
	require.NoError(t, err)

	// Load after save
	snap, err = store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap)
	require.Len(t, snap.Events, 2)
	assert.Equal(t, "evt-001", snap.Events[0].ID)
	assert.True(t, snap.Events[0].OddsDraw.Equal(decimal.RequireFromString("3.40")))
	assert.True(t, snap.Events[0].HasDraw())
	assert.False(t, snap.Events[1].HasDraw())
	assert.True(t, snap.UpdatedAt.Equal(time.Date(2026, 2, 28, 12, 0, 0, 0, time.UTC)))
}

func TestSnapshotStore_TTLExpiry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewSnapshotStore(client, 1*time.Second)
	ctx := context.Background()

	err := store.Save(ctx, testSnapshot())
	require.NoError(t, err)

	// Fast-forward time in miniredis
	s.FastForward(2 * time.Second)

	snap, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.Nil(t, snap, "expired snapshot should return nil")
}

func TestSnapshotStore_OverwriteReplacesWholesale(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewSnapshotStore(client, 1*time.Hour)
	ctx := context.Background()

	err := store.Save(ctx, testSnapshot())
	require.NoError(t, err)

	replacement := &domain.EventSnapshot{
		Events: []domain.Event{
			{ID: "evt-099", Category: "tennis", TeamA: "Alcaraz", TeamB: "Sinner"},
		},
		UpdatedAt: time.Now().UTC().Truncate(time.Second),
	}
	err = store.Save(ctx, replacement)
	require.NoError(t, err)

	snap, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Events, 1)
	assert.Equal(t, "evt-099", snap.Events[0].ID)
}
