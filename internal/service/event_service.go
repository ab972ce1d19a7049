package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"betmachine/config"
	"betmachine/internal/core/domain"
	"betmachine/internal/core/ports"
	"betmachine/pkg/apperror"

	"github.com/rs/zerolog"
)

// EventServiceImpl implements ports.EventService: a time-bounded in-memory
// snapshot of upcoming events with a durable Redis fallback. Readers take no
// lock; refreshes build a new snapshot and swap the pointer, so a reader
// never observes a half-updated set.
type EventServiceImpl struct {
	feed      ports.OddsFeed
	snapStore ports.SnapshotStore
	sports    []string
	ttl       time.Duration
	log       zerolog.Logger

	snapshot atomic.Pointer[domain.EventSnapshot]
	// refreshMu collapses concurrent stale reads into one upstream fetch.
	refreshMu sync.Mutex
}

// NewEventService creates a new EventServiceImpl.
func NewEventService(
	feed ports.OddsFeed,
	snapStore ports.SnapshotStore,
	oddsCfg config.OddsConfig,
	cacheCfg config.CacheConfig,
	log zerolog.Logger,
) *EventServiceImpl {
	return &EventServiceImpl{
		feed:      feed,
		snapStore: snapStore,
		sports:    oddsCfg.Sports,
		ttl:       cacheCfg.EventsTTL,
		log:       log,
	}
}

// Events returns the cached event set filtered by category, refreshing
// synchronously first when the snapshot is missing or older than the TTL.
func (s *EventServiceImpl) Events(ctx context.Context, category string) ([]domain.Event, time.Time, error) {
	snap := s.snapshot.Load()
	if snap == nil || snap.Age(time.Now()) > s.ttl {
		if err := s.refresh(ctx, false); err != nil {
			return nil, time.Time{}, err
		}
		snap = s.snapshot.Load()
	}
	return snap.Filter(category), snap.UpdatedAt, nil
}

// Refresh forces a synchronous refresh regardless of snapshot age.
func (s *EventServiceImpl) Refresh(ctx context.Context) error {
	return s.refresh(ctx, true)
}

// refresh fetches odds for every tracked sport, swaps in the new snapshot
// and persists it to the fallback store. A per-sport failure skips that
// sport only. When the whole fetch yields nothing, the durable fallback is
// served instead; when that is empty too, the demo seed set bootstraps the
// cache.
func (s *EventServiceImpl) refresh(ctx context.Context, force bool) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	// Another request may have refreshed while this one waited.
	if !force {
		if snap := s.snapshot.Load(); snap != nil && snap.Age(time.Now()) <= s.ttl {
			return nil
		}
	}

	var events []domain.Event
	for _, sportKey := range s.sports {
		fetched, err := s.feed.FetchOdds(ctx, sportKey)
		if err != nil {
			s.log.Warn().Err(err).Str("sport", sportKey).Msg("odds fetch failed, skipping sport")
			continue
		}
		events = append(events, fetched...)
	}

	if len(events) > 0 {
		snap := &domain.EventSnapshot{Events: events, UpdatedAt: time.Now().UTC()}
		s.snapshot.Store(snap)
		if err := s.snapStore.Save(ctx, snap); err != nil {
			s.log.Warn().Err(err).Msg("persisting event snapshot failed")
		}
		s.log.Info().Int("events", len(events)).Msg("event cache refreshed")
		return nil
	}

	// Live fetch came up empty. Keep serving whatever we already hold.
	if snap := s.snapshot.Load(); snap != nil {
		s.log.Warn().Msg("odds fetch yielded no events, keeping current snapshot")
		return nil
	}

	stored, err := s.snapStore.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("loading fallback snapshot failed")
	}
	if stored != nil && len(stored.Events) > 0 {
		s.snapshot.Store(stored)
		s.log.Info().
			Int("events", len(stored.Events)).
			Time("updated", stored.UpdatedAt).
			Msg("serving durable fallback snapshot")
		return nil
	}
	if err != nil {
		return apperror.ErrFeedUnavailable(err)
	}

	seed := &domain.EventSnapshot{Events: seedEvents(), UpdatedAt: time.Now().UTC()}
	s.snapshot.Store(seed)
	if err := s.snapStore.Save(ctx, seed); err != nil {
		s.log.Warn().Err(err).Msg("persisting seed snapshot failed")
	}
	s.log.Info().Int("events", len(seed.Events)).Msg("event cache bootstrapped with seed set")
	return nil
}
