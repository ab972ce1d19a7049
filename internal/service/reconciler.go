package service

import (
	"context"
	"time"

	"betmachine/config"
	"betmachine/internal/core/ports"

	"github.com/rs/zerolog"
)

// Reconciler is the background settlement loop. On every tick it pulls
// completed-match results from the feed, intersects them with the events
// that still carry pending bets, and settles each resolved event. One bad
// sport or event never aborts the cycle.
type Reconciler struct {
	feed       ports.OddsFeed
	betRepo    ports.BetRepository
	settlement ports.SettlementService
	sports     []string
	interval   time.Duration
	lookback   int
	log        zerolog.Logger
}

// NewReconciler creates a new Reconciler.
func NewReconciler(
	feed ports.OddsFeed,
	betRepo ports.BetRepository,
	settlement ports.SettlementService,
	oddsCfg config.OddsConfig,
	cfg config.ReconcilerConfig,
	log zerolog.Logger,
) *Reconciler {
	return &Reconciler{
		feed:       feed,
		betRepo:    betRepo,
		settlement: settlement,
		sports:     oddsCfg.Sports,
		interval:   cfg.Interval,
		lookback:   cfg.LookbackDays,
		log:        log,
	}
}

// Run blocks until ctx is cancelled, executing one cycle immediately and
// then one per interval.
func (r *Reconciler) Run(ctx context.Context) {
	r.log.Info().
		Dur("interval", r.interval).
		Int("lookback_days", r.lookback).
		Msg("reconciliation loop started")

	r.RunOnce(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.log.Info().Msg("reconciliation loop stopped")
			return
		case <-ticker.C:
			r.RunOnce(ctx)
		}
	}
}

// RunOnce executes a single reconciliation cycle.
func (r *Reconciler) RunOnce(ctx context.Context) {
	pendingIDs, err := r.betRepo.PendingEventIDs(ctx)
	if err != nil {
		r.log.Error().Err(err).Msg("reconcile: loading pending event ids failed")
		return
	}
	if len(pendingIDs) == 0 {
		return
	}

	pending := make(map[string]bool, len(pendingIDs))
	for _, id := range pendingIDs {
		pending[id] = true
	}

	for _, sportKey := range r.sports {
		results, err := r.feed.FetchScores(ctx, sportKey, r.lookback)
		if err != nil {
			r.log.Warn().Err(err).Str("sport", sportKey).Msg("reconcile: scores fetch failed, skipping sport")
			continue
		}

		for _, res := range results {
			if !res.Completed || res.Winner == "" || !pending[res.EventID] {
				continue
			}

			settled, err := r.settlement.Settle(ctx, res.EventID, res.Winner)
			if err != nil {
				r.log.Error().Err(err).Str("event_id", res.EventID).Msg("reconcile: settlement failed")
				continue
			}
			r.log.Info().
				Str("event_id", res.EventID).
				Str("winner", res.Winner).
				Str("score", res.Score).
				Int("bets", len(settled)).
				Msg("reconcile: event settled")
			delete(pending, res.EventID)
		}
	}
}
