package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"betmachine/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// SnapshotStore implements ports.SnapshotStore using Redis.
// It persists the last known odds snapshot so a restart (or an
// exhausted feed quota) can serve stale-but-usable events instead
// of an empty board.
type SnapshotStore struct {
	client *goredis.Client
	key    string
	ttl    time.Duration
}

// NewSnapshotStore creates a new Redis-backed snapshot store. The TTL is
// deliberately much longer than the in-memory freshness window so the
// durable copy outlives transient feed outages.
func NewSnapshotStore(client *goredis.Client, ttl time.Duration) *SnapshotStore {
	return &SnapshotStore{
		client: client,
		key:    "events:snapshot",
		ttl:    ttl,
	}
}

// Save stores the snapshot, replacing any previous one.
func (s *SnapshotStore) Save(ctx context.Context, snap *domain.EventSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis snapshot set: %w", err)
	}
	return nil
}

// Load retrieves the stored snapshot.
// Returns nil, nil if no snapshot exists.
func (s *SnapshotStore) Load(ctx context.Context) (*domain.EventSnapshot, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis snapshot get: %w", err)
	}
	var snap domain.EventSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshaling snapshot: %w", err)
	}
	return &snap, nil
}
