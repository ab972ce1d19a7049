package service

import (
	"context"
	"errors"
	"time"

	"betmachine/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

const (
	maxTxAttempts  = 3
	retryBaseDelay = 50 * time.Millisecond
)

// isRetryableTxError reports whether the error is transient write contention:
// a serialization failure or a deadlock, both safe to retry from scratch.
func isRetryableTxError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}

// withTxRetry runs fn up to maxTxAttempts times, retrying only on transient
// contention. The last contention error surfaces as a storage conflict.
func withTxRetry(ctx context.Context, log zerolog.Logger, op string, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = fn(ctx)
		if err == nil || !isRetryableTxError(err) {
			return err
		}
		log.Warn().
			Err(err).
			Str("op", op).
			Int("attempt", attempt).
			Msg("transient storage contention, retrying")

		select {
		case <-time.After(retryBaseDelay * time.Duration(attempt)):
		case <-ctx.Done():
			return apperror.ErrStorageConflict(ctx.Err())
		}
	}
	return apperror.ErrStorageConflict(err)
}
