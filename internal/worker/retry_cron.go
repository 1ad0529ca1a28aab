package worker

// Background goroutine that re-delivers failed image cleanup jobs.
// Failed deletions park in a Redis sorted set scored by their next attempt
// time; the cron moves due entries back onto the main queue. The circuit
// breaker gates each tick so a downed object store is not hammered.

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"time"

	"warungpos/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	RetryZSet = "retry:image_cleanup"

	retryTickInterval = 30 * time.Second
	retryBatchSize    = 10
	retryBaseDelay    = 30 * time.Second
)

// computeRetryBackoff returns the delay before the given attempt number:
// 30s, 1m, 2m, 4m, capped at 10m.
func computeRetryBackoff(attempts int) time.Duration {
	d := retryBaseDelay * time.Duration(math.Pow(2, float64(attempts-1)))
	if d > 10*time.Minute {
		d = 10 * time.Minute
	}
	return d
}

// ScheduleRetry parks a failed cleanup payload until its backoff elapses.
func ScheduleRetry(ctx context.Context, rdb *redis.Client, payload ImageCleanupPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	due := time.Now().Add(computeRetryBackoff(payload.Attempts))
	return rdb.ZAdd(ctx, RetryZSet, redis.Z{
		Score:  float64(due.Unix()),
		Member: data,
	}).Err()
}

// StartRetryCron launches a goroutine that ticks every 30s and re-enqueues
// due retries. It respects the context for graceful shutdown.
func StartRetryCron(ctx context.Context, rdb *redis.Client, dispatcher *Dispatcher, cb *infra.CircuitBreaker) {
	go func() {
		ticker := time.NewTicker(retryTickInterval)
		defer ticker.Stop()

		log.Info().Msg("retry_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("retry_cron: shutting down")
				return
			case <-ticker.C:
				processRetries(ctx, rdb, dispatcher, cb)
			}
		}
	}()
}

func processRetries(ctx context.Context, rdb *redis.Client, dispatcher *Dispatcher, cb *infra.CircuitBreaker) {
	// If the breaker is open, leave everything parked until it recovers
	if cb.State() == infra.CBOpen {
		log.Debug().Msg("retry_cron: circuit breaker is open, skipping tick")
		return
	}

	now := time.Now()
	entries, err := rdb.ZRangeByScore(ctx, RetryZSet, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   strconv.FormatInt(now.Unix(), 10),
		Count: retryBatchSize,
	}).Result()
	if err != nil {
		log.Error().Err(err).Msg("retry_cron: failed to query due retries")
		return
	}
	if len(entries) == 0 {
		return
	}

	log.Info().Int("count", len(entries)).Msg("retry_cron: re-enqueueing due cleanups")

	for _, raw := range entries {
		if err := rdb.ZRem(ctx, RetryZSet, raw).Err(); err != nil {
			log.Error().Err(err).Msg("retry_cron: failed to remove retry entry")
			continue
		}

		var payload ImageCleanupPayload
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			log.Error().Err(err).Msg("retry_cron: bad retry payload, dropping")
			continue
		}
		if err := dispatcher.enqueue(ctx, QueueImageCleanup, "image_cleanup", payload); err != nil {
			log.Error().Err(err).Str("image_url", payload.ImageURL).Msg("retry_cron: re-enqueue failed")
		}
	}
}
