package worker

import (
	"context"
	"encoding/json"
	"time"

	"warungpos/internal/infra"
	"warungpos/internal/storage"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueImageCleanup = "jobs:image_cleanup"

	MaxCleanupRetries = 5
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ImageCleanupPayload identifies one orphaned image to remove from blob
// storage. Attempts counts deliveries so far.
type ImageCleanupPayload struct {
	ImageURL string `json:"imageUrl"`
	Attempts int    `json:"attempts"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueImageCleanup schedules deletion of a stored image. Callers treat
// this as best-effort: a failed enqueue is logged, never bubbled up, so a
// menu delete always succeeds even when Redis is down.
func (d *Dispatcher) EnqueueImageCleanup(ctx context.Context, imageURL string) {
	if imageURL == "" {
		return
	}
	if err := d.enqueue(ctx, QueueImageCleanup, "image_cleanup", ImageCleanupPayload{ImageURL: imageURL}); err != nil {
		log.Error().Err(err).Str("image_url", imageURL).Msg("failed to enqueue image cleanup")
	}
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// Pool consumes cleanup jobs and executes them against blob storage through
// the circuit breaker.
type Pool struct {
	rdb   *redis.Client
	store storage.ImageStorage
	cb    *infra.CircuitBreaker
}

func NewPool(rdb *redis.Client, store storage.ImageStorage, cb *infra.CircuitBreaker) *Pool {
	return &Pool{rdb: rdb, store: store, cb: cb}
}

// Start launches numWorkers goroutines consuming the cleanup queue.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func (p *Pool) Start(ctx context.Context, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go p.runWorker(ctx, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func (p *Pool) runWorker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := p.rdb.BRPop(ctx, 5*time.Second, QueueImageCleanup).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			p.processJob(ctx, result[0], result[1])
		}
	}
}

func (p *Pool) processJob(ctx context.Context, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}
	if job.Type != "image_cleanup" {
		log.Warn().Str("type", job.Type).Str("queue", queue).Msg("unknown job type")
		return
	}

	var payload ImageCleanupPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal image cleanup payload")
		return
	}
	payload.Attempts++

	err := p.cb.Execute(func() error {
		return p.store.Delete(ctx, payload.ImageURL)
	})
	if err == nil {
		log.Info().Str("image_url", payload.ImageURL).Int("attempts", payload.Attempts).Msg("orphaned image removed")
		return
	}

	if payload.Attempts >= MaxCleanupRetries {
		data, _ := json.Marshal(payload)
		SendToDLQ(ctx, p.rdb, QueueImageCleanup, job.Type, data, err.Error(), payload.Attempts)
		return
	}

	if schedErr := ScheduleRetry(ctx, p.rdb, payload); schedErr != nil {
		log.Error().Err(schedErr).Str("image_url", payload.ImageURL).Msg("failed to schedule cleanup retry")
		return
	}
	log.Warn().
		Err(err).
		Str("image_url", payload.ImageURL).
		Int("attempts", payload.Attempts).
		Msg("image cleanup failed, retry scheduled")
}
