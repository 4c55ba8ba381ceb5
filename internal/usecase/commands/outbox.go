package commands

import (
	"context"
	"log/slog"
	"time"

	"field-reservation/internal/pkg/clock"
	"field-reservation/internal/usecase/shared"
)

const (
	outboxBaseBackoff   = 2 * time.Second
	outboxMaxBackoff    = 10 * time.Minute
	DefaultPollInterval = 2 * time.Second
)

// OutboxDispatcher publishes queued lifecycle events. Jobs are claimed with
// SKIP LOCKED so several dispatchers can share the table.
type OutboxDispatcher struct {
	uow         shared.UnitOfWork
	publisher   shared.EventPublisher
	clock       clock.Clock
	batchSize   int32
	maxAttempts int32
}

func NewOutboxDispatcher(uow shared.UnitOfWork, publisher shared.EventPublisher, clk clock.Clock, batchSize, maxAttempts int32) *OutboxDispatcher {
	if batchSize <= 0 {
		batchSize = 50
	}
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return &OutboxDispatcher{
		uow:         uow,
		publisher:   publisher,
		clock:       clk,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
	}
}

// DispatchDue publishes one batch of due jobs and returns how many were sent.
func (d *OutboxDispatcher) DispatchDue(ctx context.Context) (int, error) {
	sent := 0
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		now := d.clock.Now()
		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), now, d.batchSize)
		if err != nil {
			return shared.Persistence(err)
		}

		for _, job := range jobs {
			if perr := d.publisher.Publish(ctx, job.Topic, job.Payload); perr != nil {
				attempts := job.Attempts + 1
				giveUp := attempts >= d.maxAttempts
				slog.WarnContext(ctx, "failed to publish outbox event",
					"job_id", job.ID,
					"topic", job.Topic,
					"attempts", attempts,
					"give_up", giveUp,
					"error", perr)
				if err := tx.Notifications().MarkFailed(ctx, tx.DB(), job.ID, perr.Error(), now.Add(backoff(attempts)), giveUp, now); err != nil {
					return shared.Persistence(err)
				}
				continue
			}
			if err := tx.Notifications().MarkSent(ctx, tx.DB(), job.ID, now); err != nil {
				return shared.Persistence(err)
			}
			sent++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return sent, nil
}

// Run polls until ctx is cancelled. A non-positive interval falls back to
// DefaultPollInterval.
func (d *OutboxDispatcher) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		slog.Warn("invalid outbox poll interval, using default",
			"interval", interval.String(),
			"default", DefaultPollInterval.String())
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sent, err := d.DispatchDue(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				slog.Error("outbox dispatch failed", "error", err)
				continue
			}
			if sent > 0 {
				slog.Debug("outbox events published", "count", sent)
			}
		}
	}
}

func backoff(attempts int32) time.Duration {
	d := outboxBaseBackoff
	for i := int32(1); i < attempts; i++ {
		d *= 2
		if d >= outboxMaxBackoff {
			return outboxMaxBackoff
		}
	}
	return d
}
