package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gustavogago/Produto-de-software/internal/infrastructure/metrics"
	"github.com/gustavogago/Produto-de-software/internal/infrastructure/queue"
	"github.com/gustavogago/Produto-de-software/internal/infrastructure/webhook"
)

// Worker dispatches queued notifications to the webhook endpoint.
type Worker struct {
	id          int
	queue       queue.TaskQueue
	webhook     webhook.Service
	taskTimeout time.Duration
	log         zerolog.Logger
	stopChan    chan struct{}
}

// NewWorker creates a new dispatch worker.
func NewWorker(
	id int,
	taskQueue queue.TaskQueue,
	webhookService webhook.Service,
	taskTimeout time.Duration,
	log zerolog.Logger,
) *Worker {
	return &Worker{
		id:          id,
		queue:       taskQueue,
		webhook:     webhookService,
		taskTimeout: taskTimeout,
		log:         log.With().Int("worker_id", id).Str("component", "worker").Logger(),
		stopChan:    make(chan struct{}),
	}
}

// Start begins processing notifications from the queue.
func (w *Worker) Start(ctx context.Context) {
	w.log.Info().Msg("worker started")

	ticker := time.NewTicker(2 * time.Second) // Poll every 2 seconds
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("worker stopped by context")
			return
		case <-w.stopChan:
			w.log.Info().Msg("worker stopped")
			return
		case <-ticker.C:
			w.processNextTask(ctx)
		}
	}
}

// Stop gracefully stops the worker.
func (w *Worker) Stop() {
	close(w.stopChan)
}

func (w *Worker) processNextTask(ctx context.Context) {
	task, err := w.queue.Dequeue(ctx)
	if err != nil {
		w.log.Error().Err(err).Msg("failed to dequeue notification")
		return
	}

	if task == nil {
		return // Nothing queued
	}

	w.log.Info().
		Str("notification_id", task.NotificationID).
		Str("recipient_id", task.RecipientID).
		Str("type", task.Type).
		Msg("dispatching notification")

	if err := w.queue.MarkDelivering(ctx, task.NotificationID); err != nil {
		w.log.Error().Err(err).Str("notification_id", task.NotificationID).Msg("failed to mark delivering")
		return
	}

	taskCtx, cancel := context.WithTimeout(ctx, w.taskTimeout)
	defer cancel()

	delivery := webhook.Delivery{
		NotificationID: task.NotificationID,
		RecipientID:    task.RecipientID,
		Event:          "notification." + task.Type,
		Message:        task.Message,
		Payload:        task.Payload,
	}

	if err := w.webhook.Deliver(taskCtx, delivery); err != nil {
		w.log.Error().Err(err).Str("notification_id", task.NotificationID).Msg("notification dispatch failed")
		metrics.RecordNotificationDelivery(task.Type, "failed")
		if markErr := w.queue.MarkFailed(ctx, task.NotificationID, err); markErr != nil {
			w.log.Error().Err(markErr).Str("notification_id", task.NotificationID).Msg("failed to mark notification as failed")
		}
		return
	}

	if err := w.queue.MarkDelivered(ctx, task.NotificationID); err != nil {
		w.log.Error().Err(err).Str("notification_id", task.NotificationID).Msg("failed to mark delivered")
		return
	}

	metrics.RecordNotificationDelivery(task.Type, "delivered")
	w.log.Info().Str("notification_id", task.NotificationID).Msg("notification delivered")
}
