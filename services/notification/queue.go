package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mentesana/config"
	"mentesana/models"

	"github.com/hibiken/asynq"
)

// QueueNotifier enqueues mail onto the asynq queue instead of sending inline,
// so a slow mail provider never delays the HTTP response. The worker in
// cron/worker.go drains the queue.
type QueueNotifier struct {
	client *asynq.Client
}

// NewQueueNotifier builds a notifier backed by the configured Redis instance.
func NewQueueNotifier() *QueueNotifier {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	})
	return &QueueNotifier{client: client}
}

// Send enqueues the message for background delivery.
func (q *QueueNotifier) Send(ctx context.Context, msg models.EmailMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal mail payload: %w", err)
	}

	task := asynq.NewTask(TypeMailSend, payload)
	if _, err := q.client.EnqueueContext(ctx, task, asynq.MaxRetry(3), asynq.Timeout(30*time.Second)); err != nil {
		return fmt.Errorf("enqueue mail task: %w", err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (q *QueueNotifier) Close() error {
	return q.client.Close()
}
