package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// Dispatcher hands contact messages to the mailer.
type Dispatcher interface {
	DispatchContact(ctx context.Context, msg ContactMessage) error
}

// Enqueuer is the part of asynq.Client the queue needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Queue dispatches messages as asynq tasks for the worker.
type Queue struct {
	client Enqueuer
}

var _ Dispatcher = (*Queue)(nil)

// NewQueue creates a new mail queue.
func NewQueue(client Enqueuer) *Queue {
	return &Queue{client: client}
}

// DispatchContact enqueues a contact mail.
func (q *Queue) DispatchContact(ctx context.Context, msg ContactMessage) error {
	task, err := NewContactTask(msg)
	if err != nil {
		return err
	}

	info, err := q.client.EnqueueContext(
		ctx,
		task,
		asynq.Queue(QueueMail),
		asynq.MaxRetry(5),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		return fmt.Errorf("enqueue contact mail: %w", err)
	}

	log.Debug().Str("task_id", info.ID).Str("email", msg.Email).Msg("contact mail enqueued")
	return nil
}
