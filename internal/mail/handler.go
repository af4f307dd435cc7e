package mail

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// ContactHandler processes TypeContact tasks in the worker.
type ContactHandler struct {
	sender Sender
}

// NewContactHandler creates a new contact task handler.
func NewContactHandler(sender Sender) *ContactHandler {
	return &ContactHandler{sender: sender}
}

// ProcessTask implements asynq.Handler.
func (h *ContactHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var msg ContactMessage
	if err := json.Unmarshal(task.Payload(), &msg); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal contact payload")
		// a malformed payload never succeeds on retry
		return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	log.Info().Str("email", msg.Email).Uint("event_id", msg.EventID).Msg("processing contact mail")

	if err := h.sender.Send(ctx, msg); err != nil {
		return err
	}

	log.Info().Str("email", msg.Email).Msg("contact mail sent")
	return nil
}

// Register adds every mail handler to mux.
func Register(mux *asynq.ServeMux, sender Sender) {
	mux.Handle(TypeContact, NewContactHandler(sender))
}
