package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"atelier/internal/mail"
	"atelier/internal/model"
)

// ContactForm is a validated contact form.
type ContactForm struct {
	Name      string
	Surname   string
	Email     string
	Telephone string
	Message   string
}

// FullName joins name and surname with a space.
func (f ContactForm) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(f.Name) + " " + strings.TrimSpace(f.Surname))
}

// ContactService hands contact forms to the mailer.
type ContactService interface {
	Submit(ctx context.Context, form ContactForm)
	SubmitForEvent(ctx context.Context, event *model.Event, form ContactForm)
}

type contactService struct {
	dispatcher mail.Dispatcher
}

// NewContactService creates a new contact service.
func NewContactService(dispatcher mail.Dispatcher) ContactService {
	return &contactService{dispatcher: dispatcher}
}

// Submit dispatches a contact mail. Delivery problems are logged and never reach the caller.
func (s *contactService) Submit(ctx context.Context, form ContactForm) {
	s.dispatch(ctx, toMessage(form))
}

// SubmitForEvent dispatches a contact mail tied to an event registration.
func (s *contactService) SubmitForEvent(ctx context.Context, event *model.Event, form ContactForm) {
	msg := toMessage(form)
	if event != nil {
		msg.EventID = event.ID
		msg.EventName = event.Name
	}
	s.dispatch(ctx, msg)
}

func (s *contactService) dispatch(ctx context.Context, msg mail.ContactMessage) {
	if err := s.dispatcher.DispatchContact(ctx, msg); err != nil {
		log.Error().Err(err).Str("email", msg.Email).Uint("event_id", msg.EventID).Msg("contact mail not dispatched")
	}
}

func toMessage(form ContactForm) mail.ContactMessage {
	return mail.ContactMessage{
		Name:      form.FullName(),
		Email:     strings.TrimSpace(form.Email),
		Telephone: strings.TrimSpace(form.Telephone),
		Message:   form.Message,
	}
}
