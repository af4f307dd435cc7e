package mail

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hibiken/asynq"
)

// TypeContact is the asynq task type for contact form mails.
const TypeContact = "mail:contact"

// QueueMail is the queue contact mails are sent through.
const QueueMail = "mail"

// ContactMessage is the payload of a contact form submission.
// EventID is set when the form was sent from an event page.
type ContactMessage struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	Message   string `json:"message"`
	EventID   uint   `json:"event_id,omitempty"`
	EventName string `json:"event_name,omitempty"`
}

// Subject builds the mail subject line.
func (m ContactMessage) Subject() string {
	if m.EventName != "" {
		return fmt.Sprintf("Registration for %s: %s", m.EventName, m.Name)
	}
	return "Contact form: " + m.Name
}

// Body builds the plain text mail body.
func (m ContactMessage) Body() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\r\n", m.Name)
	fmt.Fprintf(&b, "Email: %s\r\n", m.Email)
	fmt.Fprintf(&b, "Telephone: %s\r\n", m.Telephone)
	if m.EventName != "" {
		fmt.Fprintf(&b, "Event: %s (#%d)\r\n", m.EventName, m.EventID)
	}
	b.WriteString("\r\n")
	b.WriteString(m.Message)
	return b.String()
}

// NewContactTask wraps the message into an asynq task.
func NewContactTask(msg ContactMessage) (*asynq.Task, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal contact message: %w", err)
	}
	return asynq.NewTask(TypeContact, payload), nil
}
