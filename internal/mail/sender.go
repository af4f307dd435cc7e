package mail

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"mime/quotedprintable"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog/log"
)

// Sender delivers a contact message.
type Sender interface {
	Send(ctx context.Context, msg ContactMessage) error
}

// SendFunc matches smtp.SendMail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSender sends contact mails to the studio inbox over plain SMTP.
type SMTPSender struct {
	addr      string
	from      string
	recipient string
	send      SendFunc
}

var _ Sender = (*SMTPSender)(nil)

// NewSMTPSender creates a sender for host:port.
func NewSMTPSender(host, port, from, recipient string) *SMTPSender {
	return &SMTPSender{
		addr:      host + ":" + port,
		from:      from,
		recipient: recipient,
		send:      smtp.SendMail,
	}
}

// Send delivers msg with Reply-To set to the visitor.
func (s *SMTPSender) Send(ctx context.Context, msg ContactMessage) error {
	raw, err := s.compose(msg)
	if err != nil {
		return fmt.Errorf("compose contact mail: %w", err)
	}

	if err := s.send(s.addr, nil, s.from, []string{s.recipient}, raw); err != nil {
		log.Error().Err(err).Str("smtp_addr", s.addr).Str("reply_to", msg.Email).Msg("failed to send contact mail")
		return fmt.Errorf("send contact mail: %w", err)
	}
	return nil
}

// compose renders a UTF-8 text/plain message. Header values are folded onto one line and
// the subject is Q-encoded, the body is quoted-printable.
func (s *SMTPSender) compose(msg ContactMessage) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", headerValue(s.from))
	fmt.Fprintf(&buf, "To: %s\r\n", headerValue(s.recipient))
	fmt.Fprintf(&buf, "Reply-To: %s\r\n", headerValue(msg.Email))
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", headerValue(msg.Subject())))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	buf.WriteString("Content-Transfer-Encoding: quoted-printable\r\n")
	buf.WriteString("\r\n")

	w := quotedprintable.NewWriter(&buf)
	if _, err := w.Write([]byte(msg.Body())); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// headerValue replaces line breaks so a value cannot start a new header.
func headerValue(v string) string {
	return strings.Map(func(r rune) rune {
		if r == '\r' || r == '\n' {
			return ' '
		}
		return r
	}, v)
}
