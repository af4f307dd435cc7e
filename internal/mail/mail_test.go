package mail

import (
	"context"
	"encoding/json"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEnqueuer struct {
	mock.Mock
}

func (m *MockEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*asynq.TaskInfo), args.Error(1)
}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func TestQueue_DispatchContact(t *testing.T) {
	client := new(MockEnqueuer)
	msg := ContactMessage{Name: "Jan Novak", Email: "jan@example.com", Telephone: "123456789", Message: "Hi"}

	client.On("EnqueueContext", mock.Anything, mock.MatchedBy(func(task *asynq.Task) bool {
		var got ContactMessage
		return task.Type() == TypeContact && json.Unmarshal(task.Payload(), &got) == nil && got == msg
	})).Return(&asynq.TaskInfo{ID: "t1"}, nil)

	err := NewQueue(client).DispatchContact(context.Background(), msg)

	assert.NoError(t, err)
	client.AssertExpectations(t)
}

func TestQueue_DispatchContactError(t *testing.T) {
	client := new(MockEnqueuer)
	client.On("EnqueueContext", mock.Anything, mock.Anything).Return(nil, errors.New("redis down"))

	err := NewQueue(client).DispatchContact(context.Background(), ContactMessage{Email: "a@b.c"})

	assert.ErrorContains(t, err, "redis down")
}

func TestSMTPSender_Send(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	sender := NewSMTPSender("mail.local", "25", "noreply@atelier.local", "studio@atelier.local")
	sender.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	err := sender.Send(context.Background(), ContactMessage{
		Name:      "Jan Novak",
		Email:     "jan@example.com",
		Telephone: "123456789",
		Message:   "Hello",
		EventID:   3,
		EventName: "Spring shoot",
	})
	require.NoError(t, err)

	assert.Equal(t, "mail.local:25", gotAddr)
	assert.Equal(t, "noreply@atelier.local", gotFrom)
	assert.Equal(t, []string{"studio@atelier.local"}, gotTo)
	body := string(gotMsg)
	assert.Contains(t, body, "Reply-To: jan@example.com\r\n")
	assert.Contains(t, body, "Subject: Registration for Spring shoot: Jan Novak\r\n")
	assert.Contains(t, body, "MIME-Version: 1.0\r\n")
	assert.Contains(t, body, "Content-Type: text/plain; charset=UTF-8\r\n")
	assert.True(t, strings.HasSuffix(body, "\r\n\r\nHello"))
}

func TestSMTPSender_SendKeepsHeadersOnOneLine(t *testing.T) {
	var gotMsg []byte
	sender := NewSMTPSender("mail.local", "25", "noreply@atelier.local", "studio@atelier.local")
	sender.send = func(_ string, _ smtp.Auth, _ string, _ []string, msg []byte) error {
		gotMsg = msg
		return nil
	}

	err := sender.Send(context.Background(), ContactMessage{
		Name:    "Jan\r\nBcc: victim@evil.example\r\nX-Injected: yes",
		Email:   "jan@example.com\r\nCc: other@evil.example",
		Message: "Hi",
	})
	require.NoError(t, err)

	header, _, found := strings.Cut(string(gotMsg), "\r\n\r\n")
	require.True(t, found)
	lines := strings.Split(header, "\r\n")
	assert.Len(t, lines, 7)
	for _, line := range lines {
		assert.False(t, strings.HasPrefix(line, "Bcc:"), line)
		assert.False(t, strings.HasPrefix(line, "Cc:"), line)
		assert.False(t, strings.HasPrefix(line, "X-Injected:"), line)
	}
}

func TestSMTPSender_SendEncodesNonASCII(t *testing.T) {
	var gotMsg []byte
	sender := NewSMTPSender("mail.local", "25", "noreply@atelier.local", "studio@atelier.local")
	sender.send = func(_ string, _ smtp.Auth, _ string, _ []string, msg []byte) error {
		gotMsg = msg
		return nil
	}

	err := sender.Send(context.Background(), ContactMessage{Name: "Jiří Černý", Email: "jiri@example.com", Message: "Dobrý den"})
	require.NoError(t, err)

	body := string(gotMsg)
	assert.Contains(t, body, "Subject: =?utf-8?q?")
	assert.NotContains(t, body, "Jiří")
	assert.Contains(t, body, "Dobr=C3=BD den")
}

func TestSMTPSender_SendError(t *testing.T) {
	sender := NewSMTPSender("mail.local", "25", "from@x", "to@x")
	sender.send = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}

	err := sender.Send(context.Background(), ContactMessage{Name: "A"})

	assert.ErrorContains(t, err, "connection refused")
}

func TestContactHandler_ProcessTask(t *testing.T) {
	msg := ContactMessage{Name: "Jan", Email: "jan@example.com", Message: "Hi"}
	task, err := NewContactTask(msg)
	require.NoError(t, err)

	sender := new(MockSender)
	sender.On("Send", mock.Anything, msg).Return(nil)

	assert.NoError(t, NewContactHandler(sender).ProcessTask(context.Background(), task))
	sender.AssertExpectations(t)
}

func TestContactHandler_MalformedPayload(t *testing.T) {
	sender := new(MockSender)

	err := NewContactHandler(sender).ProcessTask(context.Background(), asynq.NewTask(TypeContact, []byte("{")))

	assert.ErrorIs(t, err, asynq.SkipRetry)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestContactMessage_Subject(t *testing.T) {
	assert.Equal(t, "Contact form: Jan", ContactMessage{Name: "Jan"}.Subject())
}
