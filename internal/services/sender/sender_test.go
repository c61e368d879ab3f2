package sender

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ntx-bassclub/clubhub/internal/lib/smtp"
	"github.com/ntx-bassclub/clubhub/internal/rabbitmq"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListMemberEmails(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Connect() (smtp.Client, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(smtp.Client), args.Error(1)
}

func (m *MockTransport) From() string {
	args := m.Called()
	return args.String(0)
}

type MockSMTPClient struct {
	mock.Mock
}

func (m *MockSMTPClient) Mail(from string) error {
	args := m.Called(from)
	return args.Error(0)
}

func (m *MockSMTPClient) Rcpt(to string) error {
	args := m.Called(to)
	return args.Error(0)
}

func (m *MockSMTPClient) Data() (io.WriteCloser, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.WriteCloser), args.Error(1)
}

func (m *MockSMTPClient) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockSMTPClient) Quit() error {
	args := m.Called()
	return args.Error(0)
}

type MockSMTPWriter struct {
	mock.Mock
	written []byte
}

func (m *MockSMTPWriter) Write(p []byte) (int, error) {
	m.written = append(m.written, p...)
	args := m.Called(p)
	return len(p), args.Error(0)
}

func (m *MockSMTPWriter) Close() error {
	args := m.Called()
	return args.Error(0)
}

func TestHandleGearReminder(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	event := rabbitmq.GearReminderEvent{
		PostID:     "post-1",
		AuthorName: "Coach A",
		Content:    "Tournament Saturday, pack for wind.",
		Items:      []string{"rain jacket", "extra line"},
		Priority:   "high",
	}
	body, err := json.Marshal(event)
	assert.NoError(t, err)

	t.Run("mails every member", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("ListMemberEmails", mock.Anything).
			Return([]string{"a@ntxbass.org", "b@ntxbass.org"}, nil)

		writer := new(MockSMTPWriter)
		writer.On("Write", mock.Anything).Return(nil)
		writer.On("Close").Return(nil)

		client := new(MockSMTPClient)
		client.On("Mail", "team@ntxbass.org").Return(nil)
		client.On("Rcpt", "a@ntxbass.org").Return(nil)
		client.On("Rcpt", "b@ntxbass.org").Return(nil)
		client.On("Data").Return(writer, nil)
		client.On("Quit").Return(nil)
		client.On("Close").Return(nil)

		transport := new(MockTransport)
		transport.On("From").Return("team@ntxbass.org")
		transport.On("Connect").Return(client, nil)

		service := New(repo, transport, logger)
		err := service.HandleGearReminder(body)

		assert.NoError(t, err)
		assert.Contains(t, string(writer.written), "Gear reminder from Coach A")
		assert.Contains(t, string(writer.written), "rain jacket")
		repo.AssertExpectations(t)
		client.AssertExpectations(t)
	})

	t.Run("no recipients is a no-op", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("ListMemberEmails", mock.Anything).Return([]string{}, nil)

		transport := new(MockTransport)

		service := New(repo, transport, logger)
		err := service.HandleGearReminder(body)

		assert.NoError(t, err)
		transport.AssertNotCalled(t, "Connect")
	})

	t.Run("smtp failure is returned for requeue", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("ListMemberEmails", mock.Anything).
			Return([]string{"a@ntxbass.org"}, nil)

		transport := new(MockTransport)
		transport.On("From").Return("team@ntxbass.org")
		transport.On("Connect").Return(nil, errors.New("dial tcp: connection refused"))

		service := New(repo, transport, logger)
		err := service.HandleGearReminder(body)

		assert.Error(t, err)
	})

	t.Run("bad payload", func(t *testing.T) {
		repo := new(MockRepository)
		transport := new(MockTransport)

		service := New(repo, transport, logger)
		err := service.HandleGearReminder([]byte("{not json"))

		assert.Error(t, err)
	})
}
