// Package sender turns gear-reminder queue events into emails for every
// club member.
package sender

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ntx-bassclub/clubhub/internal/lib/sl"
	"github.com/ntx-bassclub/clubhub/internal/lib/smtp"
	"github.com/ntx-bassclub/clubhub/internal/rabbitmq"
)

// Repository resolves the recipient list.
type Repository interface {
	ListMemberEmails(ctx context.Context) ([]string, error)
}

// Service consumes gear-reminder events and mails the roster.
type Service struct {
	repo      Repository
	transport smtp.TransportInterface
	log       *slog.Logger
}

// New creates a sender Service.
func New(repo Repository, transport smtp.TransportInterface, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		transport: transport,
		log:       log,
	}
}

// HandleGearReminder is the queue handler for gear-reminder events. It
// mails every club member; a returned error requeues the event.
func (s *Service) HandleGearReminder(body []byte) error {
	var event rabbitmq.GearReminderEvent
	if err := json.Unmarshal(body, &event); err != nil {
		s.log.Error("failed to unmarshal gear reminder", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	to, err := s.repo.ListMemberEmails(ctx)
	if err != nil {
		s.log.Error("failed to load member emails", sl.Err(err))
		return err
	}
	if len(to) == 0 {
		s.log.Info("no recipients for gear reminder", slog.String("post_id", event.PostID))
		return nil
	}

	subject := "Gear reminder from " + event.AuthorName
	return s.sendEmail(to, subject, formatBody(event))
}

func formatBody(event rabbitmq.GearReminderEvent) string {
	var b strings.Builder
	b.WriteString(event.Content)
	if len(event.Items) > 0 {
		b.WriteString("\n\nBring:\n")
		for _, item := range event.Items {
			b.WriteString("  - " + item + "\n")
		}
	}
	if event.Priority != "" {
		b.WriteString("\nPriority: " + event.Priority + "\n")
	}
	return b.String()
}

func (s *Service) sendEmail(to []string, subject, bodyText string) error {
	msg := strings.Join([]string{
		"From: " + s.transport.From(),
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer client.Close() //nolint:errcheck // Quit already tears the session down

	if err := client.Mail(s.transport.From()); err != nil {
		s.log.Error("failed to set MAIL FROM", sl.Err(err))
		return err
	}
	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("failed to set RCPT TO", slog.String("recipient", addr), sl.Err(err))
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get data writer", sl.Err(err))
		return err
	}
	if _, err = wc.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write email body", sl.Err(err))
		return err
	}
	if err = wc.Close(); err != nil {
		s.log.Error("failed to close data writer", sl.Err(err))
		return err
	}
	if err = client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return err
	}

	s.log.Info("gear reminder sent", slog.Int("recipients", len(to)))
	return nil
}
