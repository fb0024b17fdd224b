// Package mailer renders and sends transactional email over SMTP.
package mailer

import (
	"context"
	"fmt"
	"log/slog"

	mail "github.com/wneessen/go-mail"

	"github.com/projectify/backend/internal/config"
)

type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers a single message. Implementations make one attempt;
// the dispatcher never retries.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPSender sends via an authenticated SMTP relay.
type SMTPSender struct {
	client *mail.Client
	from   string
}

func NewSMTPSender(cfg *config.Config) (*SMTPSender, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.SMTPPort),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if cfg.SMTPUser != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTPUser),
			mail.WithPassword(cfg.SMTPPassword),
		)
	}

	client, err := mail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &SMTPSender{client: client, from: cfg.EmailFrom}, nil
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m := mail.NewMsg()
	if err := m.From(s.from); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)

	return s.client.DialAndSendWithContext(ctx, m)
}

// LogSender is the fallback when no SMTP relay is configured: it logs the
// message and reports success so local environments behave like production
// minus delivery.
type LogSender struct{}

func (LogSender) Send(_ context.Context, msg Message) error {
	slog.Info("email delivery skipped (no SMTP configured)", "to", msg.To, "subject", msg.Subject)
	return nil
}
