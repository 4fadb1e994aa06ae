package mail

import (
	"context"
	"errors"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/hakaru-org/mailblast/pkg/charset"
	"github.com/hakaru-org/mailblast/pkg/config"
)

// SMTPMailer implements Mailer over a single SMTP session. Dial opens the
// session (upgrading to TLS and authenticating per configuration), every
// Send reuses it, Close quits it. Any SMTP-level fault is returned to the
// caller; this mailer never retries.
type SMTPMailer struct {
	cfg    config.MailConfig
	policy charset.Policy
	client *gomail.Client
}

// NewSMTPMailer creates a new SMTPMailer from the run configuration.
func NewSMTPMailer(cfg config.MailConfig, policy charset.Policy) (*SMTPMailer, error) {
	if cfg.Host == "" {
		return nil, errors.New("smtp host is not configured")
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
	}
	if cfg.Security == "tls" {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.NoTLS))
	}
	if cfg.AuthEnabled() {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &SMTPMailer{cfg: cfg, policy: policy, client: client}, nil
}

// Dial opens the SMTP session.
func (m *SMTPMailer) Dial(ctx context.Context) error {
	if err := m.client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("connect to %s:%d: %w", m.cfg.Host, m.cfg.Port, err)
	}
	return nil
}

// Send composes msg and transmits it over the open session.
func (m *SMTPMailer) Send(ctx context.Context, msg *Message) error {
	if msg.From == "" {
		msg.From = m.cfg.FromAddress
	}

	composed, err := Compose(msg, m.policy)
	if err != nil {
		return err
	}

	if err := m.client.Send(composed); err != nil {
		return fmt.Errorf("send to %s: %w", msg.To, err)
	}
	return nil
}

// Close quits the SMTP session.
func (m *SMTPMailer) Close() error {
	return m.client.Close()
}
