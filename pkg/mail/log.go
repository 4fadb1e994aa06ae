package mail

import (
	"bytes"
	"context"

	"github.com/hakaru-org/mailblast/pkg/charset"
	"github.com/hakaru-org/mailblast/pkg/config"
	"github.com/hakaru-org/mailblast/pkg/telemetry"
)

// LogMailer implements Mailer by logging composed messages instead of
// transmitting them. Composition and charset negotiation still run, so a
// log run surfaces the same composition errors a real run would.
type LogMailer struct {
	cfg    config.MailConfig
	policy charset.Policy
}

// NewLogMailer creates a new LogMailer
func NewLogMailer(cfg config.MailConfig, policy charset.Policy) *LogMailer {
	return &LogMailer{cfg: cfg, policy: policy}
}

// Dial is a no-op; there is no session to open.
func (m *LogMailer) Dial(ctx context.Context) error {
	return nil
}

// Send logs the message details and the composed MIME output.
func (m *LogMailer) Send(ctx context.Context, msg *Message) error {
	if msg.From == "" {
		msg.From = m.cfg.FromAddress
	}

	composed, err := Compose(msg, m.policy)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if _, err := composed.WriteTo(&buf); err != nil {
		return err
	}

	logger := telemetry.LoggerFromContext(ctx).With().
		Str("mailer", "log").
		Str("from", msg.From).
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Int("parts", len(msg.Parts)).
		Logger()

	logger.Info().Msg("Sending email")
	logger.Info().Msgf("Message:\n%s", buf.String())

	return nil
}

// Close is a no-op.
func (m *LogMailer) Close() error {
	return nil
}
