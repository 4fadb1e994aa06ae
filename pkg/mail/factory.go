package mail

import (
	"fmt"

	"github.com/hakaru-org/mailblast/pkg/charset"
	"github.com/hakaru-org/mailblast/pkg/config"
)

// NewMailer creates a new Mailer based on the configuration
func NewMailer(cfg config.MailConfig, policy charset.Policy) (Mailer, error) {
	switch cfg.Mailer {
	case "smtp":
		return NewSMTPMailer(cfg, policy)
	case "log":
		return NewLogMailer(cfg, policy), nil
	default:
		return nil, fmt.Errorf("unsupported mailer: %s", cfg.Mailer)
	}
}
