package config

// MailConfig holds SMTP transport settings and envelope defaults. It is
// read once at startup and stays immutable for the lifetime of a run.
type MailConfig struct {
	Mailer      string `env:"MAIL_MAILER" envDefault:"smtp"`
	Host        string `env:"SMTP_HOST"`
	Port        int    `env:"SMTP_PORT" envDefault:"25"`
	Username    string `env:"SMTP_USER"`
	Password    string `env:"SMTP_PASSWD"`
	Security    string `env:"SMTP_SECURITY"`
	FromAddress string `env:"SMTP_MAIL_FROM" envDefault:"noreply@hakaru.org"`
}

// AuthEnabled returns true if both SMTP username and password are set.
func (c MailConfig) AuthEnabled() bool {
	return c.Username != "" && c.Password != ""
}

// Config is the complete application configuration.
type Config struct {
	Mail        MailConfig
	TemplateDir string `env:"TEMPLATE_DIR" envDefault:"templates"`
}
