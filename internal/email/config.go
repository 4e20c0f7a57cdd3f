package email

import "jobtracker_backend/internal/config"

const (
	ProviderSMTP = "smtp"
	ProviderNoop = "noop"
)

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

func SMTPConfigFrom(cfg *config.Config) *SMTPConfig {
	return &SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	}
}

// NewProvider selects the provider named in config. Unknown names fall back to noop.
func NewProvider(cfg *config.Config) (Provider, error) {
	if cfg.Email.Provider != ProviderSMTP {
		return NewNoopProvider(), nil
	}

	renderer, err := NewDefaultTemplates()
	if err != nil {
		return nil, err
	}

	p := NewSMTPProvider(SMTPConfigFrom(cfg), renderer)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
