package email

import (
	"context"
	"testing"

	"jobtracker_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTemplatesRender(t *testing.T) {
	tm, err := NewDefaultTemplates()
	require.NoError(t, err)

	out, err := tm.Render(TemplateApplicationReceived, TemplateData{
		"CompanyName":   "Acme",
		"CandidateName": "Jane <Doe>",
		"JobTitle":      "Backend Engineer",
		"ApplicationID": "app-1",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Backend Engineer")
	assert.Contains(t, out, "Jane &lt;Doe&gt;")

	_, err = tm.Render("missing", nil)
	assert.Error(t, err)
}

func TestNewProviderSelection(t *testing.T) {
	cfg := config.Defaults()

	p, err := NewProvider(cfg)
	require.NoError(t, err)
	assert.IsType(t, &NoopProvider{}, p)

	cfg.Email.Provider = ProviderSMTP
	cfg.Email.SMTPHost = ""
	_, err = NewProvider(cfg)
	assert.Error(t, err)

	cfg.Email.SMTPHost = "smtp.example.com"
	cfg.Email.FromEmail = "no-reply@example.com"
	p, err = NewProvider(cfg)
	require.NoError(t, err)
	assert.IsType(t, &SMTPProvider{}, p)
}

func TestNoopProviderRecords(t *testing.T) {
	p := NewNoopProvider()
	require.NoError(t, p.SendTemplate(context.Background(), []string{"a@example.com"}, "Hi", TemplateInterviewScheduled, nil))

	sent := p.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "Hi", sent[0].Subject)
}
