package email

import (
	"context"
	"sync"
)

type Provider interface {
	Send(ctx context.Context, email *Email) error
	SendTemplate(ctx context.Context, to []string, subject, templateName string, data TemplateData) error
}

// NoopProvider records messages instead of delivering them.
type NoopProvider struct {
	mu   sync.Mutex
	sent []Email
}

func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

func (p *NoopProvider) Send(_ context.Context, email *Email) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, *email)
	return nil
}

func (p *NoopProvider) SendTemplate(ctx context.Context, to []string, subject, templateName string, data TemplateData) error {
	return p.Send(ctx, &Email{To: to, Subject: subject, Body: templateName})
}

// Sent returns a copy of every recorded message.
func (p *NoopProvider) Sent() []Email {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Email, len(p.sent))
	copy(out, p.sent)
	return out
}
