package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

const (
	TemplateApplicationReceived = "application_received"
	TemplateInterviewScheduled  = "interview_scheduled"
)

var defaultTemplates = map[string]string{
	TemplateApplicationReceived: `<p>Hello {{.CompanyName}},</p>
<p>{{.CandidateName}} applied to <strong>{{.JobTitle}}</strong>.</p>
<p>Application id: {{.ApplicationID}}</p>`,
	TemplateInterviewScheduled: `<p>Hello {{.CandidateName}},</p>
<p>{{.CompanyName}} scheduled a {{.InterviewType}} interview for <strong>{{.JobTitle}}</strong>
on {{.ScheduledAt}} ({{.Duration}} minutes).</p>
{{if .Location}}<p>Location: {{.Location}}</p>{{end}}`,
}

// TemplateManager renders named html/template templates.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

func NewTemplateManager() *TemplateManager {
	return &TemplateManager{
		templates: make(map[string]*template.Template),
	}
}

// NewDefaultTemplates returns a manager holding the notification templates.
func NewDefaultTemplates() (*TemplateManager, error) {
	tm := NewTemplateManager()
	for name, body := range defaultTemplates {
		if err := tm.AddTemplate(name, body); err != nil {
			return nil, err
		}
	}
	return tm, nil
}

func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()
	return nil
}
