package email

import (
	"context"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
)

//go:embed templates/*.html templates/*.txt
var templateFS embed.FS

// subjectLines maps template keys to their subject line templates. The map
// also serves as the registry of known template keys: a key absent here is
// reported as ErrTemplateNotFound before any body rendering happens.
var subjectLines = map[string]string{
	TemplateConfirmation: "Your {{.serviceType}} appointment is confirmed",
	TemplateReminder:     "Reminder: {{.serviceType}} appointment on {{.appointmentDate}}",
	TemplateCancellation: "Your {{.serviceType}} appointment has been cancelled",
	TemplateReschedule:   "Your {{.serviceType}} appointment has been rescheduled",
}

// TemplateRegistry is the default Renderer implementation, backed by
// templates embedded in the binary. It is immutable after construction and
// safe for concurrent use.
type TemplateRegistry struct {
	html     *htmltemplate.Template
	text     *texttemplate.Template
	subjects map[string]*texttemplate.Template
}

// NewTemplateRegistry parses the embedded appointment templates.
func NewTemplateRegistry() (*TemplateRegistry, error) {
	html, err := htmltemplate.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("%w: parse html templates: %v", ErrRenderFailed, err)
	}

	text, err := texttemplate.ParseFS(templateFS, "templates/*.txt")
	if err != nil {
		return nil, fmt.Errorf("%w: parse text templates: %v", ErrRenderFailed, err)
	}

	subjects := make(map[string]*texttemplate.Template, len(subjectLines))
	for key, line := range subjectLines {
		tpl, err := texttemplate.New(key).Parse(line)
		if err != nil {
			return nil, fmt.Errorf("%w: parse subject for %s: %v", ErrRenderFailed, key, err)
		}
		subjects[key] = tpl
	}

	return &TemplateRegistry{html: html, text: text, subjects: subjects}, nil
}

// MustNewTemplateRegistry panics on parse errors. The templates are embedded
// and parse failures are programming errors, so failing fast at startup is
// the right behavior.
func MustNewTemplateRegistry() *TemplateRegistry {
	r, err := NewTemplateRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

// Render implements Renderer. The returned message carries subject, HTML and
// plain-text bodies; the recipient is filled in by the caller.
func (r *TemplateRegistry) Render(ctx context.Context, templateKey string, data map[string]string) (Message, error) {
	subjectTpl, ok := r.subjects[templateKey]
	if !ok {
		return Message{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, templateKey)
	}

	var subject strings.Builder
	if err := subjectTpl.Execute(&subject, data); err != nil {
		return Message{}, fmt.Errorf("%w: subject for %s: %v", ErrRenderFailed, templateKey, err)
	}

	var html strings.Builder
	if err := r.html.ExecuteTemplate(&html, templateKey+".html", data); err != nil {
		return Message{}, fmt.Errorf("%w: html body for %s: %v", ErrRenderFailed, templateKey, err)
	}

	var text strings.Builder
	if err := r.text.ExecuteTemplate(&text, templateKey+".txt", data); err != nil {
		return Message{}, fmt.Errorf("%w: text body for %s: %v", ErrRenderFailed, templateKey, err)
	}

	return Message{
		Subject: subject.String(),
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}
