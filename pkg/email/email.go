package email

import (
	"context"
	"fmt"
	"regexp"
)

// Renderer produces a ready-to-send message from a template identifier and a
// flat field set. An unrecognized template key fails with ErrTemplateNotFound,
// which callers treat as fatal: rendering failures are never retried.
type Renderer interface {
	Render(ctx context.Context, templateKey string, data map[string]string) (Message, error)
}

// Transport delivers a rendered message. A non-nil error covers both
// transport-level faults and provider-reported delivery failures; callers
// decide retry behavior through the shared retry policy.
type Transport interface {
	Send(ctx context.Context, msg Message) (Result, error)
}

// Template identifiers for the appointment notification messages.
const (
	TemplateConfirmation = "appointment-confirmation"
	TemplateReminder     = "appointment-reminder"
	TemplateCancellation = "appointment-cancellation"
	TemplateReschedule   = "appointment-reschedule"
)

// Message is a rendered transactional email.
type Message struct {
	To       string            `json:"to"`
	Subject  string            `json:"subject"`
	HTML     string            `json:"html"`
	Text     string            `json:"text"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Result is the transport's acknowledgement of a successful send.
type Result struct {
	MessageID string `json:"message_id"`
}

// emailRegex provides basic format validation without attempting full
// RFC 5322 compliance.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Validate checks that the message is deliverable: a valid recipient,
// a subject, and at least one body.
func (m Message) Validate() error {
	if m.To == "" {
		return fmt.Errorf("%w: recipient is required", ErrInvalidMessage)
	}
	if !emailRegex.MatchString(m.To) {
		return fmt.Errorf("%w: recipient must be a valid email address", ErrInvalidMessage)
	}
	if m.Subject == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidMessage)
	}
	if m.HTML == "" && m.Text == "" {
		return fmt.Errorf("%w: message body is required", ErrInvalidMessage)
	}
	return nil
}
