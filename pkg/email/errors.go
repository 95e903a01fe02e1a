package email

import "errors"

var (
	// ErrTemplateNotFound is returned when a renderer does not recognize the
	// template key. This error is not retryable.
	ErrTemplateNotFound = errors.New("email: template not found")

	// ErrRenderFailed is returned when template execution fails.
	ErrRenderFailed = errors.New("email: failed to render template")

	// ErrFailedToSend is returned when a transport cannot deliver a message.
	ErrFailedToSend = errors.New("email: failed to send")

	// ErrInvalidMessage is returned when a message fails validation.
	ErrInvalidMessage = errors.New("email: invalid message")

	// ErrInvalidConfig is returned when transport configuration is incomplete.
	ErrInvalidConfig = errors.New("email: invalid config")
)
