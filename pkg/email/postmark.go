package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

type postmarkTransport struct {
	client *postmark.Client
	config Config
}

// NewPostmarkTransport creates a Postmark-backed transport.
// Both tokens are required for runtime operation - this enforces
// explicit configuration rather than silent failures in production.
func NewPostmarkTransport(cfg Config) (Transport, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
	}
	if cfg.PostmarkAccountToken == "" {
		return nil, fmt.Errorf("%w: PostmarkAccountToken is required", ErrInvalidConfig)
	}
	if cfg.SenderEmail == "" {
		return nil, fmt.Errorf("%w: SenderEmail is required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}
	if cfg.SupportEmail == "" {
		return nil, fmt.Errorf("%w: SupportEmail is required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(cfg.SupportEmail) {
		return nil, fmt.Errorf("%w: SupportEmail must be a valid email address", ErrInvalidConfig)
	}

	return &postmarkTransport{
		client: postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		config: cfg,
	}, nil
}

// MustNewPostmarkTransport creates a Postmark transport that panics on
// invalid config, failing fast during initialization rather than allowing a
// broken service to start.
func MustNewPostmarkTransport(cfg Config) Transport {
	t, err := NewPostmarkTransport(cfg)
	if err != nil {
		panic(err)
	}
	return t
}

// Send implements Transport using Postmark's transactional API.
// Reply-To is set to the support email so customer responses reach the right
// team. Metadata is forwarded to Postmark for delivery analytics.
func (t *postmarkTransport) Send(ctx context.Context, msg Message) (Result, error) {
	if err := msg.Validate(); err != nil {
		return Result{}, err
	}

	resp, err := t.client.SendEmail(ctx, postmark.Email{
		From:     t.config.SenderEmail,
		ReplyTo:  t.config.SupportEmail,
		To:       msg.To,
		Subject:  msg.Subject,
		HTMLBody: msg.HTML,
		TextBody: msg.Text,
		Metadata: msg.Metadata,
	})
	if err != nil {
		return Result{}, errors.Join(ErrFailedToSend, err)
	}
	if resp.ErrorCode > 0 {
		return Result{}, errors.Join(
			ErrFailedToSend,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}

	return Result{MessageID: resp.MessageID}, nil
}
