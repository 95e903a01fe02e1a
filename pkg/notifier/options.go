package notifier

import (
	"log/slog"
	"time"

	"github.com/fixwellinc/household-services-platform-sub010/pkg/retry"
)

// Option is a functional option for configuring a Service.
type Option func(*serviceOptions)

type serviceOptions struct {
	policy            retry.Policy
	clock             func() time.Time
	logger            *slog.Logger
	reminderLead      time.Duration
	idlePause         time.Duration
	defaultBookingURL string
}

// WithRetryPolicy sets the retry policy shared by the synchronous send path
// and the queue dispatcher.
func WithRetryPolicy(p retry.Policy) Option {
	return func(o *serviceOptions) {
		o.policy = p
	}
}

// WithClock sets the time source used for scheduling and due checks.
// Tests inject a fixed or stepped clock to control "now" deterministically.
func WithClock(clock func() time.Time) Option {
	return func(o *serviceOptions) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *serviceOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithReminderLeadTime sets how long before the appointment the default
// reminder is scheduled.
func WithReminderLeadTime(d time.Duration) Option {
	return func(o *serviceOptions) {
		if d > 0 {
			o.reminderLead = d
		}
	}
}

// WithIdlePause sets the pause between dispatcher iterations.
func WithIdlePause(d time.Duration) Option {
	return func(o *serviceOptions) {
		if d > 0 {
			o.idlePause = d
		}
	}
}

// WithDefaultBookingURL sets the rebooking link used in cancellation
// messages when the caller does not supply one.
func WithDefaultBookingURL(url string) Option {
	return func(o *serviceOptions) {
		if url != "" {
			o.defaultBookingURL = url
		}
	}
}

// WithConfig applies a loaded Config as a single option.
func WithConfig(cfg Config) Option {
	return func(o *serviceOptions) {
		WithRetryPolicy(retry.Policy{MaxAttempts: cfg.MaxAttempts, BaseDelay: cfg.RetryBaseDelay})(o)
		WithReminderLeadTime(cfg.ReminderLeadTime)(o)
		WithIdlePause(cfg.QueueIdlePause)(o)
		WithDefaultBookingURL(cfg.DefaultBookingURL)(o)
	}
}
