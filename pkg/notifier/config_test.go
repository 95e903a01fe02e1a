package notifier_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fixwellinc/household-services-platform-sub010/pkg/config"
	"github.com/fixwellinc/household-services-platform-sub010/pkg/email"
	"github.com/fixwellinc/household-services-platform-sub010/pkg/notifier"
)

func TestConfig_Load(t *testing.T) {
	// t.Setenv is incompatible with t.Parallel.

	t.Run("defaults", func(t *testing.T) {
		var cfg notifier.Config
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, 3, cfg.MaxAttempts)
		assert.Equal(t, 5*time.Second, cfg.RetryBaseDelay)
		assert.Equal(t, 24*time.Hour, cfg.ReminderLeadTime)
		assert.Equal(t, 100*time.Millisecond, cfg.QueueIdlePause)
		assert.Equal(t, "https://fixwellinc.com/book", cfg.DefaultBookingURL)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("NOTIFIER_MAX_ATTEMPTS", "5")
		t.Setenv("NOTIFIER_RETRY_BASE_DELAY", "250ms")
		t.Setenv("NOTIFIER_REMINDER_LEAD_TIME", "48h")
		t.Setenv("NOTIFIER_DEFAULT_BOOKING_URL", "https://staging.fixwellinc.com/book")

		var cfg notifier.Config
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, 5, cfg.MaxAttempts)
		assert.Equal(t, 250*time.Millisecond, cfg.RetryBaseDelay)
		assert.Equal(t, 48*time.Hour, cfg.ReminderLeadTime)
		assert.Equal(t, "https://staging.fixwellinc.com/book", cfg.DefaultBookingURL)
	})

	t.Run("invalid duration", func(t *testing.T) {
		t.Setenv("NOTIFIER_RETRY_BASE_DELAY", "later")

		var cfg notifier.Config
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})
}

func TestWithConfig(t *testing.T) {
	t.Setenv("NOTIFIER_MAX_ATTEMPTS", "2")
	t.Setenv("NOTIFIER_RETRY_BASE_DELAY", "1ms")
	t.Setenv("NOTIFIER_QUEUE_IDLE_PAUSE", "1ms")
	t.Setenv("NOTIFIER_DEFAULT_BOOKING_URL", "https://cfg.fixwellinc.com/book")

	var cfg notifier.Config
	require.NoError(t, config.Load(&cfg))

	transport := new(MockTransport)
	defer transport.AssertExpectations(t)

	var sent email.Message
	transport.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(email.Message) }).
		Return(email.Result{}, assert.AnError).Once()
	transport.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(email.Message) }).
		Return(email.Result{MessageID: "pm-cfg"}, nil).Once()

	svc, err := notifier.New(email.MustNewTemplateRegistry(), transport,
		notifier.WithConfig(cfg),
		notifier.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)

	_, err = svc.SendCancellationEmail(context.Background(), testAppointment(), "Customer request", "")
	require.NoError(t, err)

	// MaxAttempts 2 allows exactly one retry after the first failure.
	transport.AssertNumberOfCalls(t, "Send", 2)
	assert.Contains(t, sent.HTML, "https://cfg.fixwellinc.com/book")
}
