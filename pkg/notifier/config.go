package notifier

import "time"

// Config holds the notification core configuration.
type Config struct {
	MaxAttempts       int           `env:"NOTIFIER_MAX_ATTEMPTS" envDefault:"3"`
	RetryBaseDelay    time.Duration `env:"NOTIFIER_RETRY_BASE_DELAY" envDefault:"5s"`
	ReminderLeadTime  time.Duration `env:"NOTIFIER_REMINDER_LEAD_TIME" envDefault:"24h"`
	QueueIdlePause    time.Duration `env:"NOTIFIER_QUEUE_IDLE_PAUSE" envDefault:"100ms"`
	DefaultBookingURL string        `env:"NOTIFIER_DEFAULT_BOOKING_URL" envDefault:"https://fixwellinc.com/book"`
}
