package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixwellinc/household-services-platform-sub010/pkg/config"
)

type testConfig struct {
	Name     string        `env:"TEST_CONFIG_NAME" envDefault:"notifier"`
	Attempts int           `env:"TEST_CONFIG_ATTEMPTS" envDefault:"3"`
	Delay    time.Duration `env:"TEST_CONFIG_DELAY" envDefault:"5s"`
	Required string        `env:"TEST_CONFIG_REQUIRED,required"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults and reads environment", func(t *testing.T) {
		t.Setenv("TEST_CONFIG_REQUIRED", "set")
		t.Setenv("TEST_CONFIG_ATTEMPTS", "5")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "notifier", cfg.Name)
		assert.Equal(t, 5, cfg.Attempts)
		assert.Equal(t, 5*time.Second, cfg.Delay)
		assert.Equal(t, "set", cfg.Required)
	})

	t.Run("missing required variable", func(t *testing.T) {
		var cfg testConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("malformed duration", func(t *testing.T) {
		t.Setenv("TEST_CONFIG_REQUIRED", "set")
		t.Setenv("TEST_CONFIG_DELAY", "not-a-duration")

		var cfg testConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}
