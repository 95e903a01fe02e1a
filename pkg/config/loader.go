package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load populates the configuration struct from environment variables based on
// `env` field tags. The default .env file is read once per process before the
// first parse; a missing .env file is not an error.
//
// Example:
//
//	type NotifierConfig struct {
//	    BaseDelay   time.Duration `env:"NOTIFIER_RETRY_BASE_DELAY" envDefault:"5s"`
//	    MaxAttempts int           `env:"NOTIFIER_MAX_ATTEMPTS" envDefault:"3"`
//	}
//
//	var cfg NotifierConfig
//	if err := config.Load(&cfg); err != nil {
//	    // Handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		// The .env file might not exist and that's ok.
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}
