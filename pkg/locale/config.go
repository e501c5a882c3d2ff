package locale

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds detector settings loadable from environment variables.
type Config struct {
	DefaultLocale    string   `env:"LOCALE_DEFAULT" envDefault:"en"`
	SupportedLocales []string `env:"LOCALE_SUPPORTED" envSeparator:","`
	DefaultTimezone  string   `env:"TZ_DEFAULT" envDefault:"UTC"`
	LocaleParam      string   `env:"LOCALE_QUERY_PARAM" envDefault:"locale"`
	TimezoneParam    string   `env:"TZ_QUERY_PARAM" envDefault:"tzinfo"`
}

var defaultEnvLoaded sync.Once

// LoadConfig loads detector settings from environment variables, reading a
// default .env file once per process if one exists.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file might not exist and that's ok.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// NewDetectorFromConfig validates the config values and builds a Detector.
// Extra options are applied after the config-derived ones, so they win.
func NewDetectorFromConfig(cfg Config, opts ...Option) (*Detector, error) {
	def, err := Parse(cfg.DefaultLocale)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, fmt.Errorf("default locale %q: %w", cfg.DefaultLocale, err))
	}
	tz, ok := LoadTimezone(cfg.DefaultTimezone)
	if !ok {
		return nil, errors.Join(ErrInvalidConfig, ErrUnknownTimezone, fmt.Errorf("default timezone %q", cfg.DefaultTimezone))
	}

	options := []Option{
		WithDefaultLocale(def),
		WithDefaultTimezone(tz),
		WithQueryParams(cfg.LocaleParam, cfg.TimezoneParam),
	}
	if len(cfg.SupportedLocales) > 0 {
		options = append(options, WithSupportedLocales(cfg.SupportedLocales...))
	}
	options = append(options, opts...)

	return NewDetector(options...), nil
}
