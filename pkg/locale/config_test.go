package locale_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/locale"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := locale.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "en", cfg.DefaultLocale)
		assert.Equal(t, "UTC", cfg.DefaultTimezone)
		assert.Equal(t, "locale", cfg.LocaleParam)
		assert.Equal(t, "tzinfo", cfg.TimezoneParam)
		assert.Empty(t, cfg.SupportedLocales)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("LOCALE_DEFAULT", "de")
		t.Setenv("LOCALE_SUPPORTED", "de,en,fr")
		t.Setenv("TZ_DEFAULT", "Europe/Berlin")
		t.Setenv("LOCALE_QUERY_PARAM", "lang")

		cfg, err := locale.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "de", cfg.DefaultLocale)
		assert.Equal(t, []string{"de", "en", "fr"}, cfg.SupportedLocales)
		assert.Equal(t, "Europe/Berlin", cfg.DefaultTimezone)
		assert.Equal(t, "lang", cfg.LocaleParam)
	})
}

func TestNewDetectorFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("builds working detector", func(t *testing.T) {
		t.Parallel()
		d, err := locale.NewDetectorFromConfig(locale.Config{
			DefaultLocale:    "es",
			SupportedLocales: []string{"es", "en"},
			DefaultTimezone:  "America/Lima",
			LocaleParam:      "locale",
			TimezoneParam:    "tzinfo",
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Equal(t, "es", d.Locale(req).String())
		assert.Equal(t, "America/Lima", d.Timezone(req).String())

		req = httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "en-US")
		assert.Equal(t, "en", d.Locale(req).String())
	})

	t.Run("unknown default locale", func(t *testing.T) {
		t.Parallel()
		_, err := locale.NewDetectorFromConfig(locale.Config{
			DefaultLocale:   "not-a-locale",
			DefaultTimezone: "UTC",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, locale.ErrInvalidConfig)
		assert.ErrorIs(t, err, locale.ErrUnknownLocale)
	})

	t.Run("unknown default timezone", func(t *testing.T) {
		t.Parallel()
		_, err := locale.NewDetectorFromConfig(locale.Config{
			DefaultLocale:   "en",
			DefaultTimezone: "Nowhere/Special",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, locale.ErrInvalidConfig)
		assert.ErrorIs(t, err, locale.ErrUnknownTimezone)
	})

	t.Run("extra options win", func(t *testing.T) {
		t.Parallel()
		d, err := locale.NewDetectorFromConfig(locale.Config{
			DefaultLocale:   "en",
			DefaultTimezone: "UTC",
		}, locale.WithDefaultLocale(locale.Tag{Language: "fr"}))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Equal(t, "fr", d.Locale(req).String())
	})
}
