package l10n_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/localekit/pkg/l10n"
	"github.com/dmitrymomot/localekit/pkg/locale"
)

func TestFormatTimedelta(t *testing.T) {
	t.Parallel()

	f := l10n.New(locale.Tag{Language: "en", Region: "US"})

	t.Run("automatic unit selection", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name     string
			d        time.Duration
			expected string
		}{
			{"six days round to a week", 6 * 24 * time.Hour, "1 week"},
			{"three days stay days", 3 * 24 * time.Hour, "3 days"},
			{"ninety minutes round to hours", 90 * time.Minute, "2 hours"},
			{"one hour", time.Hour, "1 hour"},
			{"seconds", 45 * time.Second, "45 seconds"},
			{"one second", time.Second, "1 second"},
			{"zero duration", 0, "0 seconds"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				assert.Equal(t, tt.expected, f.FormatTimedelta(tt.d, ""))
			})
		}
	})

	t.Run("forced granularity", func(t *testing.T) {
		t.Parallel()
		// Six days forced to months still renders at least one month.
		assert.Equal(t, "1 month", f.FormatTimedelta(6*24*time.Hour, l10n.GranularityMonth))
		assert.Equal(t, "1 week", f.FormatTimedelta(6*24*time.Hour, l10n.GranularityWeek))
		assert.Equal(t, "6 days", f.FormatTimedelta(6*24*time.Hour, l10n.GranularityDay))
	})

	t.Run("sign discarded", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "1 week", f.FormatTimedelta(-6*24*time.Hour, ""))
	})

	t.Run("unknown granularity", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", f.FormatTimedelta(time.Hour, "fortnight"))
	})
}
