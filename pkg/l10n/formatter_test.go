package l10n_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/localekit/pkg/l10n"
	"github.com/dmitrymomot/localekit/pkg/locale"
)

func enUS() *l10n.Formatter { return l10n.New(locale.Tag{Language: "en", Region: "US"}) }
func deDE() *l10n.Formatter { return l10n.New(locale.Tag{Language: "de", Region: "DE"}) }

func TestFormatDecimal(t *testing.T) {
	t.Parallel()

	t.Run("english grouping", func(t *testing.T) {
		t.Parallel()
		f := enUS()
		assert.Equal(t, "12,345", f.FormatDecimal(12345))
		assert.Equal(t, "1,234.5", f.FormatDecimal(1234.5))
		assert.Equal(t, "1.23", f.FormatDecimal(1.23))
	})

	t.Run("german grouping", func(t *testing.T) {
		t.Parallel()
		f := deDE()
		assert.Equal(t, "12.345", f.FormatDecimal(12345))
		assert.Equal(t, "1.234,5", f.FormatDecimal(1234.5))
	})

	t.Run("unknown locale falls back to english", func(t *testing.T) {
		t.Parallel()
		f := l10n.New(locale.Tag{})
		assert.Equal(t, "12,345", f.FormatDecimal(12345))
	})
}

func TestFormatPercent(t *testing.T) {
	t.Parallel()

	f := enUS()
	assert.Equal(t, "34%", f.FormatPercent(0.34))
	assert.Equal(t, "100%", f.FormatPercent(1))
}

func TestFormatCurrency(t *testing.T) {
	t.Parallel()

	t.Run("symbol before amount", func(t *testing.T) {
		t.Parallel()
		f := enUS()
		assert.Equal(t, "$1,099.98", f.FormatCurrency(1099.98, "USD"))
		assert.Equal(t, "€1,099.98", f.FormatCurrency(1099.98, "EUR"))
	})

	t.Run("symbol after amount", func(t *testing.T) {
		t.Parallel()
		f := deDE()
		assert.Equal(t, "1.099,98 €", f.FormatCurrency(1099.98, "EUR"))
	})

	t.Run("iso code for unmapped currency", func(t *testing.T) {
		t.Parallel()
		f := enUS()
		assert.Equal(t, "CHF 1,099.98", f.FormatCurrency(1099.98, "CHF"))
	})

	t.Run("unknown code formats to empty", func(t *testing.T) {
		t.Parallel()
		f := enUS()
		assert.Equal(t, "", f.FormatCurrency(1099.98, "WAT"))
	})
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	d := time.Date(2007, time.April, 1, 15, 30, 0, 0, time.UTC)

	t.Run("english styles", func(t *testing.T) {
		t.Parallel()
		f := enUS()
		assert.Equal(t, "4/1/07", f.FormatDate(d, l10n.StyleShort))
		assert.Equal(t, "Apr 1, 2007", f.FormatDate(d, l10n.StyleMedium))
		assert.Equal(t, "April 1, 2007", f.FormatDate(d, l10n.StyleLong))
	})

	t.Run("german layout", func(t *testing.T) {
		t.Parallel()
		f := deDE()
		assert.Equal(t, "01.04.2007", f.FormatDate(d, l10n.StyleMedium))
	})

	t.Run("zero time formats to empty", func(t *testing.T) {
		t.Parallel()
		f := enUS()
		assert.Equal(t, "", f.FormatDate(time.Time{}, l10n.StyleMedium))
	})
}

func TestFormatTimeAndDateTime(t *testing.T) {
	t.Parallel()

	d := time.Date(2007, time.April, 1, 15, 30, 0, 0, time.UTC)

	f := enUS()
	assert.Equal(t, "3:30 PM", f.FormatTime(d))
	assert.Equal(t, "Apr 1, 2007 3:30 PM", f.FormatDateTime(d))

	g := deDE()
	assert.Equal(t, "15:30", g.FormatTime(d))
	assert.Equal(t, "01.04.2007 15:30", g.FormatDateTime(d))

	assert.Equal(t, "", f.FormatTime(time.Time{}))
	assert.Equal(t, "", f.FormatDateTime(time.Time{}))
}
