package l10n

import (
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/dmitrymomot/localekit/pkg/locale"
)

// Style selects one of the predefined date/time layouts.
type Style string

// Predefined layout styles.
const (
	StyleShort  Style = "short"
	StyleMedium Style = "medium"
	StyleLong   Style = "long"
)

// Formatter renders dates, times and numbers according to a locale's
// conventions. It is immutable after creation and safe for concurrent use.
type Formatter struct {
	printer *message.Printer
	layouts layoutSet
}

// New creates a Formatter for the given locale tag. Unknown tags fall back
// to English conventions.
func New(t locale.Tag) *Formatter {
	tag := language.English
	if !t.IsZero() {
		if parsed, err := language.Parse(strings.ReplaceAll(t.String(), "_", "-")); err == nil {
			tag = parsed
		}
	}
	return &Formatter{
		printer: message.NewPrinter(tag),
		layouts: layoutsFor(t.Language),
	}
}

// FormatDate formats the date part of t. Zero times format to "".
func (f *Formatter) FormatDate(t time.Time, style Style) string {
	if t.IsZero() {
		return ""
	}
	switch style {
	case StyleShort:
		return t.Format(f.layouts.dateShort)
	case StyleLong:
		return t.Format(f.layouts.dateLong)
	default:
		return t.Format(f.layouts.dateMedium)
	}
}

// FormatTime formats the time-of-day part of t. Zero times format to "".
func (f *Formatter) FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(f.layouts.timeOfDay)
}

// FormatDateTime formats t as a combined date and time. Zero times format
// to "".
func (f *Formatter) FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(f.layouts.dateTime)
}

// FormatDecimal formats a number with the locale's digit grouping and
// decimal separator, keeping at most three fraction digits.
func (f *Formatter) FormatDecimal(v float64) string {
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// FormatPercent formats a ratio as a percentage, so 0.34 renders as "34%"
// in English.
func (f *Formatter) FormatPercent(v float64) string {
	return f.printer.Sprint(number.Percent(v))
}

// FormatCurrency formats an amount in the currency named by its ISO 4217
// code. Unknown codes format to "". Currencies without a known symbol are
// prefixed with their ISO code.
func (f *Formatter) FormatCurrency(v float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return ""
	}

	amount := f.printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))

	symbol, ok := currencySymbols[unit.String()]
	if !ok {
		return unit.String() + " " + amount
	}
	if f.layouts.currencyAfter {
		return amount + " " + symbol
	}
	return symbol + amount
}

// currencySymbols covers the currencies with a widely recognized symbol;
// everything else renders with its ISO code.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"KRW": "₩",
	"RUB": "₽",
	"PLN": "zł",
	"BRL": "R$",
	"CAD": "CA$",
	"AUD": "A$",
	"UAH": "₴",
	"INR": "₹",
	"TRY": "₺",
}
