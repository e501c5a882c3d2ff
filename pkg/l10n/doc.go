// Package l10n renders dates, times, numbers, currency amounts and
// durations according to a locale's conventions.
//
// A Formatter is built from a locale tag and delegates number formatting to
// golang.org/x/text, which supplies the locale's digit grouping and decimal
// separator. Date and time layouts come from a small predefined table in
// the spirit of Unicode short/medium/long styles.
//
//	f := l10n.New(locale.Tag{Language: "de", Region: "DE"})
//
//	f.FormatDecimal(12345)               // "12.345"
//	f.FormatCurrency(1099.98, "EUR")     // "1.099,98 €"
//	f.FormatDate(t, l10n.StyleMedium)    // "01.04.2007"
//	f.FormatTimedelta(6*24*time.Hour, "") // "1 week"
//
// Formatters are immutable and safe for concurrent use.
package l10n
