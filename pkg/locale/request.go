package locale

import (
	"cmp"
	"net/http"
	"net/url"
	"slices"
	"time"
)

// Query parameter names probed by RequestLocale and RequestTimezone.
const (
	queryParamLocale   = "locale"
	queryParamTimezone = "tzinfo"
)

// Request capability interfaces. The helpers in this file accept any value
// and probe it for these capabilities in a fixed priority order, so they
// work with plain *http.Request as well as framework request wrappers that
// pre-parse language preferences or cache the resolved locale.
type (
	// PreferenceLister exposes an already-parsed preference list, most
	// preferred first.
	PreferenceLister interface {
		PreferredLocales() []string
	}

	// WeightedPreferenceLister exposes pre-parsed Accept-Language entries
	// with their quality values, in header order.
	WeightedPreferenceLister interface {
		AcceptLanguage() []Weighted
	}

	// HeaderCarrier exposes raw request headers.
	HeaderCarrier interface {
		Header() http.Header
	}

	// QueryCarrier exposes URL query parameters.
	QueryCarrier interface {
		Query() url.Values
	}

	// LocaleCarrier exposes a locale previously resolved for the request.
	LocaleCarrier interface {
		Locale() Tag
	}

	// LocaleSetter caches the resolved locale back onto the request.
	LocaleSetter interface {
		SetLocale(Tag)
	}

	// TimezoneCarrier exposes a timezone previously resolved for the request.
	TimezoneCarrier interface {
		Timezone() *time.Location
	}

	// TimezoneSetter caches the resolved timezone back onto the request.
	TimezoneSetter interface {
		SetTimezone(*time.Location)
	}
)

// PreferredLocales extracts the ordered list of client locale preferences
// from a request-like value. Sources are probed in priority order, first
// non-empty result wins:
//
//  1. a pre-parsed preference list (PreferenceLister)
//  2. a pre-parsed weighted list (WeightedPreferenceLister), stable-sorted
//     by descending quality
//  3. a raw Accept-Language header (*http.Request or HeaderCarrier)
//
// Returned tags are lexically normalized ("en_US" form). Returns nil when
// the request exposes no usable preference data.
func PreferredLocales(r any) []string {
	if p, ok := r.(PreferenceLister); ok {
		if tags := normalizeList(p.PreferredLocales()); len(tags) > 0 {
			return tags
		}
	}

	if w, ok := r.(WeightedPreferenceLister); ok {
		prefs := slices.Clone(w.AcceptLanguage())
		slices.SortStableFunc(prefs, func(a, b Weighted) int {
			return cmp.Compare(b.Q, a.Q)
		})
		raw := make([]string, 0, len(prefs))
		for _, p := range prefs {
			raw = append(raw, p.Tag)
		}
		if tags := normalizeList(raw); len(tags) > 0 {
			return tags
		}
	}

	if header := requestHeader(r).Get(acceptLanguageHeader); header != "" {
		if tags := PreferredFromHeader(header); len(tags) > 0 {
			return tags
		}
	}

	return nil
}

// NegotiateRequest extracts the client preferences from the request and
// negotiates them against the available locales. Returns false when the
// request carries no usable preferences, nothing matches, or available
// is empty.
func NegotiateRequest(r any, available []string) (Tag, bool) {
	return Negotiate(PreferredLocales(r), available)
}

// RequestLocale resolves the locale for a request. It tries, in order: a
// locale already cached on the request (LocaleCarrier), the "locale" query
// parameter, then the provided default. Unrecognized values fall through to
// the next source. The result is cached back onto the request when it
// implements LocaleSetter.
func RequestLocale(r any, def Tag) Tag {
	var resolved Tag

	if c, ok := r.(LocaleCarrier); ok {
		if t := c.Locale(); !t.IsZero() {
			if p, err := Parse(t.String()); err == nil {
				resolved = p
			}
		}
	}
	if resolved.IsZero() {
		if raw := requestQuery(r).Get(queryParamLocale); raw != "" {
			if p, err := Parse(raw); err == nil {
				resolved = p
			}
		}
	}
	if resolved.IsZero() {
		resolved = def
	}

	if s, ok := r.(LocaleSetter); ok && !resolved.IsZero() {
		s.SetLocale(resolved)
	}
	return resolved
}

// RequestTimezone resolves the timezone for a request. It tries, in order:
// a timezone already cached on the request (TimezoneCarrier), the "tzinfo"
// query parameter, then the provided default. Unknown names fall through to
// the next source. The result is cached back onto the request when it
// implements TimezoneSetter.
func RequestTimezone(r any, def *time.Location) *time.Location {
	var resolved *time.Location

	if c, ok := r.(TimezoneCarrier); ok {
		resolved = c.Timezone()
	}
	if resolved == nil {
		if raw := requestQuery(r).Get(queryParamTimezone); raw != "" {
			if loc, ok := LoadTimezone(raw); ok {
				resolved = loc
			}
		}
	}
	if resolved == nil {
		resolved = def
	}

	if s, ok := r.(TimezoneSetter); ok && resolved != nil {
		s.SetTimezone(resolved)
	}
	return resolved
}

func normalizeList(raw []string) []string {
	tags := make([]string, 0, len(raw))
	for _, s := range raw {
		if t := Split(s); !t.IsZero() {
			tags = append(tags, t.String())
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

func requestHeader(r any) http.Header {
	switch v := r.(type) {
	case *http.Request:
		return v.Header
	case HeaderCarrier:
		return v.Header()
	}
	return nil
}

func requestQuery(r any) url.Values {
	switch v := r.(type) {
	case *http.Request:
		if v.URL != nil {
			return v.URL.Query()
		}
	case QueryCarrier:
		return v.Query()
	}
	return nil
}
