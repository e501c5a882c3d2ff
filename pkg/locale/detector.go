package locale

import (
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Detector resolves the locale and timezone for incoming HTTP requests.
// It is immutable after construction and safe for concurrent use.
type Detector struct {
	defaultLocale Tag
	defaultTZ     *time.Location
	supported     []string
	localeParam   string
	tzParam       string
	log           *slog.Logger
}

// Option configures a Detector during construction.
type Option func(*Detector)

// WithDefaultLocale sets the locale returned when no request source yields
// a usable value. Zero tags are ignored.
func WithDefaultLocale(t Tag) Option {
	return func(d *Detector) {
		if t.IsZero() {
			return
		}
		d.defaultLocale = t
	}
}

// WithDefaultTimezone sets the timezone returned when no request source
// yields a usable value. Nil locations are ignored.
func WithDefaultTimezone(loc *time.Location) Option {
	return func(d *Detector) {
		if loc == nil {
			return
		}
		d.defaultTZ = loc
	}
}

// WithSupportedLocales restricts resolution to the given locales. Request
// values are negotiated against this set; without it any known locale is
// accepted as-is.
func WithSupportedLocales(locales ...string) Option {
	return func(d *Detector) {
		if len(locales) == 0 {
			return
		}
		d.supported = normalizeList(locales)
	}
}

// WithQueryParams overrides the query parameter names checked for locale
// and timezone overrides. Empty names keep the defaults ("locale", "tzinfo").
func WithQueryParams(localeParam, tzParam string) Option {
	return func(d *Detector) {
		if localeParam != "" {
			d.localeParam = localeParam
		}
		if tzParam != "" {
			d.tzParam = tzParam
		}
	}
}

// WithLogger sets the logger used for degraded-input debug messages.
func WithLogger(log *slog.Logger) Option {
	return func(d *Detector) {
		if log == nil {
			return
		}
		d.log = log
	}
}

// NewDetector creates a Detector. Without options it resolves any known
// locale, falls back to DefaultLocale and UTC, and stays silent.
func NewDetector(opts ...Option) *Detector {
	d := &Detector{
		defaultLocale: DefaultLocale,
		defaultTZ:     time.UTC,
		localeParam:   queryParamLocale,
		tzParam:       queryParamTimezone,
		log:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Locale resolves the locale for a request. Sources in priority order:
// the locale query parameter, Accept-Language negotiation, the configured
// default. Unrecognized values fall through to the next source.
func (d *Detector) Locale(r *http.Request) Tag {
	if raw := r.URL.Query().Get(d.localeParam); raw != "" {
		if t, ok := d.validated(raw); ok {
			return t
		}
		d.log.DebugContext(r.Context(), "unrecognized locale query parameter", "param", d.localeParam, "value", raw)
	}

	if header := r.Header.Get(acceptLanguageHeader); header != "" {
		if len(d.supported) > 0 {
			if t, ok := Negotiate(PreferredFromHeader(header), d.supported); ok {
				return t
			}
		} else {
			for _, p := range PreferredFromHeader(header) {
				if t, err := Parse(p); err == nil {
					return t
				}
			}
		}
		d.log.DebugContext(r.Context(), "no locale match for accept-language header", "header", header)
	}

	return d.defaultLocale
}

// Timezone resolves the timezone for a request from the timezone query
// parameter, falling back to the configured default.
func (d *Detector) Timezone(r *http.Request) *time.Location {
	if raw := r.URL.Query().Get(d.tzParam); raw != "" {
		if loc, ok := LoadTimezone(raw); ok {
			return loc
		}
		d.log.DebugContext(r.Context(), "unrecognized timezone query parameter", "param", d.tzParam, "value", raw)
	}
	return d.defaultTZ
}

// Middleware returns an HTTP middleware that resolves the request locale
// and timezone and stores both in the request context. Handlers read them
// back with LocaleFromContext and TimezoneFromContext.
func (d *Detector) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLocale(r.Context(), d.Locale(r))
			ctx = WithTimezone(ctx, d.Timezone(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validated parses a client-supplied locale and, when a supported set is
// configured, negotiates it against that set.
func (d *Detector) validated(raw string) (Tag, bool) {
	t, err := Parse(raw)
	if err != nil {
		return Tag{}, false
	}
	if len(d.supported) == 0 {
		return t, true
	}
	return Negotiate([]string{t.String()}, d.supported)
}
