package locale

import (
	"context"
	"time"
)

// DefaultLocale is returned by LocaleFromContext when no locale was stored.
var DefaultLocale = Tag{Language: "en"}

type localeCtxKey struct{}

type timezoneCtxKey struct{}

// WithLocale stores the resolved locale in the context.
func WithLocale(ctx context.Context, t Tag) context.Context {
	return context.WithValue(ctx, localeCtxKey{}, t)
}

// LocaleFromContext returns the locale stored in the context, or
// DefaultLocale when none was set.
func LocaleFromContext(ctx context.Context) Tag {
	t, _ := ctx.Value(localeCtxKey{}).(Tag)
	if t.IsZero() {
		return DefaultLocale
	}
	return t
}

// WithTimezone stores the resolved timezone in the context.
func WithTimezone(ctx context.Context, loc *time.Location) context.Context {
	return context.WithValue(ctx, timezoneCtxKey{}, loc)
}

// TimezoneFromContext returns the timezone stored in the context, or UTC
// when none was set.
func TimezoneFromContext(ctx context.Context) *time.Location {
	loc, _ := ctx.Value(timezoneCtxKey{}).(*time.Location)
	if loc == nil {
		return time.UTC
	}
	return loc
}
