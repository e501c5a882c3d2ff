package locale

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
)

// Tag is a normalized locale identifier consisting of a lowercase language
// code and an optional uppercase region code, e.g. {Language: "en", Region: "US"}.
type Tag struct {
	Language string
	Region   string
}

// String serializes the tag using the underscore separator, e.g. "en_US".
// Returns an empty string for the zero tag.
func (t Tag) String() string {
	if t.Language == "" {
		return ""
	}
	if t.Region == "" {
		return t.Language
	}
	return t.Language + "_" + t.Region
}

// IsZero reports whether the tag carries no language code.
func (t Tag) IsZero() bool {
	return t.Language == ""
}

// bcp47 serializes the tag with the hyphen separator expected by the
// golang.org/x/text parsers.
func (t Tag) bcp47() string {
	if t.Region == "" {
		return t.Language
	}
	return t.Language + "-" + t.Region
}

// Split performs a purely lexical normalization of a locale string: both
// "-" and "_" separators are accepted, the language segment is lowercased
// and the region segment is uppercased. No validation is performed; use
// Parse when the input must name a known locale.
//
// Split is idempotent: splitting an already-normalized tag string yields
// an identical tag.
func Split(s string) Tag {
	s = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	if s == "" {
		return Tag{}
	}
	parts := strings.Split(s, "_")
	t := Tag{Language: parts[0]}
	if len(parts) > 1 {
		t.Region = strings.ToUpper(parts[len(parts)-1])
	}
	return t
}

// Parse normalizes a locale string and validates both segments against the
// locale database. The language segment is canonicalized (e.g. "eng" becomes
// "en"). Returns ErrUnknownLocale for empty, malformed or unregistered input.
func Parse(s string) (Tag, error) {
	t := Split(s)
	if t.Language == "" {
		return Tag{}, ErrUnknownLocale
	}
	base, err := language.ParseBase(t.Language)
	if err != nil {
		return Tag{}, errors.Join(ErrUnknownLocale, err)
	}
	t.Language = strings.ToLower(base.String())
	if t.Region != "" {
		region, err := language.ParseRegion(t.Region)
		if err != nil {
			return Tag{}, errors.Join(ErrUnknownLocale, err)
		}
		t.Region = strings.ToUpper(region.String())
	}
	return t, nil
}

// Normalize parses a locale string and returns its canonical serialized
// form. The second return value is false when the input does not name a
// known locale; callers are expected to fall back to their own default.
func Normalize(s string) (string, bool) {
	t, err := Parse(s)
	if err != nil {
		return "", false
	}
	return t.String(), true
}
