package locale

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// acceptLanguageHeader is the well-known request header carrying weighted
// client language preferences.
const acceptLanguageHeader = "Accept-Language"

// maxAcceptLanguageLength caps the header size before parsing. RFC 7231 sets
// no limit, but 4KB is generous for legitimate headers while preventing
// memory exhaustion from oversized requests.
const maxAcceptLanguageLength = 4096

// Weighted is a single Accept-Language entry: a raw language tag and its
// quality value in [0, 1].
type Weighted struct {
	Tag string
	Q   float64
}

// ParseAcceptLanguage parses a raw Accept-Language header into weighted
// entries sorted by descending quality. Entries without a quality suffix,
// or with a malformed one, rank as quality 1.0. The sort is stable: entries
// with equal quality keep their original relative order. Wildcard entries
// are dropped.
func ParseAcceptLanguage(header string) []Weighted {
	if header == "" {
		return nil
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var prefs []Weighted
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		tag, qPart, hasQ := strings.Cut(part, ";")
		tag = strings.TrimSpace(tag)
		if tag == "" || tag == "*" {
			continue
		}

		q := 1.0
		if hasQ {
			qPart = strings.TrimSpace(qPart)
			if v, ok := strings.CutPrefix(qPart, "q="); ok {
				if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
					q = f
				}
			}
		}

		prefs = append(prefs, Weighted{Tag: tag, Q: q})
	}

	slices.SortStableFunc(prefs, func(a, b Weighted) int {
		return cmp.Compare(b.Q, a.Q)
	})

	return prefs
}

// PreferredFromHeader parses a raw Accept-Language header and returns the
// lexically normalized tag strings in descending preference order, quality
// values discarded.
func PreferredFromHeader(header string) []string {
	prefs := ParseAcceptLanguage(header)
	if len(prefs) == 0 {
		return nil
	}
	tags := make([]string, 0, len(prefs))
	for _, p := range prefs {
		if t := Split(p.Tag); !t.IsZero() {
			tags = append(tags, t.String())
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}
