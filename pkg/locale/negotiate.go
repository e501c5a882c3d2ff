package locale

import "golang.org/x/text/language"

// Negotiate selects the best match for the ranked client preferences among
// the locales the caller supports. Both sides are normalized before
// comparison, so "-"/"_" separators and arbitrary casing are accepted.
// Entries that do not name a known locale are skipped.
//
// An exact language/region match outranks a bare-language match. The result
// is always one of the supplied available locales. The second return value
// is false when nothing matches or available is empty; the caller decides
// the fallback.
func Negotiate(preferred, available []string) (Tag, bool) {
	if len(available) == 0 {
		return Tag{}, false
	}

	candidates := make([]language.Tag, 0, len(available))
	index := make([]int, 0, len(available))
	for i, a := range available {
		norm := Split(a)
		if norm.IsZero() {
			continue
		}
		t, err := language.Parse(norm.bcp47())
		if err != nil {
			continue
		}
		candidates = append(candidates, t)
		index = append(index, i)
	}
	if len(candidates) == 0 {
		return Tag{}, false
	}

	desired := make([]language.Tag, 0, len(preferred))
	for _, p := range preferred {
		norm := Split(p)
		if norm.IsZero() {
			continue
		}
		t, err := language.Parse(norm.bcp47())
		if err != nil {
			continue
		}
		desired = append(desired, t)
	}
	if len(desired) == 0 {
		return Tag{}, false
	}

	_, idx, conf := language.NewMatcher(candidates).Match(desired...)
	if conf == language.No {
		return Tag{}, false
	}
	return Split(available[index[idx]]), true
}
