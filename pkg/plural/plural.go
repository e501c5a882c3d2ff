package plural

import "strconv"

// Category is a plural bucket name derived from a count.
type Category string

// Plural categories produced by Bucket.
const (
	Zero Category = "zero"
	One  Category = "one"
	Few  Category = "few"
	Many Category = "many"
)

// CatchAllKey is the mapping key tried as the final fallback before the
// empty-string default.
const CatchAllKey = "n"

// Forms maps plural keys to display values. Keys may be exact counts (int),
// their decimal string forms, category names ("zero", "one", "few", "many"),
// or the catch-all key "n".
type Forms map[any]string

// Bucket maps a count to its plural category using a fixed rule:
// 0 is Zero, 1 is One, 2 and 3 are Few, everything else (negative numbers
// included) is Many.
//
// This is a deliberate simplification, not a CLDR rule set: real plural
// rules are language-dependent, but dictionary-based message selection only
// needs a stable, predictable bucketing. Callers depend on this exact
// behavior.
func Bucket(n int) Category {
	switch n {
	case 0:
		return Zero
	case 1:
		return One
	case 2, 3:
		return Few
	default:
		return Many
	}
}

// Pluralize returns the value from forms whose key matches the count.
// Keys are tried in a fixed order, first hit wins:
//
//  1. the count itself (int key)
//  2. the decimal string form of the count
//  3. the category name from Bucket
//  4. the "many" key
//  5. the catch-all key "n"
//
// If none resolves, the empty string is returned. This order lets callers
// key irregular small cases by exact number while falling back to
// category-based or generic entries.
//
// Pluralize only selects the value; it does not interpolate the count into
// it. Callers with an optional count pass 0 for the absent case.
func Pluralize(forms Forms, count int) string {
	if v, ok := forms[count]; ok {
		return v
	}
	if v, ok := forms[strconv.Itoa(count)]; ok {
		return v
	}
	if v, ok := forms[string(Bucket(count))]; ok {
		return v
	}
	if v, ok := forms[string(Many)]; ok {
		return v
	}
	if v, ok := forms[CatchAllKey]; ok {
		return v
	}
	return ""
}
