// Package plural maps integer counts to plural-category buckets and looks
// up display values in caller-supplied mappings.
//
// The bucketing rule is fixed (0 → zero, 1 → one, 2 or 3 → few, everything
// else → many) and intentionally not locale-sensitive; it exists to pick
// one entry out of a small dictionary, not to model full CLDR plural rules.
//
//	forms := plural.Forms{
//		0:   "No apples",
//		1:   "One apple",
//		3:   "Few apples",
//		"n": "{count} apples",
//	}
//
//	plural.Pluralize(forms, 0)  // "No apples"
//	plural.Pluralize(forms, 10) // "{count} apples"
//
// Category names work as keys too:
//
//	forms := plural.Forms{
//		"one":  "One apple",
//		"few":  "Few apples",
//		"many": "{count} apples",
//	}
//
//	plural.Pluralize(forms, 2) // "Few apples"
package plural
