// Package locale provides locale and timezone negotiation helpers for HTTP
// request handling.
//
// The package normalizes locale identifiers into a canonical
// language[_REGION] form (lowercase language, uppercase region), parses
// Accept-Language headers with quality values, and negotiates the best
// match between ranked client preferences and the locales an application
// supports. Validation and matching delegate to golang.org/x/text/language,
// so only registered language and region codes are accepted.
//
// # Request access
//
// The request-facing helpers accept any value and probe it for small
// capability interfaces in a fixed priority order, so they work with plain
// *http.Request as well as framework request wrappers:
//
//	prefs := locale.PreferredLocales(r)              // ["en_GB", "en", "fr"]
//	tag, ok := locale.NegotiateRequest(r, []string{"en", "en_GB", "de"})
//	// tag == {Language: "en", Region: "GB"}, ok == true
//
// A wrapper that pre-parses its language header implements
// PreferenceLister or WeightedPreferenceLister; one that caches the
// resolved locale implements LocaleCarrier/LocaleSetter. Missing or
// malformed client data never causes an error: helpers skip what they
// cannot parse and report absence, leaving the fallback to the caller.
//
// # Middleware
//
// Detector bundles the resolution chain (query parameter, Accept-Language
// negotiation, defaults) into middleware that stores the result in the
// request context:
//
//	d := locale.NewDetector(
//		locale.WithSupportedLocales("en", "en_GB", "de"),
//		locale.WithDefaultTimezone(time.UTC),
//	)
//
//	handler := d.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//		tag := locale.LocaleFromContext(r.Context())
//		loc := locale.TimezoneFromContext(r.Context())
//		// ...
//	}))
//
// Detector settings can also be loaded from environment variables via
// LoadConfig and NewDetectorFromConfig.
package locale
