package locale

import "errors"

var (
	// ErrUnknownLocale is returned when a locale string is malformed or does
	// not name a registered language/region pair.
	ErrUnknownLocale = errors.New("unknown locale")

	// ErrUnknownTimezone is returned when a timezone name cannot be resolved
	// against the tzdata database.
	ErrUnknownTimezone = errors.New("unknown timezone")

	// ErrParsingConfig is returned when environment variables cannot be
	// parsed into the Config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrInvalidConfig is returned when a parsed Config carries values that
	// cannot be resolved into a working Detector.
	ErrInvalidConfig = errors.New("invalid detector configuration")
)
