package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrInvalidArgument is the single validation error kind. Every sentinel below that
	// describes a rejected value wraps it.
	ErrInvalidArgument = zerr.New("invalid argument")

	// ErrFreshnessOutOfRange is returned when a flower's freshness is outside 0-100.
	ErrFreshnessOutOfRange = zerr.Wrap(ErrInvalidArgument, "freshness must be within 0-100")

	// ErrNonPositiveStemLength is returned when a flower's stem length is not positive.
	ErrNonPositiveStemLength = zerr.Wrap(ErrInvalidArgument, "stem length must be positive")

	// ErrNonPositivePrice is returned when a flower's price is not positive.
	ErrNonPositivePrice = zerr.Wrap(ErrInvalidArgument, "price must be positive")

	// ErrNonPositiveAccessoryPrice is returned when an accessory price is not positive.
	ErrNonPositiveAccessoryPrice = zerr.Wrap(ErrInvalidArgument, "accessory price must be positive")

	// ErrInvalidRange is returned when a stem length range has its minimum above its maximum.
	ErrInvalidRange = zerr.Wrap(ErrInvalidArgument, "minimum length cannot exceed maximum length")

	// ErrMalformedInput is returned when console input is not an integer.
	ErrMalformedInput = zerr.New("input is not an integer")

	// ErrMissingInput is returned when console input ends before a value was read.
	ErrMissingInput = zerr.New("input ended before a value was read")

	// ErrCatalogReadFailed is returned when the catalog file cannot be read.
	ErrCatalogReadFailed = zerr.New("failed to read catalog file")

	// ErrCatalogParseFailed is returned when the catalog file cannot be parsed.
	ErrCatalogParseFailed = zerr.New("failed to parse catalog file")

	// ErrUnsupportedCatalogVersion is returned when the catalog declares a version this build does not understand.
	ErrUnsupportedCatalogVersion = zerr.New("unsupported catalog version")

	// ErrUnknownFlowerKind is returned when a catalog entry names a kind other than rose, tulip or daisy.
	ErrUnknownFlowerKind = zerr.New("unknown flower kind, expected 'rose', 'tulip' or 'daisy'")

	// ErrUnsupportedLanguage is returned when no message catalog exists for the requested language.
	ErrUnsupportedLanguage = zerr.New("unsupported language, expected 'en' or 'uk'")

	// ErrIncompleteRange is returned when only one of the stem length bounds is given on the command line.
	ErrIncompleteRange = zerr.New("both --min and --max must be set to skip the prompt")
)

// reject attaches the offending value to a validation sentinel without losing its identity.
func reject(sentinel error, key string, value any) error {
	return zerr.With(zerr.Wrap(sentinel, ""), key, value)
}

// IsUserError reports whether err should be reported to the user as a plain message
// instead of failing the process: rejected values and unreadable console input.
func IsUserError(err error) bool {
	return errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrMalformedInput) ||
		errors.Is(err, ErrMissingInput)
}
