// Package errors provides common domain error types for meetscan.
//
// This package defines sentinel errors for the transcript-processing domain
// that can be used across all packages. Using typed errors enables
// consistent error handling patterns with errors.Is() checks.
//
// Usage:
//
//	import mserrors "github.com/meetscan/meetscan/pkg/errors"
//
//	// Return a domain error
//	return nil, mserrors.ErrEmptyTranscript
//
//	// Check for domain errors
//	if mserrors.IsEmptyTranscript(err) {
//	    // handle empty input case
//	}
package errors

import "errors"

// Domain errors - sentinel errors for transcript-processing conditions.
var (
	// ErrEmptyTranscript indicates the raw input was empty or whitespace-only.
	ErrEmptyTranscript = errors.New("transcript is empty")

	// ErrMalformedTranscript indicates no messages could be parsed from the input.
	ErrMalformedTranscript = errors.New("transcript is malformed or unrecognized")

	// ErrUnsupportedFormat indicates a file type that is not a transcript.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrEncoding indicates the file bytes could not be decoded as text.
	ErrEncoding = errors.New("unsupported file encoding")

	// ErrNoActionItems indicates a transcript yielded no action items.
	// The core treats this as a valid result; callers may surface it.
	ErrNoActionItems = errors.New("no action items detected")
)

// IsEmptyTranscript reports whether any error in err's chain is ErrEmptyTranscript.
func IsEmptyTranscript(err error) bool {
	return errors.Is(err, ErrEmptyTranscript)
}

// IsMalformedTranscript reports whether any error in err's chain is ErrMalformedTranscript.
func IsMalformedTranscript(err error) bool {
	return errors.Is(err, ErrMalformedTranscript)
}

// IsUnsupportedFormat reports whether any error in err's chain is ErrUnsupportedFormat.
func IsUnsupportedFormat(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat)
}

// IsEncoding reports whether any error in err's chain is ErrEncoding.
func IsEncoding(err error) bool {
	return errors.Is(err, ErrEncoding)
}

// IsNoActionItems reports whether any error in err's chain is ErrNoActionItems.
func IsNoActionItems(err error) bool {
	return errors.Is(err, ErrNoActionItems)
}
