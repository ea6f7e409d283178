package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrAPIKeyMissing indicates no API key is configured.
	// Detected before any network attempt.
	ErrAPIKeyMissing = errors.New("API key missing")

	// ErrEmptyInput indicates the submitted journal text is empty
	// or whitespace-only.
	ErrEmptyInput = errors.New("empty input")

	// ErrNoAnalysis indicates the analysis response carried no text body.
	ErrNoAnalysis = errors.New("no analysis generated")

	// ErrMalformedResponse indicates the analysis response body could
	// not be deserialised into the result schema.
	ErrMalformedResponse = errors.New("malformed analysis response")

	// ErrNoImage indicates no content part of the image response carried
	// inline image data.
	ErrNoImage = errors.New("no image generated")

	// ErrInvalidImageSize indicates a size tier outside {1K, 2K, 4K}.
	// Rejected at the call boundary before a network attempt.
	ErrInvalidImageSize = errors.New("invalid image size")

	// ErrNoCover indicates a cover export was attempted before a cover
	// image was generated.
	ErrNoCover = errors.New("no cover image generated")
)
