package imageprobe

import "errors"

var (
	// ErrTimeout is returned when a remote probe does not complete within
	// the prober's timeout. Single attempt; the caller decides whether to
	// re-invoke.
	ErrTimeout = errors.New("image took too long to load")

	// ErrUnreachable covers network failures and non-200 responses.
	ErrUnreachable = errors.New("could not load image")

	// ErrMalformed is returned when the payload cannot be decoded as a
	// supported image format.
	ErrMalformed = errors.New("could not decode image")

	// ErrInvalidDataURL is returned for strings that do not follow the
	// data:[mediatype][;base64],payload grammar.
	ErrInvalidDataURL = errors.New("invalid data URL")
)
