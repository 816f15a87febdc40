package verdict

import "fmt"

// Status classifies the outcome of validating a field or a logo image.
// It is a closed set: every consumer is expected to switch over all five
// values.
type Status int

const (
	// StatusIdle means nothing has been validated yet, or the target was
	// cleared. No message is shown to the user.
	StatusIdle Status = iota
	// StatusLoading means an asynchronous check (image probe, file decode)
	// is in flight. Always transient: it must resolve to a terminal status
	// or be superseded by a newer verdict.
	StatusLoading
	// StatusValid means the target passed all checks.
	StatusValid
	// StatusWarning means the target is usable but suboptimal (oversized
	// logo). Warnings never block signature generation.
	StatusWarning
	// StatusError means the target failed validation and blocks generation.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusValid:
		return "valid"
	case StatusWarning:
		return "warning"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Terminal reports whether the status is a final outcome rather than a
// transitional one.
func (s Status) Terminal() bool {
	return s == StatusValid || s == StatusWarning || s == StatusError
}

// Verdict is the classified result of validating a single target. Verdicts
// are values: a new input produces a fresh verdict that replaces the previous
// one wholesale, never a merge.
type Verdict struct {
	Status  Status
	Message string

	// Width and Height carry the detected pixel dimensions for image
	// verdicts. Zero for everything else.
	Width  int
	Height int
}

// Idle is the zero verdict.
func Idle() Verdict {
	return Verdict{Status: StatusIdle}
}

// Loading returns a transient verdict with a progress message.
func Loading(message string) Verdict {
	return Verdict{Status: StatusLoading, Message: message}
}

// Valid returns a passing verdict.
func Valid(message string) Verdict {
	return Verdict{Status: StatusValid, Message: message}
}

// Warning returns a non-blocking cautionary verdict.
func Warning(message string) Verdict {
	return Verdict{Status: StatusWarning, Message: message}
}

// Error returns a blocking verdict.
func Error(message string) Verdict {
	return Verdict{Status: StatusError, Message: message}
}

// WithDimensions returns a copy of the verdict annotated with pixel
// dimensions.
func (v Verdict) WithDimensions(width, height int) Verdict {
	v.Width = width
	v.Height = height
	return v
}

// Blocking reports whether the verdict prevents the signature from being
// generated. Only errors block; warnings and transient states do not.
func (v Verdict) Blocking() bool {
	return v.Status == StatusError
}
