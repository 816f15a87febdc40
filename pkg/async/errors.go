package async

import "errors"

var (
	// ErrTimeout is returned by AwaitWithTimeout when the future does not
	// resolve in time.
	ErrTimeout = errors.New("async: operation timed out waiting for future completion")
)
