// Package verdict defines the tagged result type produced by every
// validation path in the signature editor: idle, loading, valid, warning or
// error, plus an optional human-readable message and, for images, the
// detected pixel dimensions.
//
// A verdict is an immutable value. Each input change produces a fresh
// verdict that supersedes the previous one; verdicts are never merged or
// mutated in place.
package verdict
