// Package validator implements the pure validation rules of the signature
// editor: per-field text rules and the logo acceptance rules (image metrics,
// URL syntax, upload gate).
//
// # Architecture
//
// The core is a tiny rule combinator: a Rule pairs a Check closure with the
// ValidationError reported when the check fails. Apply runs every rule and
// collects all failures; First runs rules in order and stops at the first
// failure, which is what the form fields use so each field surfaces exactly
// one message at a time.
//
// Field rules operate on the raw stored value. Trimming happens inside the
// rules, never at write time, so the record always holds what the user
// typed.
//
// Logo rules return verdict.Verdict values instead of errors because their
// outcome space is richer than pass/fail: idle, loading, valid, warning and
// error all surface differently in the editor.
//
// Everything in this package is stateless and deterministic given its
// inputs.
package validator
