// Package sanitizer provides small, stateless string-normalization helpers
// used by the validation rules and the signature serializer: whitespace
// handling, rune-safe truncation, and social-handle normalization.
//
// All helpers are pure functions over their input; none touch global state.
package sanitizer
