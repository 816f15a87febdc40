package sigforge

import "fmt"

// LogoSource describes where the record's logo URL came from. Exactly one
// source is active at a time; it is created as SourceNone at form init and
// only ever reassigned, never destroyed.
type LogoSource int

const (
	// SourceNone means no logo.
	SourceNone LogoSource = iota
	// SourcePreset means a built-in logo; switching to it immediately
	// replaces the logo URL with the preset's fixed URL.
	SourcePreset
	// SourceCustomURL means the user types a URL; edits are debounced and
	// probed.
	SourceCustomURL
	// SourceUpload means the logo is an uploaded file carried as a data
	// URL.
	SourceUpload
	// SourceGenerated means the logo was rasterized by the logo creator
	// and is trusted without re-probing.
	SourceGenerated
)

func (s LogoSource) String() string {
	switch s {
	case SourceNone:
		return "none"
	case SourcePreset:
		return "preset"
	case SourceCustomURL:
		return "customUrl"
	case SourceUpload:
		return "uploadedFile"
	case SourceGenerated:
		return "generated"
	default:
		return fmt.Sprintf("LogoSource(%d)", int(s))
	}
}
