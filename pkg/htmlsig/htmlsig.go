package htmlsig

import (
	"html"
	"strings"
)

// Signature is the serializer's view of the form record. Every field is a
// plain string; empty means "not provided".
type Signature struct {
	Name    string
	Title   string
	Company string
	Phone   string
	Twitter string
	Website string
	LogoURL string
}

// Display constants shared by both renders.
const (
	// LogoDisplayHeight is the fixed render height of the logo, px.
	LogoDisplayHeight = 40

	// fontStack works without webfonts in every major mail client.
	fontStack = "-apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif"

	// contactSeparator sits between phone and handle when both are set.
	contactSeparator = " • "

	// Placeholder copy for the two required fields.
	namePlaceholder  = "Your Name"
	titlePlaceholder = "Your Title"
)

func (s Signature) hasLogo() bool    { return strings.TrimSpace(s.LogoURL) != "" }
func (s Signature) hasWebsite() bool { return strings.TrimSpace(s.Website) != "" }
func (s Signature) hasPhone() bool   { return strings.TrimSpace(s.Phone) != "" }
func (s Signature) hasTwitter() bool { return strings.TrimSpace(s.Twitter) != "" }
func (s Signature) hasContact() bool { return s.hasPhone() || s.hasTwitter() }

// displayName returns the name line with its placeholder fallback.
func (s Signature) displayName() string {
	if s.Name == "" {
		return namePlaceholder
	}
	return s.Name
}

// displayTitle returns the title line: "<title> at <company>" when a
// company is set, with a placeholder when the title is empty.
func (s Signature) displayTitle() string {
	title := s.Title
	if title == "" {
		title = titlePlaceholder
	}
	if s.Company != "" {
		return title + " at " + s.Company
	}
	return title
}

// esc escapes user-supplied text before it is embedded in markup. A no-op
// for ordinary names and titles, it keeps pasted input from injecting
// markup into the output.
func esc(s string) string {
	return html.EscapeString(s)
}
