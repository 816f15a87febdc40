package htmlsig

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/sigforge/sigforge/pkg/sanitizer"
)

// Table builds the copy-to-clipboard payload: a single self-contained
// table with inline styles only, since target mail clients strip <style>
// blocks and class attributes. The output is deterministic: identical
// input yields byte-identical markup.
func Table(sig Signature) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		fmt.Fprintf(&b, `<table cellpadding="0" cellspacing="0" border="0" style="font-family: %s; font-size: 14px; line-height: 1.4; color: #374151;">`, fontStack)
		b.WriteString("\n")

		if sig.hasLogo() {
			writeLogoRow(&b, sig)
		}

		b.WriteString("  <tr>\n    <td>\n")
		fmt.Fprintf(&b, `      <p style="margin: 0 0 4px 0; font-weight: 600; color: #1f2937;">%s</p>`, esc(sig.displayName()))
		b.WriteString("\n")

		titleMargin := "0"
		if sig.hasContact() {
			titleMargin = "8px"
		}
		fmt.Fprintf(&b, `      <p style="margin: 0 0 %s 0; color: #6b7280;">%s</p>`, titleMargin, esc(sig.displayTitle()))
		b.WriteString("\n")

		if sig.hasContact() {
			b.WriteString("      ")
			writeContactLine(&b, sig, "#6b7280")
			b.WriteString("\n")
		}

		b.WriteString("    </td>\n  </tr>\n</table>")

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// writeLogoRow emits the leading logo row; when a website is set the image
// is wrapped in a link opened in a new context with no-opener/no-referrer
// semantics.
func writeLogoRow(b *strings.Builder, sig Signature) {
	b.WriteString("  <tr>\n    <td style=\"padding-bottom: 12px;\">\n")
	if sig.hasWebsite() {
		fmt.Fprintf(b, `      <a href="%s" target="_blank" rel="noopener noreferrer" style="text-decoration: none;">`, esc(sig.Website))
		b.WriteString("\n  ")
	}
	fmt.Fprintf(b,
		`      <img src="%s" alt="%s Logo" height="%d" style="display: block; height: %dpx; width: auto;" />`,
		esc(sig.LogoURL), esc(logoAlt(sig)), LogoDisplayHeight, LogoDisplayHeight,
	)
	b.WriteString("\n")
	if sig.hasWebsite() {
		b.WriteString("      </a>\n")
	}
	b.WriteString("    </td>\n  </tr>\n")
}

// writeContactLine emits the phone/twitter paragraph. The separator glyph
// appears only when both parts are present; the handle is normalized to a
// leading "@" and linked to its x.com profile.
func writeContactLine(b *strings.Builder, sig Signature, mutedColor string) {
	fmt.Fprintf(b, `<p style="margin: 0; color: %s;">`, mutedColor)
	if sig.hasPhone() {
		b.WriteString(esc(sig.Phone))
	}
	if sig.hasPhone() && sig.hasTwitter() {
		b.WriteString(contactSeparator)
	}
	if sig.hasTwitter() {
		handle := sanitizer.ToHandle(sig.Twitter)
		fmt.Fprintf(b,
			`<a href="%s" style="color: %s; text-decoration: none;">%s</a>`,
			esc(HandleURL(sig.Twitter)), mutedColor, esc(handle),
		)
	}
	b.WriteString("</p>")
}

// HandleURL returns the x.com profile URL for a Twitter/X handle, with or
// without its leading "@".
func HandleURL(handle string) string {
	return "https://x.com/" + sanitizer.HandleName(handle)
}
