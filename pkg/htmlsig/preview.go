package htmlsig

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/sigforge/sigforge/pkg/sanitizer"
)

// Palette for the on-screen preview. The dark variant mirrors how the
// signature reads in a dark-mode mail client.
type palette struct {
	name  string
	muted string
}

var (
	lightPalette = palette{name: "#1f2937", muted: "#6b7280"}
	darkPalette  = palette{name: "#ffffff", muted: "#9ca3af"}
)

// Preview builds the live on-screen render: structurally parallel to Table
// (same conditional blocks, same fallbacks, same contact line) but div
// based, with a light or dark text palette. It is data-equivalent to
// Table, not byte-identical.
func Preview(sig Signature, dark bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pal := lightPalette
		if dark {
			pal = darkPalette
		}

		var b strings.Builder
		fmt.Fprintf(&b, `<div style="font-family: %s; font-size: 14px; line-height: 1.4;">`, fontStack)

		if sig.hasLogo() {
			writePreviewLogo(&b, sig)
		}

		fmt.Fprintf(&b, `<p style="margin: 0 0 4px 0; font-weight: 600; color: %s;">%s</p>`, pal.name, esc(sig.displayName()))

		titleMargin := "0"
		if sig.hasContact() {
			titleMargin = "8px"
		}
		fmt.Fprintf(&b, `<p style="margin: 0 0 %s 0; color: %s;">%s</p>`, titleMargin, pal.muted, esc(sig.displayTitle()))

		if sig.hasContact() {
			writeContactLine(&b, sig, pal.muted)
		}

		b.WriteString("</div>")

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writePreviewLogo(b *strings.Builder, sig Signature) {
	img := fmt.Sprintf(
		`<img src="%s" alt="%s Logo" style="display: block; height: %dpx; width: auto;" />`,
		esc(sig.LogoURL), esc(logoAlt(sig)), LogoDisplayHeight,
	)
	if sig.hasWebsite() {
		fmt.Fprintf(b,
			`<a href="%s" target="_blank" rel="noopener noreferrer" style="display: inline-block; margin-bottom: 12px;">%s</a>`,
			esc(sig.Website), img,
		)
		return
	}
	fmt.Fprintf(b, `<div style="margin-bottom: 12px;">%s</div>`, img)
}

// logoAlt is the alt text for the logo image.
func logoAlt(sig Signature) string {
	if company := sanitizer.Trim(sig.Company); company != "" {
		return company
	}
	return "Company"
}
