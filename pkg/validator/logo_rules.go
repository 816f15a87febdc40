package validator

import (
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/sigforge/sigforge/pkg/sanitizer"
	"github.com/sigforge/sigforge/pkg/verdict"
)

// Logo image constraints. Signatures render the logo at a 40px display
// height, so anything much larger than the recommended box is wasted bytes
// in every email sent.
const (
	MaxLogoHeight = 80  // recommended max, px
	MaxLogoWidth  = 300 // recommended max, px

	// 3x the recommended box. Beyond this the image is flagged as heavy.
	MaxLogoHeightWarn = 240
	MaxLogoWidthWarn  = 900

	// MaxLogoFileSize is the upload cap in bytes.
	MaxLogoFileSize = 500 * 1024
)

// allowedLogoMIMETypes is the upload allow-list. Keys are canonical MIME
// types as reported by the browser or http.DetectContentType.
var allowedLogoMIMETypes = map[string]bool{
	"image/png":     true,
	"image/jpeg":    true,
	"image/jpg":     true,
	"image/svg+xml": true,
	"image/gif":     true,
	"image/webp":    true,
}

// LogoImage classifies probed image metrics. Rules are ordered and the
// first match wins: oversize file, then hard-warn dimensions, then
// recommended-max dimensions, then valid. fileSize <= 0 skips the size rule
// (URL probes do not know the byte size).
func LogoImage(width, height int, fileSize int64) verdict.Verdict {
	if fileSize > MaxLogoFileSize {
		return verdict.Error(fmt.Sprintf(
			"File is too large (%dKB). Maximum size is %dKB.",
			kilobytes(fileSize), MaxLogoFileSize/1024,
		))
	}

	if height > MaxLogoHeightWarn || width > MaxLogoWidthWarn {
		return verdict.Warning(fmt.Sprintf(
			"Image is %dx%dpx - quite large for email. It will be scaled down to 40px height.",
			width, height,
		)).WithDimensions(width, height)
	}

	if height > MaxLogoHeight || width > MaxLogoWidth {
		return verdict.Warning(fmt.Sprintf(
			"Image is %dx%dpx. Recommended: max %dx%dpx for best results.",
			width, height, MaxLogoWidth, MaxLogoHeight,
		)).WithDimensions(width, height)
	}

	return verdict.Valid(fmt.Sprintf("Image loaded (%dx%dpx)", width, height)).
		WithDimensions(width, height)
}

// LogoURL classifies a raw logo-URL string. The returned bool reports
// whether the caller still needs to probe the image for its dimensions:
// true only for a syntactically acceptable remote http(s) URL. Data URLs
// short-circuit to valid since their content was validated when created.
func LogoURL(raw string) (verdict.Verdict, bool) {
	if sanitizer.Trim(raw) == "" {
		return verdict.Idle(), false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return verdict.Error("Please enter a valid URL"), false
	}
	switch u.Scheme {
	case "http", "https", "data":
	default:
		return verdict.Error("URL must use http, https, or be a data URL"), false
	}

	if strings.HasPrefix(raw, "data:") {
		return verdict.Valid("Logo ready"), false
	}

	if len(raw) > MaxURLLen {
		return verdict.Error("URL is too long"), false
	}

	return verdict.Loading("Checking image..."), true
}

// UploadFile gate-checks an upload before its bytes are decoded. The
// returned bool reports whether decoding may proceed; when false the
// verdict is a terminal error.
func UploadFile(mimeType string, size int64) (verdict.Verdict, bool) {
	if !allowedLogoMIMETypes[strings.ToLower(mimeType)] {
		return verdict.Error("Please upload an image file (PNG, JPG, SVG, GIF, or WebP)"), false
	}

	if size > MaxLogoFileSize {
		return verdict.Error(fmt.Sprintf(
			"File is too large (%dKB). Maximum size is %dKB.",
			kilobytes(size), MaxLogoFileSize/1024,
		)), false
	}

	return verdict.Loading("Processing image..."), true
}

// kilobytes rounds to the nearest whole KB for user-facing messages.
func kilobytes(size int64) int {
	return int(math.Round(float64(size) / 1024))
}
