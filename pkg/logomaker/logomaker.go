package logomaker

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
)

// Canvas geometry, in pixels. The rendered badge is always CanvasHeight
// tall; its width is the measured text width plus padding, capped at
// CanvasWidth. The circle shape is a fixed CanvasHeight square.
const (
	CanvasWidth  = 400
	CanvasHeight = 60

	// MaxTextLength caps badge text; longer input is truncated.
	MaxTextLength = 30

	cornerRadius = 12
	textPadding  = 32
	circleFontSize = 24
)

// DefaultText is rendered when no text is provided.
const DefaultText = "Company"

// Foreground colors picked by background luminance.
const (
	darkForeground  = "#1f2937"
	lightForeground = "#ffffff"
)

// Shape selects the badge outline.
type Shape int

const (
	// Pill is a rounded rectangle with 12px corner radius.
	Pill Shape = iota
	// Circle is a fixed 60x60 disc showing at most the first three
	// characters of the text, uppercased.
	Circle
	// Square is an unrounded rectangle.
	Square
)

func (s Shape) String() string {
	switch s {
	case Pill:
		return "pill"
	case Circle:
		return "circle"
	case Square:
		return "square"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// ColorPair is a background/foreground combination. Hex strings in
// "#rrggbb" form.
type ColorPair struct {
	Name       string
	Background string
	Foreground string
}

// PresetColors are the built-in badge palettes.
var PresetColors = []ColorPair{
	{Name: "Coral", Background: "#f97316", Foreground: "#ffffff"},
	{Name: "Teal", Background: "#14b8a6", Foreground: "#ffffff"},
	{Name: "Indigo", Background: "#6366f1", Foreground: "#ffffff"},
	{Name: "Rose", Background: "#f43f5e", Foreground: "#ffffff"},
	{Name: "Amber", Background: "#f59e0b", Foreground: "#1f2937"},
	{Name: "Emerald", Background: "#10b981", Foreground: "#ffffff"},
	{Name: "Slate", Background: "#475569", Foreground: "#ffffff"},
	{Name: "Black", Background: "#1f2937", Foreground: "#ffffff"},
}

// Options describes a badge to render. Zero value renders the default text
// in the first preset palette as a pill.
type Options struct {
	Text  string
	Shape Shape

	// Color selects a preset palette. Ignored when CustomBackground is
	// set.
	Color ColorPair

	// CustomBackground, when non-empty, overrides Color. The foreground
	// is then chosen by the background's relative luminance.
	CustomBackground string
}

var (
	// ErrInvalidColor is returned for background strings that are not
	// 6-hex-digit colors.
	ErrInvalidColor = errors.New("invalid hex color")

	// ErrRenderFailed wraps font or encoding failures during badge
	// rendering.
	ErrRenderFailed = errors.New("failed to render logo")
)

// ContrastForeground returns the foreground hex color for the given
// background: dark text on light backgrounds, light text on dark ones,
// using the Rec. 601 luma weights. Unparsable input gets the light
// foreground.
func ContrastForeground(hexColor string) string {
	c, err := parseHexColor(hexColor)
	if err != nil {
		return lightForeground
	}
	luminance := (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
	if luminance > 0.5 {
		return darkForeground
	}
	return lightForeground
}

// parseHexColor decodes a "#rrggbb" string.
func parseHexColor(s string) (color.NRGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
