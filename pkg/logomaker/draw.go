package logomaker

import (
	"bytes"
	"errors"
	"image"
	"image/draw"
	"image/png"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/sigforge/sigforge/pkg/imageprobe"
	"github.com/sigforge/sigforge/pkg/sanitizer"
)

var parseFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(gobold.TTF)
})

// Render draws the badge described by opts and returns it cropped to its
// content width: always CanvasHeight tall, CanvasHeight wide for circles,
// otherwise measured text width plus padding capped at CanvasWidth.
func Render(opts Options) (image.Image, error) {
	text := sanitizer.Truncate(sanitizer.Trim(opts.Text), MaxTextLength)
	if text == "" {
		text = DefaultText
	}

	background, foreground := opts.Color.Background, opts.Color.Foreground
	if opts.CustomBackground != "" {
		background = opts.CustomBackground
		foreground = ContrastForeground(opts.CustomBackground)
	}
	if background == "" {
		background = PresetColors[0].Background
		foreground = PresetColors[0].Foreground
	}
	bg, err := parseHexColor(background)
	if err != nil {
		return nil, err
	}
	fg, err := parseHexColor(foreground)
	if err != nil {
		return nil, err
	}

	size := fontSize(opts.Shape, text)
	face, err := newFace(size)
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}
	defer face.Close()

	if opts.Shape == Circle {
		text = strings.ToUpper(sanitizer.Truncate(text, 3))
	}

	textWidth := font.MeasureString(face, text).Ceil()
	width := CanvasHeight
	if opts.Shape != Circle {
		width = min(CanvasWidth, textWidth+textPadding)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, CanvasHeight))
	fillShape(dst, opts.Shape, width, image.NewUniform(bg))

	// Center the text; the baseline sits slightly below the geometric
	// middle, matching optical centering for a bold face.
	metrics := face.Metrics()
	dot := fixed.Point26_6{
		X: fixed.I((width - textWidth) / 2),
		Y: (fixed.I(CanvasHeight) + metrics.Ascent - metrics.Descent) / 2,
	}
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  dot,
	}
	drawer.DrawString(text)

	return dst, nil
}

// DataURL renders the badge and exports it as a PNG data URL, the format
// the signature record carries for generated logos.
func DataURL(opts Options) (string, error) {
	img, err := Render(opts)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", errors.Join(ErrRenderFailed, err)
	}
	return imageprobe.EncodeDataURL("image/png", buf.Bytes()), nil
}

// fontSize shrinks the face as text grows: clamp(16, 32-0.5*len, 28).
// Circles always use a fixed size since they show at most three characters.
func fontSize(shape Shape, text string) float64 {
	if shape == Circle {
		return circleFontSize
	}
	size := 32 - 0.5*float64(len(text))
	if size < 16 {
		return 16
	}
	if size > 28 {
		return 28
	}
	return size
}

func newFace(size float64) (font.Face, error) {
	f, err := parseFont()
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// fillShape paints the badge background onto dst.
func fillShape(dst *image.RGBA, shape Shape, width int, src image.Image) {
	switch shape {
	case Square:
		draw.Draw(dst, dst.Bounds(), src, image.Point{}, draw.Src)
	case Circle:
		r := vector.NewRasterizer(width, CanvasHeight)
		circlePath(r, float32(CanvasHeight)/2, float32(CanvasHeight)/2, float32(CanvasHeight)/2-2)
		r.Draw(dst, dst.Bounds(), src, image.Point{})
	default:
		r := vector.NewRasterizer(width, CanvasHeight)
		roundRectPath(r, float32(width), CanvasHeight, cornerRadius)
		r.Draw(dst, dst.Bounds(), src, image.Point{})
	}
}

// roundRectPath traces a rounded rectangle with quadratic corner segments.
func roundRectPath(r *vector.Rasterizer, w, h, rad float32) {
	r.MoveTo(rad, 0)
	r.LineTo(w-rad, 0)
	r.QuadTo(w, 0, w, rad)
	r.LineTo(w, h-rad)
	r.QuadTo(w, h, w-rad, h)
	r.LineTo(rad, h)
	r.QuadTo(0, h, 0, h-rad)
	r.LineTo(0, rad)
	r.QuadTo(0, 0, rad, 0)
	r.ClosePath()
}

// circlePath approximates a circle with four cubic segments.
func circlePath(r *vector.Rasterizer, cx, cy, rad float32) {
	const k = 0.5522848 // 4*(sqrt(2)-1)/3
	kr := k * rad
	r.MoveTo(cx+rad, cy)
	r.CubeTo(cx+rad, cy+kr, cx+kr, cy+rad, cx, cy+rad)
	r.CubeTo(cx-kr, cy+rad, cx-rad, cy+kr, cx-rad, cy)
	r.CubeTo(cx-rad, cy-kr, cx-kr, cy-rad, cx, cy-rad)
	r.CubeTo(cx+kr, cy-rad, cx+rad, cy-kr, cx+rad, cy)
	r.ClosePath()
}
