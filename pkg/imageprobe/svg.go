package imageprobe

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// isSVG sniffs whether a payload is an SVG document, either from the
// declared content type or from the document itself.
func isSVG(contentType string, data []byte) bool {
	if strings.Contains(strings.ToLower(contentType), "svg") {
		return true
	}
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return bytes.Contains(head, []byte("<svg"))
}

// svgDimensions reads the intrinsic size of an SVG document: width/height
// attributes when present, the viewBox otherwise.
func svgDimensions(data []byte) (Dimensions, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			return Dimensions{}, errors.Join(ErrMalformed, err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if se.Name.Local != "svg" {
			return Dimensions{}, fmt.Errorf("%w: root element is %q, not svg", ErrMalformed, se.Name.Local)
		}

		var width, height float64
		var viewBox string
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "width":
				width = parseSVGLength(attr.Value)
			case "height":
				height = parseSVGLength(attr.Value)
			case "viewBox":
				viewBox = attr.Value
			}
		}

		if width > 0 && height > 0 {
			return Dimensions{Width: round(width), Height: round(height)}, nil
		}
		if parts := strings.Fields(viewBox); len(parts) == 4 {
			w, errW := strconv.ParseFloat(parts[2], 64)
			h, errH := strconv.ParseFloat(parts[3], 64)
			if errW == nil && errH == nil && w > 0 && h > 0 {
				return Dimensions{Width: round(w), Height: round(h)}, nil
			}
		}
		return Dimensions{}, fmt.Errorf("%w: svg declares no intrinsic size", ErrMalformed)
	}
}

// parseSVGLength parses a length attribute, tolerating a px suffix.
// Percentages and other units yield 0, which means "no usable size".
func parseSVGLength(s string) float64 {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func round(v float64) int {
	return int(math.Round(v))
}
