package logomaker

import (
	"errors"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/sigforge/sigforge/pkg/imageprobe"
	"github.com/sigforge/sigforge/pkg/sanitizer"
)

// Errors for QR badge generation.
var (
	// ErrEmptyContent is returned when the QR content is empty or only
	// whitespace.
	ErrEmptyContent = errors.New("qr content cannot be empty")

	// ErrQRFailed is returned when QR encoding fails.
	ErrQRFailed = errors.New("failed to generate QR code")
)

// defaultQRSize is the pixel size used when none is given.
const defaultQRSize = 240

// QR renders a square QR badge for the given content, typically the
// website URL, as raw PNG bytes.
func QR(content string, size int) ([]byte, error) {
	if sanitizer.Trim(content) == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = defaultQRSize
	}
	data, err := qrcode.Encode(strings.TrimSpace(content), qrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrQRFailed, err)
	}
	return data, nil
}

// QRDataURL renders a QR badge and exports it under the same PNG-data-URL
// contract as DataURL, so it can be used directly as a generated logo.
func QRDataURL(content string, size int) (string, error) {
	data, err := QR(content, size)
	if err != nil {
		return "", err
	}
	return imageprobe.EncodeDataURL("image/png", data), nil
}
