package imageprobe

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// EncodeDataURL builds a base64 data URL from a MIME type and raw bytes.
// This is how uploaded and generated logos are carried in the signature
// record.
func EncodeDataURL(mimeType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// ParseDataURL splits a data URL into its MIME type and decoded payload.
func ParseDataURL(s string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, ErrInvalidDataURL
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrInvalidDataURL
	}

	mimeType := meta
	isBase64 := false
	if strings.HasSuffix(meta, ";base64") {
		isBase64 = true
		mimeType = strings.TrimSuffix(meta, ";base64")
	}
	if mimeType == "" {
		// RFC 2397 default.
		mimeType = "text/plain;charset=US-ASCII"
	}

	if isBase64 {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return "", nil, errors.Join(ErrInvalidDataURL, err)
		}
		return mimeType, data, nil
	}

	unescaped, err := url.PathUnescape(payload)
	if err != nil {
		return "", nil, errors.Join(ErrInvalidDataURL, err)
	}
	return mimeType, []byte(unescaped), nil
}
