package imageprobe_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigforge/sigforge/pkg/imageprobe"
)

// pngBytes encodes a solid PNG of the given size.
func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProbeRemote(t *testing.T) {
	t.Parallel()

	t.Run("resolves png dimensions", func(t *testing.T) {
		payload := pngBytes(t, 120, 40)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(payload)
		}))
		defer srv.Close()

		fut := imageprobe.New().Probe(context.Background(), srv.URL+"/logo.png")
		dims, err := fut.Await()
		require.NoError(t, err)
		assert.Equal(t, imageprobe.Dimensions{Width: 120, Height: 40}, dims)
	})

	t.Run("resolves svg dimensions", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "image/svg+xml")
			_, _ = w.Write([]byte(`<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg" width="200px" height="60"></svg>`))
		}))
		defer srv.Close()

		dims, err := imageprobe.New().Probe(context.Background(), srv.URL).Await()
		require.NoError(t, err)
		assert.Equal(t, imageprobe.Dimensions{Width: 200, Height: 60}, dims)
	})

	t.Run("unreachable on http error status", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		_, err := imageprobe.New().Probe(context.Background(), srv.URL).Await()
		assert.ErrorIs(t, err, imageprobe.ErrUnreachable)
	})

	t.Run("unreachable on refused connection", func(t *testing.T) {
		_, err := imageprobe.New().Probe(context.Background(), "http://127.0.0.1:1/nope.png").Await()
		assert.ErrorIs(t, err, imageprobe.ErrUnreachable)
	})

	t.Run("malformed on garbage payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write([]byte("this is not an image"))
		}))
		defer srv.Close()

		_, err := imageprobe.New().Probe(context.Background(), srv.URL).Await()
		assert.ErrorIs(t, err, imageprobe.ErrMalformed)
	})

	t.Run("timeout on hung server", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer srv.Close()
		defer close(release)

		prober := imageprobe.New(imageprobe.WithTimeout(50 * time.Millisecond))
		start := time.Now()
		_, err := prober.Probe(context.Background(), srv.URL).Await()
		assert.ErrorIs(t, err, imageprobe.ErrTimeout)
		assert.Less(t, time.Since(start), 5*time.Second)
	})
}

func TestProbeDataURL(t *testing.T) {
	t.Parallel()

	t.Run("data url resolves synchronously", func(t *testing.T) {
		dataURL := imageprobe.EncodeDataURL("image/png", pngBytes(t, 16, 8))
		fut := imageprobe.New().Probe(context.Background(), dataURL)
		assert.True(t, fut.IsComplete(), "data url probe must not suspend")
		dims, err := fut.Await()
		require.NoError(t, err)
		assert.Equal(t, imageprobe.Dimensions{Width: 16, Height: 8}, dims)
	})

	t.Run("svg viewBox fallback", func(t *testing.T) {
		svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 400 60"></svg>`)
		dims, err := imageprobe.ProbeData(imageprobe.EncodeDataURL("image/svg+xml", svg))
		require.NoError(t, err)
		assert.Equal(t, imageprobe.Dimensions{Width: 400, Height: 60}, dims)
	})

	t.Run("svg without size is malformed", func(t *testing.T) {
		svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`)
		_, err := imageprobe.ProbeData(imageprobe.EncodeDataURL("image/svg+xml", svg))
		assert.ErrorIs(t, err, imageprobe.ErrMalformed)
	})

	t.Run("undecodable payload is malformed", func(t *testing.T) {
		_, err := imageprobe.ProbeData(imageprobe.EncodeDataURL("image/png", []byte("junk")))
		assert.ErrorIs(t, err, imageprobe.ErrMalformed)
	})
}

func TestParseDataURL(t *testing.T) {
	t.Parallel()

	t.Run("base64 roundtrip", func(t *testing.T) {
		payload := []byte{0x89, 0x50, 0x4e, 0x47}
		mime, data, err := imageprobe.ParseDataURL(imageprobe.EncodeDataURL("image/png", payload))
		require.NoError(t, err)
		assert.Equal(t, "image/png", mime)
		assert.Equal(t, payload, data)
	})

	t.Run("plain payload", func(t *testing.T) {
		mime, data, err := imageprobe.ParseDataURL("data:image/svg+xml,%3Csvg%3E")
		require.NoError(t, err)
		assert.Equal(t, "image/svg+xml", mime)
		assert.Equal(t, []byte("<svg>"), data)
	})

	t.Run("default mime type", func(t *testing.T) {
		mime, data, err := imageprobe.ParseDataURL("data:,hello")
		require.NoError(t, err)
		assert.Equal(t, "text/plain;charset=US-ASCII", mime)
		assert.Equal(t, []byte("hello"), data)
	})

	t.Run("rejects non data urls", func(t *testing.T) {
		_, _, err := imageprobe.ParseDataURL("https://example.com/logo.png")
		assert.ErrorIs(t, err, imageprobe.ErrInvalidDataURL)
	})

	t.Run("rejects missing comma", func(t *testing.T) {
		_, _, err := imageprobe.ParseDataURL("data:image/png;base64")
		assert.ErrorIs(t, err, imageprobe.ErrInvalidDataURL)
	})

	t.Run("rejects broken base64", func(t *testing.T) {
		_, _, err := imageprobe.ParseDataURL("data:image/png;base64,!!!!")
		assert.ErrorIs(t, err, imageprobe.ErrInvalidDataURL)
	})
}
