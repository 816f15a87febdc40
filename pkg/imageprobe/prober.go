package imageprobe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	// Register the image formats a logo may arrive in. SVG is handled
	// separately since it has no raster decoder.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/sigforge/sigforge/pkg/async"
)

// Dimensions holds an image's intrinsic pixel size.
type Dimensions struct {
	Width  int
	Height int
}

// DefaultTimeout bounds a single remote probe. A URL that cannot produce
// its bytes in this window resolves to ErrTimeout and is abandoned.
const DefaultTimeout = 10 * time.Second

// maxProbeBytes caps how much of a remote body is read. Dimension decoding
// only needs the header, but SVG scanning may need the full document.
const maxProbeBytes = 10 << 20

// Prober determines the pixel dimensions of remote or in-memory images.
// The zero value is not usable; construct with New.
type Prober struct {
	client  *http.Client
	timeout time.Duration
	log     *slog.Logger
}

// Option configures a Prober.
type Option func(*Prober)

// WithClient sets the HTTP client used for remote probes.
func WithClient(c *http.Client) Option {
	return func(p *Prober) {
		if c != nil {
			p.client = c
		}
	}
}

// WithTimeout overrides the probe timeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(p *Prober) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithLogger sets the logger for probe diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(p *Prober) {
		if l != nil {
			p.log = l
		}
	}
}

// New creates a Prober with the default client and timeout.
func New(opts ...Option) *Prober {
	p := &Prober{
		client:  http.DefaultClient,
		timeout: DefaultTimeout,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Timeout returns the configured probe timeout.
func (p *Prober) Timeout() time.Duration {
	return p.timeout
}

// Probe starts an asynchronous dimension probe for the given URL and
// returns a future for its result. Data URLs resolve synchronously without
// any network traffic. Exactly one attempt is made per call.
func (p *Prober) Probe(ctx context.Context, rawURL string) *async.Future[Dimensions] {
	if strings.HasPrefix(rawURL, "data:") {
		return async.Resolved(ProbeData(rawURL))
	}
	return async.Go(ctx, rawURL, p.fetch)
}

func (p *Prober) fetch(ctx context.Context, rawURL string) (Dimensions, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Dimensions{}, errors.Join(ErrUnreachable, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			p.log.DebugContext(ctx, "image probe timed out", slog.String("url", rawURL))
			return Dimensions{}, ErrTimeout
		}
		return Dimensions{}, errors.Join(ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Dimensions{}, fmt.Errorf("%w: unexpected status %d", ErrUnreachable, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxProbeBytes))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return Dimensions{}, ErrTimeout
		}
		return Dimensions{}, errors.Join(ErrUnreachable, err)
	}

	dims, err := Decode(resp.Header.Get("Content-Type"), data)
	if err != nil {
		return Dimensions{}, err
	}

	p.log.DebugContext(ctx, "image probed",
		slog.String("url", rawURL),
		slog.Int("width", dims.Width),
		slog.Int("height", dims.Height),
	)
	return dims, nil
}

// Decode determines the intrinsic dimensions of an in-memory image payload.
// SVG documents are scanned for their declared size; raster formats go
// through the registered image decoders.
func Decode(contentType string, data []byte) (Dimensions, error) {
	if isSVG(contentType, data) {
		return svgDimensions(data)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Dimensions{}, errors.Join(ErrMalformed, err)
	}
	return Dimensions{Width: cfg.Width, Height: cfg.Height}, nil
}

// ProbeData decodes the dimensions of a data-URL payload synchronously.
func ProbeData(dataURL string) (Dimensions, error) {
	mimeType, data, err := ParseDataURL(dataURL)
	if err != nil {
		return Dimensions{}, err
	}
	return Decode(mimeType, data)
}
