package sigforge

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/sigforge/sigforge/pkg/async"
	"github.com/sigforge/sigforge/pkg/htmlsig"
	"github.com/sigforge/sigforge/pkg/imageprobe"
	"github.com/sigforge/sigforge/pkg/logger"
	"github.com/sigforge/sigforge/pkg/validator"
	"github.com/sigforge/sigforge/pkg/verdict"
)

// DebounceDelay is how long logo-URL edits must stay quiescent before a
// probe starts, so rapid typing does not flood the network.
const DebounceDelay = 500 * time.Millisecond

// Prober starts asynchronous image-dimension probes. Satisfied by
// *imageprobe.Prober.
type Prober interface {
	Probe(ctx context.Context, rawURL string) *async.Future[imageprobe.Dimensions]
}

// Clipboard writes text to the system clipboard. Supplied by the UI shell.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Snapshot is an immutable view of the editor state handed to change
// subscribers.
type Snapshot struct {
	Data        SignatureData
	Source      LogoSource
	LogoVerdict verdict.Verdict
	Valid       bool
}

// Controller owns the signature record and all of its bookkeeping: the
// active logo source, the touched set, and the logo verdict. All mutation
// goes through its methods; there is no ambient mutable state.
type Controller struct {
	mu          sync.Mutex
	data        SignatureData
	source      LogoSource
	presetID    string
	touched     map[Field]struct{}
	logoVerdict verdict.Verdict

	// probeGen tags each probe start; a resolution whose generation no
	// longer matches is stale and discarded (last call wins).
	probeGen uint64
	debounce *time.Timer
	delay    time.Duration

	prober   Prober
	log      *slog.Logger
	onChange func(Snapshot)
}

// Option configures a Controller.
type Option func(*Controller)

// WithProber replaces the default image prober.
func WithProber(p Prober) Option {
	return func(c *Controller) {
		if p != nil {
			c.prober = p
		}
	}
}

// WithLogger sets the logger for probe and clipboard diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithDebounceDelay overrides the probe debounce, mainly for tests.
func WithDebounceDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.delay = d
		}
	}
}

// OnChange registers a callback invoked after every state change. The
// callback runs on the mutating goroutine and must not call back into the
// controller.
func OnChange(fn func(Snapshot)) Option {
	return func(c *Controller) { c.onChange = fn }
}

// New creates a Controller with an empty record and an idle logo verdict.
func New(opts ...Option) *Controller {
	c := &Controller{
		source:      SourceNone,
		touched:     make(map[Field]struct{}),
		logoVerdict: verdict.Idle(),
		delay:       DebounceDelay,
		prober:      imageprobe.New(),
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Data returns a copy of the current record.
func (c *Controller) Data() SignatureData {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data
}

// Source returns the active logo source and, for presets, its id.
func (c *Controller) Source() (LogoSource, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.source, c.presetID
}

// LogoVerdict returns the current logo verdict.
func (c *Controller) LogoVerdict() verdict.Verdict {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.logoVerdict
}

// SetField stores a field value verbatim and re-derives validity. Editing
// the logo URL while the custom-URL source is active (re)starts the
// debounced probe.
func (c *Controller) SetField(f Field, value string) {
	c.mu.Lock()
	c.data.set(f, value)
	if f == FieldLogoURL && c.source == SourceCustomURL {
		c.scheduleProbeLocked()
	}
	c.mu.Unlock()
	c.notify()
}

// ClearField resets a field to empty. Clearing the logo URL also resets
// the logo verdict to idle and orphans any in-flight probe.
func (c *Controller) ClearField(f Field) {
	c.mu.Lock()
	c.data.set(f, "")
	if f == FieldLogoURL {
		c.resetLogoLocked()
	}
	c.mu.Unlock()
	c.notify()
}

// Touch marks a field as having lost focus at least once. The touched set
// only grows; it gates error display, never the underlying validation.
func (c *Controller) Touch(f Field) {
	c.mu.Lock()
	c.touched[f] = struct{}{}
	c.mu.Unlock()
	c.notify()
}

// Touched reports whether the field has been touched this session.
func (c *Controller) Touched(f Field) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.touched[f]
	return ok
}

// FieldError validates the field eagerly, regardless of touched state.
func (c *Controller) FieldError(f Field) error {
	c.mu.Lock()
	value := c.data.Get(f)
	c.mu.Unlock()
	return validator.Field(string(f), value)
}

// VisibleFieldError returns the field's error only once the field has been
// touched, so a fresh form does not flash errors before the user ever got
// to the field.
func (c *Controller) VisibleFieldError(f Field) error {
	if !c.Touched(f) {
		return nil
	}
	return c.FieldError(f)
}

// SelectLogoSource switches the active logo source. Selecting a preset
// immediately replaces the logo URL with the preset's URL (empty for
// "none") and resets the verdict; selecting custom-URL, upload or
// generated only changes which validation path subsequent changes follow.
func (c *Controller) SelectLogoSource(src LogoSource, presetID string) {
	c.mu.Lock()
	c.source = src
	c.presetID = ""
	switch src {
	case SourceNone:
		c.data.LogoURL = ""
		c.resetLogoLocked()
	case SourcePreset:
		if preset, ok := PresetByID(presetID); ok {
			c.presetID = preset.ID
			c.data.LogoURL = preset.URL
		} else {
			c.data.LogoURL = ""
		}
		c.resetLogoLocked()
	case SourceCustomURL:
		// Re-evaluate whatever URL is already in the record.
		c.scheduleProbeLocked()
	case SourceUpload, SourceGenerated:
		// Only the validation path changes; the current verdict stands
		// until new content arrives.
	}
	c.mu.Unlock()
	c.notify()
}

// UploadLogo accepts an uploaded file's declared MIME type and bytes. On
// acceptance the file becomes the active logo as a data URL; rejection
// surfaces as an error verdict without touching the record.
func (c *Controller) UploadLogo(mimeType string, data []byte) {
	size := int64(len(data))
	v, ok := validator.UploadFile(mimeType, size)

	c.mu.Lock()
	c.stopDebounceLocked()
	c.probeGen++
	c.logoVerdict = v
	c.mu.Unlock()
	c.notify()

	if !ok {
		return
	}

	dataURL := imageprobe.EncodeDataURL(mimeType, data)
	dims, err := imageprobe.ProbeData(dataURL)

	c.mu.Lock()
	if err != nil {
		c.logoVerdict = verdict.Error("Could not process the image. Try a different file.")
		c.mu.Unlock()
		c.log.Warn("uploaded logo failed to decode", logger.Error(err))
		c.notify()
		return
	}
	c.logoVerdict = validator.LogoImage(dims.Width, dims.Height, size)
	c.source = SourceUpload
	c.presetID = ""
	c.data.LogoURL = dataURL
	c.mu.Unlock()
	c.notify()
}

// GeneratedLogo installs a rasterized logo. Generated logos are trusted:
// the verdict goes straight to valid and no probe is started.
func (c *Controller) GeneratedLogo(dataURL string) {
	c.mu.Lock()
	c.stopDebounceLocked()
	c.probeGen++
	c.source = SourceGenerated
	c.presetID = ""
	c.data.LogoURL = dataURL
	c.logoVerdict = verdict.Valid("Logo created successfully!")
	c.mu.Unlock()
	c.notify()
}

// IsValid reports overall form validity: the required fields carry no
// error and the logo verdict is not blocking. Warnings and in-flight
// probes do not block.
func (c *Controller) IsValid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isValidLocked()
}

func (c *Controller) isValidLocked() bool {
	return validator.Name(c.data.Name) == nil &&
		validator.Title(c.data.Title) == nil &&
		!c.logoVerdict.Blocking()
}

// Snapshot returns a consistent view of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Data:        c.data,
		Source:      c.source,
		LogoVerdict: c.logoVerdict,
		Valid:       c.isValidLocked(),
	}
}

// CopyHTML renders the copy payload and writes it to the clipboard. A nil
// clipboard just returns the markup. Clipboard failure is logged and
// returned; the editor state is unchanged either way.
func (c *Controller) CopyHTML(ctx context.Context, clip Clipboard) (string, error) {
	markup, err := htmlsig.Render(ctx, htmlsig.Table(htmlsig.Signature(c.Data())))
	if err != nil {
		c.log.ErrorContext(ctx, "failed to render signature", logger.Error(err))
		return "", err
	}
	if clip == nil {
		return markup, nil
	}
	if err := clip.WriteText(ctx, markup); err != nil {
		c.log.ErrorContext(ctx, "failed to copy signature to clipboard", logger.Error(err))
		return "", err
	}
	return markup, nil
}

// PreviewHTML renders the live preview in the given color mode.
func (c *Controller) PreviewHTML(ctx context.Context, dark bool) (string, error) {
	return htmlsig.Render(ctx, htmlsig.Preview(htmlsig.Signature(c.Data()), dark))
}

// Close stops the pending debounce timer and orphans in-flight probes.
// The controller remains usable; Close exists so tests and shells can shut
// down cleanly.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopDebounceLocked()
	c.probeGen++
}

// scheduleProbeLocked (re)arms the debounce timer for the current logo
// URL. Caller holds mu.
func (c *Controller) scheduleProbeLocked() {
	c.stopDebounceLocked()
	raw := c.data.LogoURL
	c.debounce = time.AfterFunc(c.delay, func() { c.evaluateLogoURL(raw) })
}

func (c *Controller) stopDebounceLocked() {
	if c.debounce != nil {
		c.debounce.Stop()
		c.debounce = nil
	}
}

// resetLogoLocked returns the logo slot to idle and invalidates any probe
// still in flight. Caller holds mu.
func (c *Controller) resetLogoLocked() {
	c.stopDebounceLocked()
	c.probeGen++
	c.logoVerdict = verdict.Idle()
}

// evaluateLogoURL runs after the debounce window. It classifies the URL
// and, when needed, starts the asynchronous dimension probe.
func (c *Controller) evaluateLogoURL(raw string) {
	c.mu.Lock()
	if c.source != SourceCustomURL || c.data.LogoURL != raw {
		// Superseded while the timer was pending.
		c.mu.Unlock()
		return
	}
	v, needProbe := validator.LogoURL(raw)
	c.probeGen++
	gen := c.probeGen
	c.logoVerdict = v
	prober := c.prober
	c.mu.Unlock()
	c.notify()

	if !needProbe {
		return
	}

	fut := prober.Probe(context.Background(), raw)
	go func() {
		dims, err := fut.Await()
		c.resolveProbe(gen, raw, dims, err)
	}()
}

// resolveProbe applies a probe result unless a newer probe has been
// started since; stale results are discarded so the visible verdict always
// belongs to the most recently started probe.
func (c *Controller) resolveProbe(gen uint64, raw string, dims imageprobe.Dimensions, err error) {
	c.mu.Lock()
	if gen != c.probeGen {
		c.mu.Unlock()
		return
	}
	switch {
	case err == nil:
		c.logoVerdict = validator.LogoImage(dims.Width, dims.Height, 0)
	case errors.Is(err, imageprobe.ErrTimeout):
		c.logoVerdict = verdict.Error("Image took too long to load. Try a different URL.")
	default:
		c.logoVerdict = verdict.Error("Could not load image. Check the URL or try a different image.")
	}
	c.mu.Unlock()

	if err != nil {
		c.log.Warn("logo probe failed", logger.URL(raw), logger.Error(err))
	}
	c.notify()
}

func (c *Controller) notify() {
	if c.onChange == nil {
		return
	}
	c.onChange(c.Snapshot())
}
