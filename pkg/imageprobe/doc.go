// Package imageprobe determines the intrinsic pixel dimensions of logo
// images, the one asynchronous operation in the signature editor.
//
// # Architecture
//
// A Prober fetches a remote URL with a bounded timeout (DefaultTimeout,
// 10 s) and decodes just enough of the payload to learn its size. Raster
// formats (PNG, JPEG, GIF, WebP) go through image.DecodeConfig; SVG
// documents are scanned for their declared width/height or viewBox.
//
// Probe returns an async.Future so the form controller can keep accepting
// input while the network round-trip is in flight. Data URLs resolve
// synchronously through the same API - no network, no goroutine.
//
// # Error Handling
//
// Failures resolve to one of the sentinel errors: ErrTimeout (the probe
// window elapsed), ErrUnreachable (network or HTTP failure), ErrMalformed
// (undecodable payload), ErrInvalidDataURL. Exactly one attempt is made per
// call; retrying is the caller's decision.
package imageprobe
