// Package logomaker rasterizes simple text badges for people who have no
// logo image at hand: a short text on a pill, circle or square background,
// exported as a PNG data URL the signature record can carry directly.
//
// # Architecture
//
// Rendering is a fixed pipeline: truncate the text, pick the font size from
// the text length, measure it with the embedded Go Bold face, fill the
// shape with a vector rasterizer, draw the text centered, and crop the
// canvas to the content width (400x60 maximum, circles always 60x60).
//
// Colors come from eight preset background/foreground pairs, or from a
// custom background whose foreground is chosen by relative luminance so the
// text stays readable.
//
// QR and QRDataURL produce a square QR badge under the same data-URL
// contract, for signatures that want a scannable link instead of a
// wordmark.
package logomaker
