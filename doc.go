// Package sigforge implements the core of an email-signature builder: a
// strongly typed signature record, a form controller with per-field
// validation state, and HTML rendering for the signature itself.
//
// SigForge is UI-agnostic. It owns the data and its rules; any shell
// (web, desktop, CLI) drives it through the Controller and subscribes to
// snapshots.
//
// Key Features:
//
//   - Eager per-field validation with touched-gated error display
//   - Four logo sources (preset, custom URL, upload, generated) behind
//     one verdict model
//   - Debounced, cancellation-safe asynchronous image probing
//   - Deterministic, email-client-safe HTML output
//
// Basic Usage:
//
//	ctrl := sigforge.New(sigforge.OnChange(func(s sigforge.Snapshot) {
//		render(s)
//	}))
//	defer ctrl.Close()
//
//	ctrl.SetField(sigforge.FieldName, "Ada Lovelace")
//	ctrl.SetField(sigforge.FieldTitle, "Engineer")
//	ctrl.Touch(sigforge.FieldName)
//
//	if err := ctrl.VisibleFieldError(sigforge.FieldName); err != nil {
//		showError(err)
//	}
//
// Logo Handling:
//
// Selecting a logo source determines how the logo URL field is validated.
// Custom URLs are probed for dimensions after a debounce window; uploads
// are decoded in-process and stored as data URLs; generated logos come
// from pkg/logomaker and are trusted as-is:
//
//	ctrl.SelectLogoSource(sigforge.SourceCustomURL, "")
//	ctrl.SetField(sigforge.FieldLogoURL, "https://example.com/logo.png")
//	// ... verdict transitions idle -> loading -> valid/warning/error
//
//	dataURL, _ := logomaker.DataURL(logomaker.Options{Text: "Acme"})
//	ctrl.GeneratedLogo(dataURL)
//
// Export:
//
// CopyHTML renders the signature as a nested-table document with inline
// styles only and hands it to the supplied clipboard:
//
//	markup, err := ctrl.CopyHTML(ctx, clip)
//
// The package follows these principles:
//   - Validation is eager, display is gated
//   - The last started probe wins; stale results are discarded
//   - Warnings never block export, errors always do
package sigforge
