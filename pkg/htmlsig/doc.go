// Package htmlsig serializes a signature record to HTML: the table-based
// copy payload pasted into a mail client, and a structurally parallel
// preview render for the editor.
//
// Both renders are pure functions of their input - the same record always
// produces the same bytes - and share every conditional: logo block only
// when a logo URL is set (linked to the website when one is given), name
// and title lines with placeholder fallbacks, "<title> at <company>" when a
// company is present, and a contact line whose separator glyph appears only
// when both phone and handle are set.
//
// The copy payload uses inline styles exclusively. Mail clients strip
// <style> blocks and class attributes, so everything the signature needs
// must travel on the elements themselves.
//
// User-supplied text is HTML-escaped before it is embedded, so a pasted
// signature can never smuggle markup into the mail client.
package htmlsig
