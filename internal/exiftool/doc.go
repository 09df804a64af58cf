// Package exiftool locates and drives the ExifTool command-line utility,
// which owns all reading and writing of XMP metadata.
//
// # Location
//
// Locator resolves the binary in this order:
//   - an explicit path (flag, XMPTAG_EXIFTOOL or xmptag.yaml)
//   - "exiftool" on PATH, accepted only when "exiftool -ver" succeeds
//   - a copy bundled next to the running executable
//
// # Invocation
//
// All processes are started through the Runner interface so tests can
// substitute a scripted fake (see the exiftooltest package). Tool wraps a
// located binary and turns non-zero exits into xmptag.ErrExifToolFailed.
//
// # Output Parsing
//
// ExifTool's default output is one "Key : Value" pair per line. ParseOutput
// splits each line on its first colon. ParseGroupedOutput handles the
// "-s -G1" form, "[XMP-dc] Subject : a, b", and keeps the document order.
package exiftool
