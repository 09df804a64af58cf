package xmptag

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	out, err := writer.Write(ctx, req)
//	if errors.Is(err, xmptag.ErrExifToolNotFound) {
//	    // Ask the user to install ExifTool
//	}
var (
	// ErrInvalidConfig indicates the provided configuration or request is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrExifToolNotFound indicates no usable ExifTool binary was found.
	ErrExifToolNotFound = errors.New("exiftool not found")

	// ErrInputNotFound indicates the input image does not exist.
	ErrInputNotFound = errors.New("input file not found")

	// ErrTaggedLoop indicates the input already sits inside a tagged directory
	// and no explicit output directory was given.
	ErrTaggedLoop = errors.New("input file already in a tagged directory")

	// ErrCustomFieldRequired indicates a Custom XMP write without a field name.
	ErrCustomFieldRequired = errors.New("custom field required for Custom XMP")

	// ErrExifToolFailed indicates ExifTool exited with a non-zero status.
	ErrExifToolFailed = errors.New("exiftool failed")

	// ErrEncodeFailed indicates the tensor could not be written as an image.
	ErrEncodeFailed = errors.New("image encode failed")
)

// usagePatterns are fragments of cobra/pflag error messages that indicate
// command-line misuse rather than an operational failure.
var usagePatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"required flag",
	"invalid argument",
	"missing required argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrCustomFieldRequired):
		return ExitConfigError
	case errors.Is(err, ErrExifToolNotFound):
		return ExitToolNotFound
	case errors.Is(err, ErrInputNotFound):
		return ExitInputNotFound
	case errors.Is(err, ErrExifToolFailed):
		return ExitExifToolFailed
	case errors.Is(err, ErrTaggedLoop):
		return ExitTaggedLoop
	case errors.Is(err, ErrEncodeFailed):
		return ExitEncodeFailed
	}

	errStr := err.Error()
	for _, p := range usagePatterns {
		if strings.Contains(errStr, p) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

// Preview shortens s to at most MaxErrorPreviewLength bytes for error
// messages. The cut never splits a multi-byte rune.
func Preview(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= MaxErrorPreviewLength {
		return s
	}
	cut := MaxErrorPreviewLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
