package xmptag

import (
	"errors"
	"fmt"
	"strings"
)

// Field selects which XMP property a read returns.
type Field int

const (
	FieldSubject     Field = iota // XMP-dc:Subject
	FieldDescription              // XMP-dc:Description
	FieldCreateDate               // XMP-xmp:CreateDate
	FieldModifyDate               // XMP-xmp:ModifyDate
	FieldCustom                   // Any key named by the caller
)

// String returns the label shown by the host UI. For the four fixed fields
// it is also the key ExifTool prints in its human-readable output.
func (f Field) String() string {
	switch f {
	case FieldSubject:
		return "Subject"
	case FieldDescription:
		return "Description"
	case FieldCreateDate:
		return "Create Date"
	case FieldModifyDate:
		return "Modify Date"
	case FieldCustom:
		return "Custom"
	default:
		return fmt.Sprintf("Unknown(%d)", f)
	}
}

// IsValid returns true if the Field is a defined value.
func (f Field) IsValid() bool {
	return f >= FieldSubject && f <= FieldCustom
}

// ParseField accepts either the UI label ("Create Date") or a flag-style
// spelling ("create-date").
func ParseField(s string) (Field, error) {
	switch foldName(s) {
	case "subject", "tags":
		return FieldSubject, nil
	case "description":
		return FieldDescription, nil
	case "createdate":
		return FieldCreateDate, nil
	case "modifydate":
		return FieldModifyDate, nil
	case "custom":
		return FieldCustom, nil
	}
	return 0, fmt.Errorf("unknown metadata field %q: %w", s, ErrInvalidConfig)
}

// MetadataKind selects what a file write targets.
type MetadataKind int

const (
	KindSubject     MetadataKind = iota // Keyword list (XMP-dc:Subject)
	KindDescription                     // Free text (XMP-dc:Description)
	KindCustom                          // Caller-named XMP tag
)

func (k MetadataKind) String() string {
	switch k {
	case KindSubject:
		return "Subject"
	case KindDescription:
		return "Description"
	case KindCustom:
		return "Custom XMP"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// IsValid returns true if the MetadataKind is a defined value.
func (k MetadataKind) IsValid() bool {
	return k >= KindSubject && k <= KindCustom
}

// ParseMetadataKind accepts "Custom XMP" as well as "custom".
func ParseMetadataKind(s string) (MetadataKind, error) {
	switch foldName(s) {
	case "subject", "tags":
		return KindSubject, nil
	case "description":
		return KindDescription, nil
	case "customxmp", "custom":
		return KindCustom, nil
	}
	return 0, fmt.Errorf("unknown metadata type %q: %w", s, ErrInvalidConfig)
}

// WriteMode is the policy for combining new values with existing ones.
type WriteMode int

const (
	ModeAdd     WriteMode = iota // Add to existing
	ModeReplace                  // Replace all
	ModeDelete                   // Delete specified
)

func (m WriteMode) String() string {
	switch m {
	case ModeAdd:
		return "Add to existing"
	case ModeReplace:
		return "Replace all"
	case ModeDelete:
		return "Delete specified"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// IsValid returns true if the WriteMode is a defined value.
func (m WriteMode) IsValid() bool {
	return m >= ModeAdd && m <= ModeDelete
}

// ParseWriteMode accepts the UI labels and the short forms add, replace and delete.
func ParseWriteMode(s string) (WriteMode, error) {
	switch foldName(s) {
	case "add", "addtoexisting", "append":
		return ModeAdd, nil
	case "replace", "replaceall":
		return ModeReplace, nil
	case "delete", "deletespecified", "remove":
		return ModeDelete, nil
	}
	return 0, fmt.Errorf("unknown write mode %q: %w", s, ErrInvalidConfig)
}

// FormatMode decides the on-disk format of a tensor write.
type FormatMode int

const (
	FormatPreserve FormatMode = iota // Keep the input image's extension
	FormatSmart                      // PNG for alpha or illustrations, JPEG for photos
	FormatPNG                        // Always PNG
	FormatJPG                        // Always JPEG
)

func (f FormatMode) String() string {
	switch f {
	case FormatPreserve:
		return "Preserve format"
	case FormatSmart:
		return "Smart format"
	case FormatPNG:
		return "Force PNG"
	case FormatJPG:
		return "Force JPG"
	default:
		return fmt.Sprintf("Unknown(%d)", f)
	}
}

// IsValid returns true if the FormatMode is a defined value.
func (f FormatMode) IsValid() bool {
	return f >= FormatPreserve && f <= FormatJPG
}

// ParseFormatMode accepts the UI labels and preserve, smart, png and jpg.
func ParseFormatMode(s string) (FormatMode, error) {
	switch foldName(s) {
	case "preserve", "preserveformat":
		return FormatPreserve, nil
	case "smart", "smartformat":
		return FormatSmart, nil
	case "png", "forcepng":
		return FormatPNG, nil
	case "jpg", "jpeg", "forcejpg", "forcejpeg":
		return FormatJPG, nil
	}
	return 0, fmt.Errorf("unknown format mode %q: %w", s, ErrInvalidConfig)
}

// foldName lower-cases s and drops spaces, dashes and underscores so that
// "Create Date", "create-date" and "create_date" compare equal.
func foldName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if r == ' ' || r == '-' || r == '_' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Pair is one key/value metadata field destined for the custom namespace.
type Pair struct {
	Key   string
	Value string
}

// ReadRequest contains the parameters of a metadata read.
type ReadRequest struct {
	// ImagePath is the image to query. Surrounding double quotes are stripped.
	ImagePath string

	// Field selects the property returned.
	Field Field

	// CustomKey names the property when Field is FieldCustom. It may be an
	// ExifTool description ("Create Date"), a tag name ("CreateDate") or a
	// group-qualified tag ("XMP-comfyui:seed").
	CustomKey string
}

// Validate checks if the ReadRequest has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (r *ReadRequest) Validate() error {
	var errs []error

	if strings.TrimSpace(r.ImagePath) == "" {
		errs = append(errs, fmt.Errorf("ImagePath is required: %w", ErrInvalidConfig))
	}
	if !r.Field.IsValid() {
		errs = append(errs, fmt.Errorf("field %s is not valid: %w", r.Field, ErrInvalidConfig))
	}
	if r.Field == FieldCustom && strings.TrimSpace(r.CustomKey) == "" {
		errs = append(errs, fmt.Errorf("CustomKey is required for the Custom field: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// FileWriteRequest contains the parameters of a lossless write: the input
// file is copied byte for byte and only its metadata is changed.
type FileWriteRequest struct {
	// InputPath is the image to tag. Surrounding double quotes are stripped.
	InputPath string

	// Metadata is the payload: comma separated tags, a JSON object with a
	// "tags" entry and extra scalar fields, or free text for descriptions.
	Metadata string

	// Kind selects the target property.
	Kind MetadataKind

	// Mode is the merge policy.
	Mode WriteMode

	// CustomField names the tag for KindCustom. A bare name is placed in the
	// XMP-dc group.
	CustomField string

	// OutputDir receives the copy. Empty or DefaultOutputDirectory means
	// <input dir>/tagged.
	OutputDir string

	// Namespace receives extra JSON fields and Extra pairs.
	Namespace string

	// Extra holds additional key/value fields supplied outside the payload.
	Extra []Pair

	// DryRun resolves the output path and ExifTool arguments without
	// touching the filesystem.
	DryRun bool
}

// Validate checks if the FileWriteRequest has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (r *FileWriteRequest) Validate() error {
	var errs []error

	if strings.TrimSpace(r.InputPath) == "" {
		errs = append(errs, fmt.Errorf("InputPath is required: %w", ErrInvalidConfig))
	}
	if !r.Kind.IsValid() {
		errs = append(errs, fmt.Errorf("metadata type %s is not valid: %w", r.Kind, ErrInvalidConfig))
	}
	if !r.Mode.IsValid() {
		errs = append(errs, fmt.Errorf("write mode %s is not valid: %w", r.Mode, ErrInvalidConfig))
	}
	if r.Kind == KindCustom && strings.TrimSpace(r.CustomField) == "" {
		errs = append(errs, ErrCustomFieldRequired)
	}

	return errors.Join(errs...)
}

// TensorWriteRequest contains the parameters of a tensor write: the tensor
// is encoded to an image file and the payload is injected into it.
type TensorWriteRequest struct {
	// Tensor is the host image. Only the first frame of a batch is written.
	Tensor *Tensor

	// Metadata is the payload, parsed like FileWriteRequest.Metadata.
	Metadata string

	// Format decides the output encoding.
	Format FormatMode

	// InputImagePath optionally names the image the tensor came from. It
	// provides the output file name, the preserved format and, with
	// CarryMetadata, the metadata to restore.
	InputImagePath string

	// OutputDir receives the image. Empty means <input dir>/tagged, or
	// <FallbackRoot>/tagged without an input path.
	OutputDir string

	// FallbackRoot is used when neither OutputDir nor InputImagePath is set.
	FallbackRoot string

	// Namespace receives extra JSON fields and Extra pairs.
	Namespace string

	// Quality is the JPEG quality, 1-100. Zero selects DefaultJPEGQuality.
	Quality int

	// CarryMetadata re-emits the input image's XMP after the re-encode.
	CarryMetadata bool

	// Extra holds additional key/value fields supplied outside the payload.
	Extra []Pair

	// DryRun resolves the output path and ExifTool arguments without
	// touching the filesystem.
	DryRun bool
}

// Validate checks if the TensorWriteRequest has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (r *TensorWriteRequest) Validate() error {
	var errs []error

	if r.Tensor == nil {
		errs = append(errs, fmt.Errorf("Tensor is required: %w", ErrInvalidConfig))
	}
	if !r.Format.IsValid() {
		errs = append(errs, fmt.Errorf("format mode %s is not valid: %w", r.Format, ErrInvalidConfig))
	}
	if r.Quality < 0 || r.Quality > 100 {
		errs = append(errs, fmt.Errorf("quality %d outside 1-100: %w", r.Quality, ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// EffectiveQuality returns Quality, or DefaultJPEGQuality when unset.
func (r *TensorWriteRequest) EffectiveQuality() int {
	if r.Quality == 0 {
		return DefaultJPEGQuality
	}
	return r.Quality
}
