package xmptag

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess        = 0  // Operation completed successfully
	ExitGeneralError   = 1  // Unknown or unclassified error
	ExitUsageError     = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitConfigError    = 10 // Invalid configuration or request
	ExitToolNotFound   = 11 // ExifTool could not be located
	ExitInputNotFound  = 12 // Input image does not exist
	ExitExifToolFailed = 13 // ExifTool returned a non-zero exit code
	ExitTaggedLoop     = 14 // Input already lives in a tagged directory
	ExitEncodeFailed   = 15 // Tensor could not be encoded to an image file
)

const (
	// TaggedDirName is the sub-directory that receives written images when
	// no explicit output directory is given.
	TaggedDirName = "tagged"

	// DefaultOutputDirectory is the placeholder value the host UI ships as the
	// output directory default. It means the same as an empty value: derive
	// the directory from the input image.
	DefaultOutputDirectory = "./tagged"

	// DefaultJPEGQuality is used for JPEG and lossy re-encodes.
	DefaultJPEGQuality = 95

	// DefaultCustomNamespace receives extra scalar fields of a JSON payload.
	DefaultCustomNamespace = "XMP-comfyui"

	// FallbackNamePrefix and FallbackNameLayout name tensor outputs that have
	// no input image to borrow a file name from.
	FallbackNamePrefix = "tagged_image_"
	FallbackNameLayout = "20060102_150405"

	// MaxErrorPreviewLength caps ExifTool stderr quoted in error messages.
	MaxErrorPreviewLength = 200
)

// Photo-versus-illustration heuristic.
// An image is photo-like when, after resampling to PhotoSampleSize squared,
// the standard deviation of all channel samples exceeds PhotoStdDevThreshold
// and the ratio of unique colors to pixels exceeds PhotoUniqueRatioThreshold.
const (
	PhotoSampleSize           = 100
	PhotoStdDevThreshold      = 40.0
	PhotoUniqueRatioThreshold = 0.5
)
