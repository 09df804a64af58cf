// Package params parses the extra metadata fields supplied on the command
// line.
//
// Fields come from repeated --set key=value flags and from a fields file in
// .env format:
//
//	# generation settings
//	seed=42
//	sampler="euler a"
//
// Both parsers keep the input order so the ExifTool arguments built from the
// fields are stable. A key given twice keeps its first position and its last
// value.
package params
