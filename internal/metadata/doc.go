// Package metadata builds the ExifTool arguments that read and write XMP
// properties, and interprets what ExifTool prints back.
//
// # Write Plans
//
// A file write is described by a Plan with two argument lists. Clear runs
// first and empties a property; Assign then writes the new values. Either
// list may be empty, in which case the invocation is skipped.
//
// Keyword (XMP-dc:Subject) writes follow the chosen WriteMode:
//
//	Add to existing   -XMP-dc:Subject-=cat -XMP-dc:Subject+=cat
//	Replace all       Clear: -XMP-dc:Subject=   Assign: -XMP-dc:Subject+=cat
//	Delete specified  -XMP-dc:Subject-=cat
//
// The "-=" before "+=" makes ExifTool skip keywords that are already
// present, so adding the same tag twice leaves a single copy.
//
// Descriptions and custom properties are scalar: add and replace both
// assign the raw payload, delete assigns the empty string.
//
// # Extra Fields
//
// JSON payloads and --set pairs may carry fields beyond the keyword list.
// They are written to a custom namespace, XMP-comfyui by default, which
// ExifTool only accepts when started with a matching -config file.
//
// # Carrying Metadata
//
// Re-encoding an image drops its XMP packet. RestoreArgs turns the entries
// read from the source image back into assignments so the new file starts
// with the same properties before the new payload is injected.
package metadata
