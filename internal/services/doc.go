// Package services implements the three metadata operations on top of a
// located ExifTool: reading a property, tagging a copy of an image file and
// encoding a tensor to a tagged image.
//
// Each service receives a ToolFactory instead of a Tool so that ExifTool is
// located lazily, once per request, and a missing installation surfaces as
// xmptag.ErrExifToolNotFound from the operation itself.
package services
