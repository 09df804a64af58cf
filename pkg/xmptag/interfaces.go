package xmptag

import "context"

// MetadataReader reads one XMP property from an image file.
type MetadataReader interface {
	// Read returns the selected value, or a "No <field> Found" text when
	// the image does not carry it.
	Read(ctx context.Context, req ReadRequest) (string, error)
}

// FileWriter tags a copy of an existing image without re-encoding it.
type FileWriter interface {
	// Write returns the path of the tagged copy.
	Write(ctx context.Context, req FileWriteRequest) (string, error)
}

// TensorWriter encodes a host tensor to an image file and tags it.
type TensorWriter interface {
	// Write returns the path of the encoded image.
	Write(ctx context.Context, req TensorWriteRequest) (string, error)
}
