package services

import (
	"context"

	"github.com/vvka-141/xmptag/internal/files"
	"github.com/vvka-141/xmptag/internal/metadata"
	"github.com/vvka-141/xmptag/pkg/xmptag"
)

// ReadService implements xmptag.MetadataReader.
type ReadService struct {
	tools  ToolFactory
	logger xmptag.Logger
}

// NewReadService creates a ReadService. It panics on nil dependencies.
func NewReadService(tools ToolFactory, logger xmptag.Logger) *ReadService {
	if tools == nil {
		panic("tools cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &ReadService{tools: tools, logger: logger}
}

// Read queries the image and returns the selected field. A field the image
// does not carry yields the "No <field> Found" text and no error.
func (s *ReadService) Read(ctx context.Context, req xmptag.ReadRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	tool, err := s.tools(ctx)
	if err != nil {
		return "", err
	}

	path := files.NormalizeInputPath(req.ImagePath)
	if err := files.RequireFile(path); err != nil {
		return "", err
	}

	values, err := tool.Query(ctx, path, metadata.QueryTags(req.Field, req.CustomKey)...)
	if err != nil {
		return "", err
	}

	if v, ok := metadata.Lookup(values, req.Field, req.CustomKey); ok {
		return v, nil
	}
	s.logger.Verbose("%s not present in %s", req.Field, path)
	return metadata.NotFound(req.Field, req.CustomKey), nil
}

var _ xmptag.MetadataReader = (*ReadService)(nil)
