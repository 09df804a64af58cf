package services

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/vvka-141/xmptag/internal/files"
	"github.com/vvka-141/xmptag/internal/imaging"
	"github.com/vvka-141/xmptag/internal/metadata"
	"github.com/vvka-141/xmptag/internal/tags"
	"github.com/vvka-141/xmptag/pkg/xmptag"
)

// TensorWriteService implements xmptag.TensorWriter.
type TensorWriteService struct {
	tools  ToolFactory
	logger xmptag.Logger
	now    func() time.Time
}

// NewTensorWriteService creates a TensorWriteService. It panics on nil dependencies.
func NewTensorWriteService(tools ToolFactory, logger xmptag.Logger) *TensorWriteService {
	if tools == nil {
		panic("tools cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &TensorWriteService{tools: tools, logger: logger, now: time.Now}
}

// WithClock replaces the clock used for fallback file names.
func (s *TensorWriteService) WithClock(now func() time.Time) *TensorWriteService {
	s.now = now
	return s
}

// Write encodes the first frame of the tensor, optionally restores the
// source image's XMP and injects the payload in a single ExifTool call.
// If ExifTool fails, the encoded file is kept and its path is returned
// together with the error.
func (s *TensorWriteService) Write(ctx context.Context, req xmptag.TensorWriteRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	tool, err := s.tools(ctx)
	if err != nil {
		return "", err
	}

	img, err := imaging.ToImage(req.Tensor)
	if err != nil {
		return "", err
	}

	input := files.NormalizeInputPath(req.InputImagePath)
	_, _, channels := req.Tensor.Dims()
	ext := imaging.ChooseFormat(req.Format, input, img, channels == 4)
	s.logger.Verbose("Format %s selected %s", req.Format, ext)

	output, err := files.TensorOutputPath(req.OutputDir, ext, input, req.FallbackRoot, s.now())
	if err != nil {
		return "", err
	}

	payload := tags.Parse(req.Metadata)
	payload.Fields = append(payload.Fields, req.Extra...)

	var args []string
	if req.CarryMetadata && input != "" {
		if err := files.RequireFile(input); err != nil {
			s.logger.Verbose("Not carrying metadata: %v", err)
		} else {
			entries, err := tool.QueryXMP(ctx, input)
			if err != nil {
				return "", err
			}
			args = metadata.RestoreArgs(entries)
			payload.Tags = metadata.Without(payload.Tags, metadata.ExistingTags(entries))
			s.logger.Verbose("Carrying %d XMP entries from %s", len(entries), input)
		}
	}
	args = append(args, metadata.InjectArgs(payload, req.Namespace)...)

	if req.DryRun {
		logDryRun(s.logger, tool, output, [][]string{args})
		return output, nil
	}

	if err := s.encode(output, img, ext, req.EffectiveQuality()); err != nil {
		return "", err
	}
	s.logger.Verbose("Encoded %s", output)

	if err := runInvocations(ctx, tool, output, [][]string{args}); err != nil {
		return output, err
	}
	return output, nil
}

// encode writes to a temporary name in the output directory and renames it
// into place.
func (s *TensorWriteService) encode(output string, img image.Image, ext string, quality int) error {
	dir := filepath.Dir(output)
	if err := files.EnsureDir(dir); err != nil {
		return err
	}

	tmp := filepath.Join(dir, ".xmptag-"+uuid.NewString()+ext)
	if err := imaging.EncodeFile(tmp, img, ext, quality); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, output); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to move encoded image to %s: %w", output, err)
	}
	return nil
}

var _ xmptag.TensorWriter = (*TensorWriteService)(nil)
