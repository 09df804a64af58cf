package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vvka-141/xmptag/internal/files"
	"github.com/vvka-141/xmptag/internal/metadata"
	"github.com/vvka-141/xmptag/pkg/xmptag"
)

// FileWriteService implements xmptag.FileWriter. The input file is copied
// byte for byte and only the copy's metadata is edited.
type FileWriteService struct {
	tools  ToolFactory
	logger xmptag.Logger
}

// NewFileWriteService creates a FileWriteService. It panics on nil dependencies.
func NewFileWriteService(tools ToolFactory, logger xmptag.Logger) *FileWriteService {
	if tools == nil {
		panic("tools cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &FileWriteService{tools: tools, logger: logger}
}

// Write copies the input to the output directory and applies the write
// plan to the copy. If ExifTool fails after the copy was made, the copy is
// left in place and its path is returned together with the error.
func (s *FileWriteService) Write(ctx context.Context, req xmptag.FileWriteRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	tool, err := s.tools(ctx)
	if err != nil {
		return "", err
	}

	input := files.NormalizeInputPath(req.InputPath)
	if err := files.RequireFile(input); err != nil {
		return "", err
	}

	if files.InTaggedDir(input) {
		if files.IsDefaultOutputDir(req.OutputDir) {
			return "", fmt.Errorf("%s: %w", input, xmptag.ErrTaggedLoop)
		}
		s.logger.Verbose("Input is inside a %q directory, writing to %s", xmptag.TaggedDirName, req.OutputDir)
	}

	plan, err := metadata.BuildWritePlan(req.Kind, req.Mode, req.Metadata, req.CustomField, req.Namespace, req.Extra)
	if err != nil {
		return "", err
	}

	output, err := files.FileOutputPath(input, req.OutputDir)
	if err != nil {
		return "", err
	}

	if req.DryRun {
		logDryRun(s.logger, tool, output, plan.Invocations())
		return output, nil
	}

	if samePath(input, output) {
		s.logger.Verbose("Output is the input file, editing in place")
	} else if err := files.CopyPreserving(input, output); err != nil {
		return "", err
	}
	s.logger.Verbose("Copied %s to %s", input, output)

	if plan.IsEmpty() {
		s.logger.Verbose("Nothing to write for %s", req.Kind)
	} else if err := runInvocations(ctx, tool, output, plan.Invocations()); err != nil {
		return output, err
	}

	if err := files.RestoreTimes(input, output); err != nil {
		s.logger.Error("Could not restore timestamps: %v", err)
	}

	s.logger.Verbose("Wrote %s (%s, %s) to %s", req.Kind, req.Mode, xmptag.Preview(req.Metadata), output)
	return output, nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}

var _ xmptag.FileWriter = (*FileWriteService)(nil)
