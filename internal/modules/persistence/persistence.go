package persistence

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FilePersister implements pipeline.Stage for writing the report document to disk.
type FilePersister struct {
	outputPath string // File overwritten on every run
}

// DefaultOutputPath is the email body picked up by the mail sender.
const DefaultOutputPath = "email_body.html"

// New creates a new FilePersister instance with an optional custom output path.
//
// Parameters:
//   - outputPath: Optional variadic parameter for the file path. Uses DefaultOutputPath if not provided.
//
// Returns:
//   - A pointer to a new FilePersister instance.
func New(outputPath ...string) *FilePersister {
	path := DefaultOutputPath
	if len(outputPath) > 0 && outputPath[0] != "" {
		path = outputPath[0]
	}
	return &FilePersister{outputPath: path}
}

// Path returns the file the persister writes to.
func (fp *FilePersister) Path() string {
	return fp.outputPath
}

// Write replaces the output file with doc, creating parent directories as needed.
func (fp *FilePersister) Write(doc string) error {
	if dir := filepath.Dir(fp.outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(fp.outputPath, []byte(doc), 0644); err != nil {
		return fmt.Errorf("write %s: %w", fp.outputPath, err)
	}
	return nil
}

// Execute writes the document received as input. This is the last stage of the pipeline.
//
// Parameters:
//   - ctx: Context for cancellation.
//   - input: The document as a string.
//   - logger: Logger for logging the outcome.
//
// Returns:
//   - The output path on success.
//   - An error if the input has the wrong type or the write fails.
func (fp *FilePersister) Execute(ctx context.Context, input interface{}, logger *zap.Logger) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		logger.Warn("persistence interrupted", zap.Error(err))
		return nil, err
	}
	doc, ok := input.(string)
	if !ok {
		return nil, fmt.Errorf("invalid input type %T, expected string", input)
	}

	logger.Debug("persisting report", zap.String("filepath", fp.outputPath))
	if err := fp.Write(doc); err != nil {
		logger.Error("persist failed",
			zap.String("filepath", fp.outputPath),
			zap.Error(err))
		return nil, err
	}

	logger.Info("report written",
		zap.String("filepath", fp.outputPath),
		zap.Int("bytes", len(doc)))
	return fp.outputPath, nil
}
