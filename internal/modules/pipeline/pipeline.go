package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Stage defines the interface for a pipeline stage.
// Each stage turns the previous stage's output into its own.
type Stage interface {
	Execute(ctx context.Context, input interface{}, logger *zap.Logger) (interface{}, error)
}

type namedStage struct {
	name  string
	stage Stage
}

// Pipeline runs a sequence of stages one after another.
type Pipeline struct {
	stages []namedStage // Stages in execution order
	logger *zap.Logger  // Logger for pipeline-wide logging
}

// New creates a new Pipeline instance with the given logger.
//
// Parameters:
//   - logger: Logger for logging pipeline events.
//
// Returns:
//   - A pointer to a new Pipeline instance.
func New(logger *zap.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
	}
}

// AddStage appends a stage to the pipeline's sequence.
//
// Parameters:
//   - name: Name used in logs and errors.
//   - stage: The stage to add.
func (p *Pipeline) AddStage(name string, stage Stage) {
	p.stages = append(p.stages, namedStage{name: name, stage: stage})
}

// Run executes the stages in order. The first stage receives input and each
// following stage receives its predecessor's output.
//
// Parameters:
//   - ctx: Context for cancellation, checked before every stage.
//   - input: Input for the first stage.
//
// Returns:
//   - The last stage's output.
//   - The first error encountered, wrapped with the failing stage's name.
func (p *Pipeline) Run(ctx context.Context, input interface{}) (interface{}, error) {
	if len(p.stages) == 0 {
		p.logger.Warn("no stages in pipeline")
		return input, nil
	}

	data := input
	for i, s := range p.stages {
		if err := ctx.Err(); err != nil {
			p.logger.Info("pipeline canceled", zap.String("stage", s.name), zap.Error(err))
			return nil, err
		}

		p.logger.Debug("starting stage", zap.Int("stage", i), zap.String("name", s.name))
		out, err := s.stage.Execute(ctx, data, p.logger.Named(s.name))
		if err != nil {
			p.logger.Error("stage execution failed",
				zap.Int("stage", i),
				zap.String("name", s.name),
				zap.Error(err))
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}
		data = out
	}

	p.logger.Info("pipeline completed successfully")
	return data, nil
}
