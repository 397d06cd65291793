package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/visualearn/internal/imagery"
	"github.com/abhisek/visualearn/internal/lesson"
	"github.com/abhisek/visualearn/internal/llm"
	"github.com/abhisek/visualearn/internal/roadmap"
)

// newLogger builds the process logger. Logs go to stderr so streaming
// output on stdout stays machine-readable.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

// buildWorkflow assembles the lesson pipeline from environment config.
// Image search credentials are optional: without them the pipeline still
// plans lessons and generates quizzes, it just finds no images.
func buildWorkflow(ctx context.Context, log *zap.Logger) (*lesson.Workflow, error) {
	provider, err := llm.NewProviderFromEnv(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("configure LLM provider: %w", err)
	}

	imgCfg := imagery.ConfigFromEnv()
	if err := imgCfg.Validate(); err != nil {
		log.Warn("image search not configured, lessons will have no images", zap.Error(err))
	}

	return lesson.New(lesson.Deps{
		Provider: provider,
		Images:   func() lesson.ImageFetcher { return imagery.NewClient(imgCfg) },
		Logger:   log,
	}, lesson.DefaultConfig()), nil
}

// buildRoadmaps assembles the roadmap generator from environment config.
func buildRoadmaps(ctx context.Context, log *zap.Logger) (*roadmap.Generator, error) {
	provider, err := llm.NewProviderFromEnv(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("configure LLM provider: %w", err)
	}
	return roadmap.NewGenerator(provider, roadmap.DefaultConfig(), log), nil
}
