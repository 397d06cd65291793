// Package lesson implements the staged lesson-generation pipeline: plan a
// lesson, search and fetch supporting images in parallel, analyze them with
// a vision model, generate a quiz, and stream per-key-point prose keyed to
// the analyzed images.
package lesson

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/visualearn/internal/llm"
)

// Deps are the collaborators a Workflow drives. They are injected at
// construction; the workflow holds no global state.
type Deps struct {
	// Provider serves planning, quiz and section generation.
	Provider llm.StreamingProvider

	// Vision serves image analysis. When nil, Provider is used.
	Vision llm.Provider

	// Images creates the image search/download client for one stage
	// invocation. Each stage acquires its own client and closes it on
	// exit; clients are never shared across stages.
	Images FetcherFactory

	Logger *zap.Logger
}

// Workflow runs the five-stage lesson pipeline. Stages execute strictly in
// order; only the fan-out within a stage is parallel. A stage failure is
// recorded in State.Errors and the pipeline continues, so Run always
// reaches the end and never returns an error.
type Workflow struct {
	provider llm.StreamingProvider
	vision   llm.Provider
	images   FetcherFactory
	cfg      Config
	log      *zap.Logger
}

// New creates a Workflow.
func New(deps Deps, cfg Config) *Workflow {
	vision := deps.Vision
	if vision == nil {
		vision = deps.Provider
	}
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Workflow{
		provider: deps.Provider,
		vision:   vision,
		images:   deps.Images,
		cfg:      cfg,
		log:      log,
	}
}

type stageFunc func(context.Context, State) (State, error)

// Run executes the pipeline for one lesson request and returns the final
// state snapshot. onProgress, when non-nil, is invoked before each stage
// with the stage about to run and the state produced so far.
func (w *Workflow) Run(ctx context.Context, input Input, onProgress func(Progress)) State {
	s := NewState(input)

	stages := []struct {
		stage Stage
		fn    stageFunc
	}{
		{StagePlanning, w.planLesson},
		{StageImageSearch, w.searchImages},
		{StageImageProcessing, w.processImages},
		{StageContentGeneration, w.generateContent},
		{StageQuizGeneration, w.generateQuiz},
	}

	for _, st := range stages {
		if onProgress != nil {
			pct, msg := progressFor(st.stage)
			onProgress(Progress{Stage: st.stage, Percent: pct, Message: msg, State: s})
		}
		s = w.runStage(ctx, st.stage, s, st.fn)
	}

	s = s.clone()
	s.CurrentProcessing = string(StageDone)
	return s
}

// runStage invokes one stage with rollback-on-failure semantics: if the
// stage returns an error or panics, the prior state is returned with one
// appended error and no other field touched.
func (w *Workflow) runStage(ctx context.Context, stage Stage, prior State, fn stageFunc) (next State) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("stage panicked", zap.String("stage", string(stage)), zap.Any("panic", r))
			next = prior.withError(fmt.Sprintf("%s error: %v", stage, r))
		}
	}()

	out, err := fn(ctx, prior)
	if err != nil {
		w.log.Warn("stage failed", zap.String("stage", string(stage)), zap.Error(err))
		return prior.withError(fmt.Sprintf("%s error: %v", stage, err))
	}
	return out
}

// generateContent is a pipeline placeholder: per-point prose is streamed
// by the caller through StreamSection, outside the staged pipeline,
// because streaming output cannot be represented in a state snapshot.
func (w *Workflow) generateContent(_ context.Context, s State) (State, error) {
	next := s.clone()
	next.CurrentProcessing = "content_generation_complete"
	return next, nil
}
