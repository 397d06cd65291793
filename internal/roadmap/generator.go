// Package roadmap generates multi-phase learning roadmaps incrementally:
// one header call, then one call per phase, each phase seeded with the
// titles of the phases already generated.
package roadmap

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/visualearn/internal/llm"
)

// Config holds roadmap generation tuning knobs.
type Config struct {
	// DefaultPhases is used when the metadata call declares no usable
	// phase count.
	DefaultPhases int

	MetadataMaxTokens int
	PhaseMaxTokens    int
	ContentMaxTokens  int
	Temperature       float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DefaultPhases:     5,
		MetadataMaxTokens: 1024,
		PhaseMaxTokens:    1024,
		ContentMaxTokens:  4096,
		Temperature:       0.7,
	}
}

// Generator produces roadmaps and per-topic deep-dive content.
type Generator struct {
	provider llm.Provider
	cfg      Config
	log      *zap.Logger
}

// NewGenerator creates a roadmap generator.
func NewGenerator(provider llm.Provider, cfg Config, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{provider: provider, cfg: cfg, log: log}
}

// Run generates a roadmap as a lazy event sequence: one metadata event,
// then phase events in strict order 1..TotalPhases.
//
// Unlike the lesson pipeline, failure here is fatal: a metadata failure
// ends the sequence with a single error event, and a phase failure emits
// one error event and stops further phases. Phases are deliberately
// sequential — each prompt carries the titles of all previously emitted
// phases, so later phases depend on earlier output.
func (g *Generator) Run(ctx context.Context, topic string) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		meta, err := g.generateMetadata(ctx, topic)
		if err != nil {
			g.log.Warn("roadmap metadata failed", zap.String("topic", topic), zap.Error(err))
			yield(Event{Type: EventError, Err: err.Error()})
			return
		}
		if !yield(Event{Type: EventMetadata, Metadata: meta}) {
			return
		}

		totalPhases := meta.TotalPhases
		if totalPhases <= 0 {
			totalPhases = g.cfg.DefaultPhases
		}

		var previous strings.Builder
		for n := 1; n <= totalPhases; n++ {
			phase, err := g.generatePhase(ctx, topic, n, totalPhases, previous.String())
			if err != nil {
				g.log.Warn("roadmap phase failed",
					zap.String("topic", topic), zap.Int("phase", n), zap.Error(err))
				yield(Event{Type: EventError, Err: err.Error()})
				return
			}
			if !yield(Event{Type: EventPhase, Phase: phase}) {
				return
			}
			fmt.Fprintf(&previous, "Phase %d: %s\n", n, phase.Title)
		}
	}
}

func (g *Generator) generateMetadata(ctx context.Context, topic string) (*Metadata, error) {
	ctx = llm.WithPurpose(ctx, "roadmap-metadata")

	req := llm.Request{
		System: metadataSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildMetadataUserMessage(topic)},
		},
		Schema:      MetadataSchema,
		MaxTokens:   g.cfg.MetadataMaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("roadmap metadata: %w", err)
	}

	var meta Metadata
	if err := json.Unmarshal(resp.Content, &meta); err != nil {
		return nil, fmt.Errorf("parse roadmap metadata: %w", err)
	}
	return &meta, nil
}

func (g *Generator) generatePhase(ctx context.Context, topic string, phaseNumber, totalPhases int, previousContext string) (*Phase, error) {
	ctx = llm.WithPurpose(ctx, "roadmap-phase")

	req := llm.Request{
		System: phaseSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPhaseUserMessage(topic, phaseNumber, totalPhases, previousContext)},
		},
		Schema:      PhaseSchema,
		MaxTokens:   g.cfg.PhaseMaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("roadmap phase %d: %w", phaseNumber, err)
	}

	var phase Phase
	if err := json.Unmarshal(resp.Content, &phase); err != nil {
		return nil, fmt.Errorf("parse roadmap phase %d: %w", phaseNumber, err)
	}
	return &phase, nil
}

// TopicContent generates deep-dive content for one topic of a roadmap
// phase. This is a blocking call; the result is returned whole.
func (g *Generator) TopicContent(ctx context.Context, topic, phase, topicTitle string) (string, error) {
	ctx = llm.WithPurpose(ctx, "topic-content")

	req := llm.Request{
		System: topicContentSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildTopicContentUserMessage(topic, phase, topicTitle)},
		},
		MaxTokens:   g.cfg.ContentMaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("topic content for %q: %w", topicTitle, err)
	}
	return resp.Text(), nil
}
