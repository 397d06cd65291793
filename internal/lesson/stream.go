package lesson

import (
	"context"
	"fmt"
	"iter"

	"github.com/abhisek/visualearn/internal/llm"
)

// StreamSection produces the prose for one key point as a lazy sequence of
// text fragments. visionDescription is the vision model's account of the
// actual image shown for this point; when empty, the planner's expected
// visual_description is used instead.
//
// Emitters for different key points are independent: each call gets its
// own underlying generation stream, so abandoning one sequence does not
// affect siblings. An internal fault ends the sequence with one final
// human-readable error fragment; it is never raised to the consumer.
func (w *Workflow) StreamSection(ctx context.Context, point KeyPoint, input Input, visionDescription string) iter.Seq[string] {
	visualInfo := visionDescription
	if visualInfo == "" {
		visualInfo = point.VisualDescription
	}

	req := llm.Request{
		System: sectionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSectionUserMessage(point, input, visualInfo)},
		},
		MaxTokens:   w.cfg.SectionMaxTokens,
		Temperature: w.cfg.SectionTemperature,
	}

	ctx = llm.WithPurpose(ctx, "section-content")

	return func(yield func(string) bool) {
		for fragment, err := range w.provider.GenerateStream(ctx, req) {
			if err != nil {
				yield(fmt.Sprintf("\n\nError generating content: %v", err))
				return
			}
			if !yield(fragment) {
				return
			}
		}
	}
}
