package lesson

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/visualearn/internal/llm"
)

// planLesson asks the model for a structured lesson plan and populates
// KeyPoints. On failure the runner leaves KeyPoints empty and every
// downstream stage passes through untouched.
func (w *Workflow) planLesson(ctx context.Context, s State) (State, error) {
	ctx = llm.WithPurpose(ctx, "lesson-plan")

	req := llm.Request{
		System: plannerSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPlannerUserMessage(s.Input(), w.cfg.PointCount)},
		},
		Schema:      PlanSchema,
		MaxTokens:   w.cfg.PlanMaxTokens,
		Temperature: w.cfg.PlanTemperature,
	}

	resp, err := w.provider.Generate(ctx, req)
	if err != nil {
		return State{}, fmt.Errorf("lesson planning: %w", err)
	}

	var plan Plan
	if err := json.Unmarshal(resp.Content, &plan); err != nil {
		return State{}, fmt.Errorf("parse lesson plan: %w", err)
	}

	next := s.clone()
	next.Plan = &plan
	next.KeyPoints = plan.KeyPoints
	next.CurrentProcessing = "lesson_planning_complete"
	return next, nil
}
