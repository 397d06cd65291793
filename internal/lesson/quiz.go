package lesson

import (
	"context"
	"fmt"

	"github.com/abhisek/visualearn/internal/llm"
)

// generateQuiz produces quiz text covering all key points. It runs once
// over the whole lesson and is independent of image failures.
func (w *Workflow) generateQuiz(ctx context.Context, s State) (State, error) {
	if len(s.KeyPoints) == 0 {
		return s, nil
	}

	ctx = llm.WithPurpose(ctx, "quiz")

	req := llm.Request{
		System: quizSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuizUserMessage(s.Topic, s.KeyPoints)},
		},
		MaxTokens:   w.cfg.QuizMaxTokens,
		Temperature: w.cfg.QuizTemperature,
	}

	resp, err := w.provider.Generate(ctx, req)
	if err != nil {
		return State{}, fmt.Errorf("quiz generation: %w", err)
	}

	next := s.clone()
	next.Quiz = resp.Text()
	next.CurrentProcessing = "quiz_complete"
	return next, nil
}
