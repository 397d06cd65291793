package lesson

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/visualearn/internal/llm"
)

func collectFragments(seq func(func(string) bool)) []string {
	var out []string
	seq(func(s string) bool {
		out = append(out, s)
		return true
	})
	return out
}

func TestStreamSectionYieldsFragments(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("Photosynthesis converts light into energy.")},
	)
	w := newTestWorkflow(mock, nil)

	point := KeyPoint{PointTitle: "Light Reactions", VisualDescription: "expected diagram"}
	fragments := collectFragments(w.StreamSection(context.Background(), point, Input{Topic: "Photosynthesis"}, "an actual diagram with arrows"))

	if len(fragments) < 2 {
		t.Fatalf("fragments = %v, want multiple", fragments)
	}
	if got := strings.Join(fragments, ""); got != "Photosynthesis converts light into energy." {
		t.Errorf("joined fragments = %q", got)
	}
}

func TestStreamSectionUsesVisionDescription(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("text")},
	)
	w := newTestWorkflow(mock, nil)

	point := KeyPoint{PointTitle: "Light Reactions", VisualDescription: "expected diagram"}
	collectFragments(w.StreamSection(context.Background(), point, Input{Topic: "Photosynthesis"}, "an actual diagram with arrows"))

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "an actual diagram with arrows") {
		t.Errorf("prompt missing vision description:\n%s", prompt)
	}
	if strings.Contains(prompt, "expected diagram") {
		t.Error("prompt should prefer the vision description over the planned one")
	}
}

func TestStreamSectionFallsBackToPlannedVisual(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("text")},
	)
	w := newTestWorkflow(mock, nil)

	point := KeyPoint{PointTitle: "Light Reactions", VisualDescription: "expected diagram"}
	collectFragments(w.StreamSection(context.Background(), point, Input{Topic: "Photosynthesis"}, ""))

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "expected diagram") {
		t.Errorf("prompt missing planned visual description:\n%s", prompt)
	}
}

func TestStreamSectionEndsWithErrorFragment(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: errors.New("stream broke")},
	)
	w := newTestWorkflow(mock, nil)

	point := KeyPoint{PointTitle: "Light Reactions"}
	fragments := collectFragments(w.StreamSection(context.Background(), point, Input{Topic: "Photosynthesis"}, ""))

	if len(fragments) != 1 {
		t.Fatalf("fragments = %v, want single error fragment", fragments)
	}
	if !strings.Contains(fragments[0], "Error generating content") || !strings.Contains(fragments[0], "stream broke") {
		t.Errorf("fragment = %q", fragments[0])
	}
}

func TestStreamSectionStopsWhenConsumerBreaks(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("one two three four")},
	)
	w := newTestWorkflow(mock, nil)

	point := KeyPoint{PointTitle: "Light Reactions"}
	seen := 0
	for range w.StreamSection(context.Background(), point, Input{Topic: "Photosynthesis"}, "") {
		seen++
		break
	}
	if seen != 1 {
		t.Errorf("consumed %d fragments after break, want 1", seen)
	}
}
