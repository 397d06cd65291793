package lesson

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"strings"
	"testing"

	"github.com/abhisek/visualearn/internal/llm"
)

// fakeFetcher lets tests script per-query search and per-URL download
// outcomes.
type fakeFetcher struct {
	search   func(query string) ([]string, error)
	download func(url string) (image.Image, error)
	closed   bool
}

func (f *fakeFetcher) SearchImages(_ context.Context, query string) ([]string, error) {
	return f.search(query)
}

func (f *fakeFetcher) DownloadImage(_ context.Context, url string) (image.Image, error) {
	return f.download(url)
}

func (f *fakeFetcher) Close() { f.closed = true }

func testImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 4, 4))
}

func planResponse(titles ...string) llm.MockResponse {
	points := make([]string, len(titles))
	for i, title := range titles {
		points[i] = fmt.Sprintf(`{
			"point_title": %q,
			"explanation": "explanation of %s",
			"visual_type": "diagram",
			"visual_description": "diagram of %s",
			"search_query": "%s diagram"
		}`, title, title, title, title)
	}
	return llm.MockResponse{Content: json.RawMessage(fmt.Sprintf(
		`{"overview": "test lesson", "key_points": [%s]}`, strings.Join(points, ","),
	))}
}

func newTestWorkflow(mock *llm.MockProvider, fetcher *fakeFetcher) *Workflow {
	return New(Deps{
		Provider: mock,
		Images:   func() ImageFetcher { return fetcher },
	}, DefaultConfig())
}

func TestRunFullPipeline(t *testing.T) {
	mock := llm.NewMockProvider(
		planResponse("Chlorophyll", "Light Reactions", "Calvin Cycle"),
		llm.MockResponse{Content: json.RawMessage("A labeled diagram showing green structures.")},
		llm.MockResponse{Content: json.RawMessage("A flowchart with arrows between stages.")},
		llm.MockResponse{Content: json.RawMessage("**Question 1:** What absorbs light?")},
	)

	fetcher := &fakeFetcher{
		search: func(query string) ([]string, error) {
			// One key point's search fails; the others each find two
			// candidates.
			if strings.HasPrefix(query, "Calvin Cycle") {
				return nil, errors.New("quota exceeded")
			}
			return []string{"http://img.test/" + query + "/1", "http://img.test/" + query + "/2"}, nil
		},
		download: func(url string) (image.Image, error) {
			return testImage(), nil
		},
	}

	w := newTestWorkflow(mock, fetcher)
	final := w.Run(context.Background(), Input{
		Topic: "Photosynthesis", AgeGroup: "11-13", KnowledgeLevel: "beginner",
	}, nil)

	if final.CurrentProcessing != string(StageDone) {
		t.Errorf("CurrentProcessing = %q, want done", final.CurrentProcessing)
	}
	if len(final.KeyPoints) != 3 {
		t.Fatalf("key points = %d, want 3", len(final.KeyPoints))
	}

	// The failed search degrades one point and records exactly one error.
	if len(final.Errors) != 1 || !strings.Contains(final.Errors[0], "Calvin Cycle") {
		t.Errorf("Errors = %v, want one entry for the failed search", final.Errors)
	}
	if _, ok := final.Images["Calvin Cycle"]; ok {
		t.Error("failed search should leave no image bundle for its point")
	}

	for _, title := range []string{"Chlorophyll", "Light Reactions"} {
		bundle, ok := final.Images[title]
		if !ok {
			t.Fatalf("missing image bundle for %q", title)
		}
		if len(bundle.URLs) != 2 {
			t.Errorf("%q URLs = %d, want 2", title, len(bundle.URLs))
		}
		if bundle.Best == nil {
			t.Fatalf("%q has no best image", title)
		}
		if bundle.Best.URL != bundle.URLs[0] {
			t.Errorf("%q best = %q, want first candidate %q", title, bundle.Best.URL, bundle.URLs[0])
		}
		if bundle.Best.Score != defaultRelevance {
			t.Errorf("%q score = %d, want %d", title, bundle.Best.Score, defaultRelevance)
		}
		if final.AnalyzedDescriptions[title] == "" {
			t.Errorf("missing vision description for %q", title)
		}
	}
	if _, ok := final.AnalyzedDescriptions["Calvin Cycle"]; ok {
		t.Error("point without an image should have no vision description")
	}

	if !strings.Contains(final.Quiz, "Question 1") {
		t.Errorf("Quiz = %q", final.Quiz)
	}
}

func TestPlanningFailureSkipsDownstreamStages(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: errors.New("model overloaded")},
	)
	fetcher := &fakeFetcher{
		search: func(string) ([]string, error) {
			t.Error("search should not run when planning failed")
			return nil, nil
		},
	}

	w := newTestWorkflow(mock, fetcher)
	final := w.Run(context.Background(), Input{Topic: "Photosynthesis"}, nil)

	if len(final.Errors) != 1 || !strings.Contains(final.Errors[0], "lesson_planning error") {
		t.Errorf("Errors = %v", final.Errors)
	}
	if len(final.KeyPoints) != 0 {
		t.Errorf("KeyPoints = %v, want empty", final.KeyPoints)
	}
	if final.Quiz != "" {
		t.Errorf("Quiz = %q, want empty", final.Quiz)
	}
	// Downstream stages pass through without provider calls.
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
	if final.CurrentProcessing != string(StageDone) {
		t.Errorf("CurrentProcessing = %q, want done", final.CurrentProcessing)
	}
}

func TestFirstSuccessfulDownloadWins(t *testing.T) {
	mock := llm.NewMockProvider(
		planResponse("Roots"),
		llm.MockResponse{Content: json.RawMessage("A root system diagram.")},
		llm.MockResponse{Content: json.RawMessage("quiz text")},
	)

	fetcher := &fakeFetcher{
		search: func(string) ([]string, error) {
			return []string{"http://img.test/broken", "http://img.test/good"}, nil
		},
		download: func(url string) (image.Image, error) {
			if strings.HasSuffix(url, "broken") {
				return nil, errors.New("404")
			}
			return testImage(), nil
		},
	}

	w := newTestWorkflow(mock, fetcher)
	final := w.Run(context.Background(), Input{Topic: "Plants"}, nil)

	bundle := final.Images["Roots"]
	if bundle.Best == nil {
		t.Fatal("no best image")
	}
	if bundle.Best.URL != "http://img.test/good" {
		t.Errorf("best = %q, want the first candidate that downloaded", bundle.Best.URL)
	}
	if len(bundle.Images) != 1 {
		t.Errorf("downloaded images = %d, want 1", len(bundle.Images))
	}
}

func TestQuizFailureKeepsEarlierResults(t *testing.T) {
	mock := llm.NewMockProvider(
		planResponse("Roots"),
		llm.MockResponse{Content: json.RawMessage("A root system diagram.")},
		llm.MockResponse{Err: errors.New("rate limited")},
	)
	fetcher := &fakeFetcher{
		search: func(string) ([]string, error) {
			return []string{"http://img.test/a"}, nil
		},
		download: func(string) (image.Image, error) {
			return testImage(), nil
		},
	}

	w := newTestWorkflow(mock, fetcher)
	final := w.Run(context.Background(), Input{Topic: "Plants"}, nil)

	if final.Quiz != "" {
		t.Errorf("Quiz = %q, want empty after failure", final.Quiz)
	}
	if len(final.Errors) != 1 || !strings.Contains(final.Errors[0], "quiz_generation error") {
		t.Errorf("Errors = %v", final.Errors)
	}
	// Earlier stage output survives the rollback.
	if final.Images["Roots"].Best == nil {
		t.Error("image results lost by quiz failure")
	}
	if final.AnalyzedDescriptions["Roots"] == "" {
		t.Error("vision description lost by quiz failure")
	}
}

func TestRunReportsProgressInStageOrder(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: errors.New("down")},
	)
	w := newTestWorkflow(mock, &fakeFetcher{})

	var stages []Stage
	var percents []int
	w.Run(context.Background(), Input{Topic: "Plants"}, func(p Progress) {
		stages = append(stages, p.Stage)
		percents = append(percents, p.Percent)
	})

	wantStages := []Stage{
		StagePlanning, StageImageSearch, StageImageProcessing,
		StageContentGeneration, StageQuizGeneration,
	}
	if len(stages) != len(wantStages) {
		t.Fatalf("progress calls = %d, want %d", len(stages), len(wantStages))
	}
	for i, want := range wantStages {
		if stages[i] != want {
			t.Errorf("stage %d = %q, want %q", i, stages[i], want)
		}
	}
	wantPercents := []int{15, 30, 60, 75, 95}
	for i, want := range wantPercents {
		if percents[i] != want {
			t.Errorf("percent %d = %d, want %d", i, percents[i], want)
		}
	}
}

func TestStateCloneIsolation(t *testing.T) {
	s := NewState(Input{Topic: "Plants"})
	s.Images["a"] = ImageBundle{URLs: []string{"u"}}

	c := s.clone()
	c.Images["b"] = ImageBundle{}
	c.Errors = append(c.Errors, "x")

	if _, ok := s.Images["b"]; ok {
		t.Error("clone shares Images map with original")
	}
	if len(s.Errors) != 0 {
		t.Error("clone shares Errors slice with original")
	}
}
