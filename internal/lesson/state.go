package lesson

import "maps"

// Stage identifies one step of the fixed lesson pipeline.
type Stage string

const (
	StageInit              Stage = "initializing"
	StagePlanning          Stage = "lesson_planning"
	StageImageSearch       Stage = "image_search"
	StageImageProcessing   Stage = "image_processing"
	StageContentGeneration Stage = "content_generation"
	StageQuizGeneration    Stage = "quiz_generation"
	StageDone              Stage = "done"
)

// Input is the caller-supplied lesson request.
type Input struct {
	Topic          string `json:"topic"`
	AgeGroup       string `json:"age_group"`
	KnowledgeLevel string `json:"knowledge_level"`
}

// State is the record threaded through the pipeline. Stages never mutate
// their input state; each returns a fresh copy with only its own fields
// updated, so a failed stage can hand back the prior state untouched
// except for one appended error.
type State struct {
	Topic          string `json:"topic"`
	AgeGroup       string `json:"age_group"`
	KnowledgeLevel string `json:"knowledge_level"`

	// Plan is the structured lesson plan. Nil until Planning succeeds.
	Plan *Plan `json:"lesson_plan,omitempty"`

	// KeyPoints is set once by Planning and never reordered or resized
	// afterwards. Later stages only annotate the per-title maps below.
	KeyPoints []KeyPoint `json:"key_points"`

	// Images maps key-point title to the candidate images found for it.
	Images map[string]ImageBundle `json:"images_data"`

	// AnalyzedDescriptions maps key-point title to the vision model's
	// description of the actual downloaded image.
	AnalyzedDescriptions map[string]string `json:"analyzed_descriptions"`

	// Quiz is the generated quiz text. Empty if quiz generation failed.
	Quiz string `json:"quiz,omitempty"`

	// CurrentProcessing is a progress tag naming the last completed stage.
	CurrentProcessing string `json:"current_processing"`

	// Errors collects one human-readable message per recovered fault,
	// append-only in stage order.
	Errors []string `json:"errors"`
}

// Plan is the structured output of the Planning stage.
type Plan struct {
	Overview  string     `json:"overview"`
	KeyPoints []KeyPoint `json:"key_points"`
}

// KeyPoint is one teachable sub-concept. PointTitle is unique within a
// lesson and joins a key point to its entries in the per-title maps.
type KeyPoint struct {
	PointTitle        string `json:"point_title"`
	Explanation       string `json:"explanation"`
	VisualType        string `json:"visual_type"`
	VisualDescription string `json:"visual_description"`
	SearchQuery       string `json:"search_query"`
}

// ImageBundle holds the candidate images for one key point. It carries
// URLs and scores only; decoded bitmaps live in stage-internal records
// and never appear in State.
type ImageBundle struct {
	// URLs are the candidate image URLs in search-engine rank order.
	URLs []string `json:"urls"`

	// Images are the successfully downloaded candidates.
	Images []ImageRef `json:"images"`

	// Best is the first candidate that downloaded successfully, in rank
	// order. Once set it is never replaced.
	Best *ImageRef `json:"best_image,omitempty"`
}

// ImageRef identifies one downloaded image.
type ImageRef struct {
	URL string `json:"url"`

	// Score is a relevance placeholder. No real ranking is performed;
	// every successful download gets the same default.
	Score int `json:"relevance_score"`
}

// NewState creates the initial pipeline state for a lesson request.
func NewState(input Input) State {
	return State{
		Topic:                input.Topic,
		AgeGroup:             input.AgeGroup,
		KnowledgeLevel:       input.KnowledgeLevel,
		KeyPoints:            []KeyPoint{},
		Images:               map[string]ImageBundle{},
		AnalyzedDescriptions: map[string]string{},
		Errors:               []string{},
		CurrentProcessing:    string(StageInit),
	}
}

// Input returns the immutable request fields of the state.
func (s State) Input() Input {
	return Input{
		Topic:          s.Topic,
		AgeGroup:       s.AgeGroup,
		KnowledgeLevel: s.KnowledgeLevel,
	}
}

// clone returns a copy of s whose maps and slices can be modified without
// affecting the original.
func (s State) clone() State {
	next := s
	next.KeyPoints = append([]KeyPoint(nil), s.KeyPoints...)
	next.Images = maps.Clone(s.Images)
	next.AnalyzedDescriptions = maps.Clone(s.AnalyzedDescriptions)
	next.Errors = append([]string(nil), s.Errors...)
	return next
}

// withError returns a copy of s with one message appended to Errors and
// every other field unchanged.
func (s State) withError(msg string) State {
	next := s.clone()
	next.Errors = append(next.Errors, msg)
	return next
}
