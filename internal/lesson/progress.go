package lesson

// Progress is a derived projection of pipeline position, reported before
// each stage runs. It is informational only; callers that ignore it lose
// nothing but progress display.
type Progress struct {
	Stage   Stage  `json:"stage"`
	Percent int    `json:"progress"`
	Message string `json:"message"`

	// State is the snapshot produced so far (before the reported stage).
	State State `json:"-"`
}

// progressFor maps a stage to its display percentage and message.
func progressFor(stage Stage) (int, string) {
	switch stage {
	case StagePlanning:
		return 15, "Planning lesson..."
	case StageImageSearch:
		return 30, "Searching images..."
	case StageImageProcessing:
		return 60, "Analyzing images with vision AI..."
	case StageContentGeneration:
		return 75, "Generating content..."
	case StageQuizGeneration:
		return 95, "Creating quiz..."
	default:
		return 0, ""
	}
}
