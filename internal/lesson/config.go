package lesson

// Config holds lesson pipeline tuning knobs.
type Config struct {
	// PointCount is the number of key points the planner must produce.
	PointCount int

	// DownloadsPerPoint caps how many candidate URLs are fetched per
	// key point during image processing.
	DownloadsPerPoint int

	PlanMaxTokens    int
	QuizMaxTokens    int
	VisionMaxTokens  int
	SectionMaxTokens int

	PlanTemperature    float64
	QuizTemperature    float64
	VisionTemperature  float64
	SectionTemperature float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		PointCount:         5,
		DownloadsPerPoint:  2,
		PlanMaxTokens:      4096,
		QuizMaxTokens:      2048,
		VisionMaxTokens:    2048,
		SectionMaxTokens:   4096,
		PlanTemperature:    0.7,
		QuizTemperature:    0.7,
		VisionTemperature:  0.3,
		SectionTemperature: 0.7,
	}
}
