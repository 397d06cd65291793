package roadmap

import "encoding/json"

// Metadata is the roadmap header, produced by one generation call before
// any phase. TotalPhases declares how many phase records will follow.
type Metadata struct {
	Topic         string   `json:"topic"`
	Description   string   `json:"description"`
	TotalDuration string   `json:"totalDuration"`
	Prerequisites []string `json:"prerequisites"`
	TotalPhases   int      `json:"totalPhases"`
	CareerPaths   []string `json:"careerPaths"`
}

// Phase is one step of the roadmap, generated sequentially so each phase
// can build on the titles of the phases before it.
type Phase struct {
	Phase     string   `json:"phase"`
	Title     string   `json:"title"`
	Duration  string   `json:"duration"`
	Topics    []string `json:"topics"`
	Resources []string `json:"resources"`
}

// EventType tags roadmap stream records.
type EventType string

const (
	EventMetadata EventType = "metadata"
	EventPhase    EventType = "phase"
	EventError    EventType = "error"
)

// Event is one record of the roadmap stream: the metadata header, a
// completed phase, or a terminal error.
type Event struct {
	Type     EventType
	Metadata *Metadata
	Phase    *Phase
	Err      string
}

// MarshalJSON emits the wire shape streamed to clients:
// {"type":"metadata","data":{...}}, {"type":"phase","data":{...}} or
// {"type":"error","error":"..."}.
func (e Event) MarshalJSON() ([]byte, error) {
	switch e.Type {
	case EventMetadata:
		return json.Marshal(struct {
			Type EventType `json:"type"`
			Data *Metadata `json:"data"`
		}{e.Type, e.Metadata})
	case EventPhase:
		return json.Marshal(struct {
			Type EventType `json:"type"`
			Data *Phase    `json:"data"`
		}{e.Type, e.Phase})
	default:
		return json.Marshal(struct {
			Type EventType `json:"type"`
			Err  string    `json:"error"`
		}{EventError, e.Err})
	}
}
