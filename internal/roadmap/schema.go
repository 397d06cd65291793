package roadmap

import "github.com/abhisek/visualearn/internal/llm"

// MetadataSchema defines the JSON schema for the roadmap header.
var MetadataSchema = &llm.Schema{
	Name:        "roadmap-metadata",
	Description: "Learning roadmap header: overview, duration, prerequisites, phase count and career paths",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topic": map[string]any{
				"type": "string",
			},
			"description": map[string]any{
				"type":        "string",
				"description": "Brief 2-3 sentence overview",
			},
			"totalDuration": map[string]any{
				"type":        "string",
				"description": "Total time estimate, e.g. '6-9 months'",
			},
			"prerequisites": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 prerequisites",
			},
			"totalPhases": map[string]any{
				"type":        "integer",
				"description": "Number of phases in the roadmap (typically 5)",
			},
			"careerPaths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "3-5 career paths this topic leads to",
			},
		},
		"required": []any{
			"topic", "description", "totalDuration",
			"prerequisites", "totalPhases", "careerPaths",
		},
		"additionalProperties": false,
	},
}

// PhaseSchema defines the JSON schema for one roadmap phase.
var PhaseSchema = &llm.Schema{
	Name:        "roadmap-phase",
	Description: "One phase of a learning roadmap",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"phase": map[string]any{
				"type":        "string",
				"description": "Phase label, e.g. 'Phase 2'",
			},
			"title": map[string]any{
				"type":        "string",
				"description": "Clear title for this phase",
			},
			"duration": map[string]any{
				"type":        "string",
				"description": "Time needed, e.g. '4-6 weeks'",
			},
			"topics": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "5 topics covered in this phase",
			},
			"resources": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-3 resource types",
			},
		},
		"required":             []any{"phase", "title", "duration", "topics", "resources"},
		"additionalProperties": false,
	},
}
