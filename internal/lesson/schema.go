package lesson

import "github.com/abhisek/visualearn/internal/llm"

// PlanSchema defines the JSON schema for lesson plan generation.
// The key_points bounds pin the planner to exactly five points.
var PlanSchema = &llm.Schema{
	Name:        "lesson-plan",
	Description: "A lesson plan with an overview and exactly five key points, each with a target visual",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"overview": map[string]any{
				"type":        "string",
				"description": "Brief description of the overall teaching approach (2-3 sentences)",
			},
			"key_points": map[string]any{
				"type":        "array",
				"minItems":    5,
				"maxItems":    5,
				"description": "Exactly 5 key concepts covering the topic",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"point_title": map[string]any{
							"type":        "string",
							"description": "Short unique title of the key concept",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Brief description of what needs to be explained",
						},
						"visual_type": map[string]any{
							"type":        "string",
							"description": "Type of image needed (diagram, flowchart, illustration, photograph, etc.)",
						},
						"visual_description": map[string]any{
							"type":        "string",
							"description": "Detailed description of the ideal visual: labels, colors, components, structure",
						},
						"search_query": map[string]any{
							"type":        "string",
							"description": "Specific image search query to find this visual",
						},
					},
					"required": []any{
						"point_title", "explanation", "visual_type",
						"visual_description", "search_query",
					},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"overview", "key_points"},
		"additionalProperties": false,
	},
}
