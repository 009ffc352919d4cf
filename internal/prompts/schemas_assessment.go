package prompts

func QuizSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":      map[string]any{"type": "string"},
			"directions": map[string]any{"type": "string"},
			"questions":  MCQuestionArraySchema(),
		},
		"required":             []string{"title", "directions", "questions"},
		"additionalProperties": false,
	}
}

func ExamTOSSchema() map[string]any {
	rowSchema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"objective": map[string]any{"type": "string"},
			"topic":     map[string]any{"type": "string"},
			"hours":     map[string]any{"type": "number"},
			"percent":   map[string]any{"type": "number"},
			// Item count per Bloom cognitive level for this row.
			"remembering":   map[string]any{"type": "integer"},
			"understanding": map[string]any{"type": "integer"},
			"applying":      map[string]any{"type": "integer"},
			"analyzing":     map[string]any{"type": "integer"},
			"evaluating":    map[string]any{"type": "integer"},
			"creating":      map[string]any{"type": "integer"},
			"total_items":   map[string]any{"type": "integer"},
			// Item numbers this row occupies on the exam.
			"placement": IntArraySchema(),
		},
		"required": []string{
			"objective", "topic", "hours", "percent", "remembering",
			"understanding", "applying", "analyzing", "evaluating", "creating",
			"total_items", "placement",
		},
		"additionalProperties": false,
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":      map[string]any{"type": "string"},
			"directions": map[string]any{"type": "string"},
			"rows": map[string]any{
				"type":  "array",
				"items": rowSchema,
			},
		},
		"required":             []string{"title", "directions", "rows"},
		"additionalProperties": false,
	}
}

func ExamItemsSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": MCQuestionArraySchema(),
		},
		"required":             []string{"questions"},
		"additionalProperties": false,
	}
}
