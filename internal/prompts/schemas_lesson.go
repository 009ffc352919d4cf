package prompts

func DailyLessonPlanSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":                map[string]any{"type": "string"},
			"content_standard":     map[string]any{"type": "string"},
			"performance_standard": map[string]any{"type": "string"},
			"learning_competency":  map[string]any{"type": "string"},
			// Three SMART behavioral objectives.
			"objectives": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 3,
				"maxItems": 3,
			},
			"topic":      map[string]any{"type": "string"},
			"references": StringArraySchema(),
			"materials":  StringArraySchema(),
			"procedure": map[string]any{
				"type":  "array",
				"items": ProcedurePartSchema(),
			},
			"evaluation": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"answer":   map[string]any{"type": "string"},
					},
					"required":             []string{"question", "answer"},
					"additionalProperties": false,
				},
			},
			"additional_activities": map[string]any{"type": "string"},
			"remarks":               map[string]any{"type": "string"},
			"reflection":            map[string]any{"type": "string"},
		},
		"required": []string{
			"title", "content_standard", "performance_standard",
			"learning_competency", "objectives", "topic", "references",
			"materials", "procedure", "evaluation", "additional_activities",
			"remarks", "reflection",
		},
		"additionalProperties": false,
	}
}

func DailyLessonLogSchema() map[string]any {
	daySchema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"day":       EnumSchema("Monday", "Tuesday", "Wednesday", "Thursday", "Friday"),
			"objective": map[string]any{"type": "string"},
			"content":   map[string]any{"type": "string"},
			"learning_resources": StringArraySchema(),
			"procedures": map[string]any{
				"type":  "array",
				"items": ProcedurePartSchema(),
			},
			"remarks":    map[string]any{"type": "string"},
			"reflection": map[string]any{"type": "string"},
		},
		"required": []string{
			"day", "objective", "content", "learning_resources", "procedures",
			"remarks", "reflection",
		},
		"additionalProperties": false,
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":                map[string]any{"type": "string"},
			"content_standard":     map[string]any{"type": "string"},
			"performance_standard": map[string]any{"type": "string"},
			"days": map[string]any{
				"type":     "array",
				"items":    daySchema,
				"minItems": 5,
				"maxItems": 5,
			},
		},
		"required": []string{
			"title", "content_standard", "performance_standard", "days",
		},
		"additionalProperties": false,
	}
}

func ActivitySheetSchema() map[string]any {
	activitySchema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":      map[string]any{"type": "string"},
			"directions": map[string]any{"type": "string"},
			"items":      StringArraySchema(),
		},
		"required":             []string{"title", "directions", "items"},
		"additionalProperties": false,
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":                  map[string]any{"type": "string"},
			"background_information": map[string]any{"type": "string"},
			"learning_competency":    map[string]any{"type": "string"},
			"activities": map[string]any{
				"type":  "array",
				"items": activitySchema,
			},
			"reflection": map[string]any{"type": "string"},
			"references": StringArraySchema(),
			"answer_key": StringArraySchema(),
		},
		"required": []string{
			"title", "background_information", "learning_competency",
			"activities", "reflection", "references", "answer_key",
		},
		"additionalProperties": false,
	}
}
