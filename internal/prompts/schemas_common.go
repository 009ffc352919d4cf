package prompts

// ---------- shared fragments ----------
//
// Structured-output schemas are strict: for object schemas
// additionalProperties is always false and required lists EVERY key in
// properties. Semantics that strictness cannot express (counts that must sum,
// placements that must be a permutation) are enforced in content.Validate.

func StringArraySchema() map[string]any {
	return map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}
}

func IntArraySchema() map[string]any {
	return map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "integer"},
	}
}

func EnumSchema(values ...string) map[string]any {
	return map[string]any{
		"type": "string",
		"enum": values,
	}
}

func ProcedurePartSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"part":     map[string]any{"type": "string"},
			"activity": map[string]any{"type": "string"},
		},
		"required":             []string{"part", "activity"},
		"additionalProperties": false,
	}
}

func MCQuestionSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"number":   map[string]any{"type": "integer"},
			"question": map[string]any{"type": "string"},
			// Exactly four option texts, without the letter prefix.
			"options": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 4,
				"maxItems": 4,
			},
			"answer":      EnumSchema("A", "B", "C", "D"),
			"explanation": map[string]any{"type": "string"},
		},
		"required":             []string{"number", "question", "options", "answer", "explanation"},
		"additionalProperties": false,
	}
}

func MCQuestionArraySchema() map[string]any {
	return map[string]any{
		"type":  "array",
		"items": MCQuestionSchema(),
	}
}
