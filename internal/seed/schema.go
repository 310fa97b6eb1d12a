package seed

// Fixture schemas. Cross-field rules the schemas cannot express (unique IDs,
// answer indexes inside the option list, quiz-to-lesson references) are
// checked in Go after unmarshalling.

var lessonsSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []any{"Id", "category", "title", "content", "tags", "duration", "difficulty"},
		"properties": map[string]any{
			"Id": map[string]any{"type": "integer", "minimum": 1},
			"category": map[string]any{
				"type": "string",
				"enum": []any{"Psychology", "Technology", "Productivity"},
			},
			"title":   map[string]any{"type": "string", "minLength": 1},
			"content": map[string]any{"type": "string", "minLength": 1},
			"tags": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"duration":    map[string]any{"type": "integer", "minimum": 1},
			"difficulty":  map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
			"completedAt": map[string]any{"type": "string", "format": "date-time"},
		},
		"additionalProperties": false,
	},
}

var quizzesSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []any{"Id", "lessonId", "questions"},
		"properties": map[string]any{
			"Id":       map[string]any{"type": "integer", "minimum": 1},
			"lessonId": map[string]any{"type": "integer", "minimum": 1},
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":     "object",
					"required": []any{"question", "options", "correctAnswer"},
					"properties": map[string]any{
						"question": map[string]any{"type": "string", "minLength": 1},
						"options": map[string]any{
							"type":     "array",
							"minItems": 2,
							"items":    map[string]any{"type": "string"},
						},
						"correctAnswer": map[string]any{"type": "integer", "minimum": 0},
						"explanation":   map[string]any{"type": "string"},
					},
					"additionalProperties": false,
				},
			},
		},
		"additionalProperties": false,
	},
}

var progressSchema = map[string]any{
	"type":     "object",
	"required": []any{"streak", "totalLessons", "categoryScores", "preferredDifficulty"},
	"properties": map[string]any{
		"streak":       map[string]any{"type": "integer", "minimum": 0},
		"lastActivity": map[string]any{"type": "string", "format": "date-time"},
		"totalLessons": map[string]any{"type": "integer", "minimum": 0},
		"categoryScores": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"category", "scores"},
				"properties": map[string]any{
					"category": map[string]any{"type": "string", "minLength": 1},
					"scores": map[string]any{
						"type":     "array",
						"maxItems": 10,
						"items":    map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
					},
				},
				"additionalProperties": false,
			},
		},
		"preferredDifficulty": map[string]any{"type": "number", "minimum": 1, "maximum": 5},
	},
	"additionalProperties": false,
}
