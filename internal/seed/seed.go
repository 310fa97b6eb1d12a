// Package seed loads the embedded fixture data the app is born with: the
// lesson catalog, one quiz per lesson, and the initial progress record.
// Fixtures are schema-validated at load so a bad edit fails fast instead of
// surfacing as a grading bug later.
package seed

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/apper-canvas/fast-microlearn-frost/internal/catalog"
	"github.com/apper-canvas/fast-microlearn-frost/internal/progress"
	"github.com/apper-canvas/fast-microlearn-frost/internal/quiz"
)

//go:embed data
var dataFS embed.FS

// Data holds the three seeded value sets.
type Data struct {
	Lessons  []catalog.Lesson
	Quizzes  []quiz.Quiz
	Progress progress.Progress
}

// Load reads, validates, and unmarshals all embedded fixtures.
func Load() (*Data, error) {
	var d Data

	if err := loadFixture("data/lessons.json", "lessons", lessonsSchema, &d.Lessons); err != nil {
		return nil, err
	}
	if err := loadFixture("data/quizzes.json", "quizzes", quizzesSchema, &d.Quizzes); err != nil {
		return nil, err
	}
	if err := loadFixture("data/progress.json", "progress", progressSchema, &d.Progress); err != nil {
		return nil, err
	}

	if err := checkLessons(d.Lessons); err != nil {
		return nil, fmt.Errorf("lessons fixture: %w", err)
	}
	if err := checkQuizzes(d.Quizzes, d.Lessons); err != nil {
		return nil, fmt.Errorf("quizzes fixture: %w", err)
	}

	return &d, nil
}

// loadFixture reads an embedded file, validates it against the schema, and
// unmarshals it into out.
func loadFixture(path, name string, schema map[string]any, out any) error {
	raw, err := dataFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", path, err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("parse fixture %s: %w", path, err)
	}

	compiled, err := compileSchema(name, schema)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", name, err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("fixture %s: schema validation failed: %w", path, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("unmarshal fixture %s: %w", path, err)
	}
	return nil
}

// compileSchema compiles a schema definition expressed as a Go map.
// The jsonschema library expects a parsed JSON value, so the definition is
// round-tripped through encoding/json first.
func compileSchema(name string, definition map[string]any) (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	return c.Compile(schemaURL)
}

// checkLessons enforces the cross-field invariants of the lesson fixture.
func checkLessons(lessons []catalog.Lesson) error {
	seen := make(map[int]bool, len(lessons))
	for _, l := range lessons {
		if seen[l.ID] {
			return fmt.Errorf("duplicate lesson id %d", l.ID)
		}
		seen[l.ID] = true
	}
	return nil
}

// checkQuizzes enforces the cross-field invariants of the quiz fixture:
// unique quiz IDs, one quiz per lesson, every lesson reference resolvable,
// and every answer key inside its option list.
func checkQuizzes(quizzes []quiz.Quiz, lessons []catalog.Lesson) error {
	lessonIDs := make(map[int]bool, len(lessons))
	for _, l := range lessons {
		lessonIDs[l.ID] = true
	}

	seenQuiz := make(map[int]bool, len(quizzes))
	seenLesson := make(map[int]bool, len(quizzes))
	for _, q := range quizzes {
		if seenQuiz[q.ID] {
			return fmt.Errorf("duplicate quiz id %d", q.ID)
		}
		seenQuiz[q.ID] = true

		if !lessonIDs[q.LessonID] {
			return fmt.Errorf("quiz %d references unknown lesson %d", q.ID, q.LessonID)
		}
		if seenLesson[q.LessonID] {
			return fmt.Errorf("lesson %d has more than one quiz", q.LessonID)
		}
		seenLesson[q.LessonID] = true

		for i, question := range q.Questions {
			if question.CorrectAnswer < 0 || question.CorrectAnswer >= len(question.Options) {
				return fmt.Errorf("quiz %d question %d: correctAnswer %d outside options (%d)",
					q.ID, i, question.CorrectAnswer, len(question.Options))
			}
		}
	}
	return nil
}
