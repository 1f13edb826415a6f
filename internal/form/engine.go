// Package form is the dynamic-form core of the authoring workflow:
// given a module-type discriminator it produces the matching input
// schema, and given submitted field values it produces a type-correct
// content payload. Both operations are pure data-shape transforms —
// no I/O, total over every discriminator, and malformed structured
// input always comes back as a FormatError value, never a panic.
package form

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/imogenclam/visualmath/internal/model"
	"github.com/imogenclam/visualmath/internal/validator"
)

// FormatError reports malformed structured form input. It is surfaced
// inline to the user and never aborts the authoring session.
type FormatError struct {
	Field   string
	Message string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("form: %s: %s", e.Field, e.Message)
}

// Values holds the raw submitted form fields by name. File fields
// carry an opaque reference string; the upload transport lives
// elsewhere.
type Values map[string]string

// promptSelectType is shown in place of inputs until a type is chosen.
const promptSelectType = "Select a module type"

const (
	questionsPlaceholder = `[
  {
    "question": "Question 1",
    "answers": ["Answer 1", "Answer 2", "Answer 3"],
    "correct": 0
  }
]`
	testConfigPlaceholder = `{
  "time_limit": 60,
  "questions_count": 10,
  "passing_score": 70,
  "show_results": true
}`
)

// ModuleTypes lists the selectable module types in menu order.
var ModuleTypes = []model.ModuleType{
	model.ModuleTypeText,
	model.ModuleTypeVisual,
	model.ModuleTypeQuestion,
	model.ModuleTypeTest,
}

// BuildSchema returns the input schema for a module type. Unknown or
// empty types get a prompt-only schema; the function never fails.
func BuildSchema(t model.ModuleType) Schema {
	switch t {
	case model.ModuleTypeText:
		return Schema{
			ModuleType: t,
			Fields: []Field{
				{
					Name:        FieldContent,
					Label:       "Module text",
					Kind:        FieldKindTextarea,
					Required:    true,
					Placeholder: "Enter the lecture text...",
					Help:        "LaTeX can be used for formulas: $E = mc^2$",
				},
				{
					Name:     FieldImages,
					Label:    "Upload images",
					Kind:     FieldKindFile,
					Multiple: true,
					Accept:   "image/*",
				},
			},
		}

	case model.ModuleTypeVisual:
		return Schema{
			ModuleType: t,
			Fields: []Field{
				{
					Name:     FieldVisualFile,
					Label:    "Visual module file",
					Kind:     FieldKindFile,
					Required: true,
					Help:     "Supported formats: .json, .xml from the VisualMath libraries",
				},
				{
					Name:        FieldConfig,
					Label:       "Configuration",
					Kind:        FieldKindTextarea,
					Placeholder: `{"width": 800, "height": 600, "interactive": true}`,
				},
			},
		}

	case model.ModuleTypeQuestion:
		return Schema{
			ModuleType: t,
			Fields: []Field{
				{
					Name:        FieldQuestions,
					Label:       "Questions (JSON format)",
					Kind:        FieldKindTextarea,
					Required:    true,
					Placeholder: questionsPlaceholder,
					Help:        `Every question needs a "question" field, an "answers" array and a "correct" answer index`,
				},
			},
		}

	case model.ModuleTypeTest:
		return Schema{
			ModuleType: t,
			Fields: []Field{
				{
					Name:        FieldTestConfig,
					Label:       "Test configuration",
					Kind:        FieldKindTextarea,
					Required:    true,
					Placeholder: testConfigPlaceholder,
				},
				{
					Name:  FieldTestSource,
					Label: "Take questions from",
					Kind:  FieldKindSelect,
					Options: []Option{
						{Value: string(model.QuestionSourceManual), Label: "Enter manually"},
						{Value: string(model.QuestionSourceLibrary), Label: "Question library"},
					},
				},
			},
		}

	default:
		return Schema{ModuleType: t, Prompt: promptSelectType}
	}
}

// BuildContent turns raw submitted fields into the content payload for
// a module type. Total over every discriminator: unknown types yield
// an empty payload, and malformed structured input yields a
// *FormatError carrying a user-presentable message.
func BuildContent(t model.ModuleType, values Values) (model.ContentPayload, error) {
	switch t {
	case model.ModuleTypeText:
		// Image references are attached after upload, never here.
		return model.TextContent{
			Text:   values[FieldContent],
			Images: []string{},
		}, nil

	case model.ModuleTypeVisual:
		return buildVisual(values)

	case model.ModuleTypeQuestion:
		return buildQuestions(values[FieldQuestions])

	case model.ModuleTypeTest:
		return buildTest(values)

	default:
		return model.EmptyContent{}, nil
	}
}

func buildVisual(values Values) (model.ContentPayload, error) {
	file := strings.TrimSpace(values[FieldVisualFile])
	if file == "" {
		return nil, &FormatError{Field: FieldVisualFile, Message: "a visual module file is required"}
	}

	content := model.VisualContent{File: file}

	// The configuration is free-form and deliberately unvalidated, but
	// the wire body must stay valid JSON. Text that does not parse is
	// carried as a JSON string instead.
	if cfg := strings.TrimSpace(values[FieldConfig]); cfg != "" {
		if json.Valid([]byte(cfg)) {
			content.Config = json.RawMessage(cfg)
		} else {
			quoted, _ := json.Marshal(cfg)
			content.Config = quoted
		}
	}
	return content, nil
}

func buildQuestions(raw string) (model.ContentPayload, error) {
	var questions model.QuestionContent
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		return nil, &FormatError{Field: FieldQuestions, Message: "invalid JSON format"}
	}
	if len(questions) == 0 {
		return nil, &FormatError{Field: FieldQuestions, Message: "at least one question is required"}
	}

	for i, q := range questions {
		if fields := validator.Struct(q); fields != nil {
			return nil, &FormatError{
				Field:   FieldQuestions,
				Message: fmt.Sprintf("question %d is malformed: %s", i+1, firstMessage(fields)),
			}
		}
		if q.Correct < 0 || q.Correct >= len(q.Answers) {
			return nil, &FormatError{
				Field:   FieldQuestions,
				Message: fmt.Sprintf("question %d: correct answer index %d is out of range", i+1, q.Correct),
			}
		}
	}
	return questions, nil
}

func buildTest(values Values) (model.ContentPayload, error) {
	var cfg model.TestConfig
	if err := json.Unmarshal([]byte(values[FieldTestConfig]), &cfg); err != nil {
		return nil, &FormatError{Field: FieldTestConfig, Message: "invalid JSON format"}
	}

	source := model.QuestionSource(values[FieldTestSource])
	if source != model.QuestionSourceLibrary {
		source = model.QuestionSourceManual
	}

	return model.TestContent{TestConfig: cfg, Source: source}, nil
}

// firstMessage flattens a field error map into a single message for
// inline display.
func firstMessage(fields map[string]string) string {
	parts := make([]string, 0, len(fields))
	for _, msg := range fields {
		parts = append(parts, msg)
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}
