package form

import "github.com/imogenclam/visualmath/internal/model"

// FieldKind tells a generic form renderer how to draw a field.
type FieldKind string

const (
	FieldKindText     FieldKind = "text"
	FieldKindTextarea FieldKind = "textarea"
	FieldKindFile     FieldKind = "file"
	FieldKindSelect   FieldKind = "select"
)

// Option is one choice of a select field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field describes one input of the authoring form. The renderer draws
// fields in slice order.
type Field struct {
	Name        string    `json:"name"`
	Label       string    `json:"label"`
	Kind        FieldKind `json:"kind"`
	Required    bool      `json:"required"`
	Placeholder string    `json:"placeholder,omitempty"`
	Help        string    `json:"help,omitempty"`
	// Multiple and Accept apply to file fields only.
	Multiple bool     `json:"multiple,omitempty"`
	Accept   string   `json:"accept,omitempty"`
	Options  []Option `json:"options,omitempty"`
}

// Schema is the dynamic part of the authoring form for one module
// type. When Fields is empty, Prompt carries the placeholder text
// shown instead of inputs.
type Schema struct {
	ModuleType model.ModuleType `json:"module_type"`
	Fields     []Field          `json:"fields"`
	Prompt     string           `json:"prompt,omitempty"`
}

// Field name constants shared between the schema and content building.
const (
	FieldContent    = "content"
	FieldImages     = "images"
	FieldVisualFile = "visual_file"
	FieldConfig     = "config"
	FieldQuestions  = "questions"
	FieldTestConfig = "test_config"
	FieldTestSource = "test_source"
)
