package model

import "encoding/json"

// ModuleType discriminates the shape of a module's content payload.
type ModuleType string

const (
	ModuleTypeText     ModuleType = "text"
	ModuleTypeVisual   ModuleType = "visual"
	ModuleTypeQuestion ModuleType = "question"
	ModuleTypeTest     ModuleType = "test"
)

// Known reports whether t is one of the declared module types.
func (t ModuleType) Known() bool {
	switch t {
	case ModuleTypeText, ModuleTypeVisual, ModuleTypeQuestion, ModuleTypeTest:
		return true
	}
	return false
}

// ContentPayload is the tagged union of module content shapes. A
// payload is only well-formed with respect to its declared type.
type ContentPayload interface {
	ContentType() ModuleType
}

// TextContent is the payload of a text module. Images holds opaque
// references to attached images; the upload transport lives elsewhere,
// so a freshly authored module starts with an empty list.
type TextContent struct {
	Text   string   `json:"text"`
	Images []string `json:"images"`
}

func (TextContent) ContentType() ModuleType { return ModuleTypeText }

// VisualContent is the payload of a visual module: an opaque file
// reference plus a free-form configuration object. Neither is
// validated here beyond the file being present.
type VisualContent struct {
	File   string          `json:"file"`
	Config json.RawMessage `json:"config,omitempty"`
}

func (VisualContent) ContentType() ModuleType { return ModuleTypeVisual }

// Question is a single authored question with its answer options.
// Correct is an index into Answers.
type Question struct {
	Question string   `json:"question" binding:"required"`
	Answers  []string `json:"answers" binding:"min=1"`
	Correct  int      `json:"correct" binding:"min=0"`
}

// QuestionContent is the payload of a question module: an ordered
// question sequence, serialized as a bare JSON array on the wire.
type QuestionContent []Question

func (QuestionContent) ContentType() ModuleType { return ModuleTypeQuestion }

// QuestionSource discriminates where a test draws its questions from.
type QuestionSource string

const (
	QuestionSourceManual  QuestionSource = "manual"
	QuestionSourceLibrary QuestionSource = "library"
)

// TestConfig is the free-form configuration of a test module.
type TestConfig struct {
	TimeLimit        int  `json:"time_limit"`
	QuestionsCount   int  `json:"questions_count"`
	PassingScore     int  `json:"passing_score"`
	ShuffleQuestions bool `json:"shuffle_questions,omitempty"`
	ShowResults      bool `json:"show_results"`
}

// TestContent is the payload of a test module: its configuration plus
// the question-source discriminator.
type TestContent struct {
	TestConfig
	Source QuestionSource `json:"source"`
}

func (TestContent) ContentType() ModuleType { return ModuleTypeTest }

// EmptyContent is the payload produced for an unknown or absent module
// type. It serializes as an empty JSON object.
type EmptyContent struct{}

func (EmptyContent) ContentType() ModuleType { return "" }
