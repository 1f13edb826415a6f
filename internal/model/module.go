package model

import (
	"encoding/json"
	"time"
)

// ModuleDraft is an in-progress, not-yet-submitted module under
// authoring. Content's shape is determined entirely by ModuleType.
type ModuleDraft struct {
	Title      string         `json:"title"`
	CourseID   int            `json:"course_id"`
	ModuleType ModuleType     `json:"module_type"`
	Content    ContentPayload `json:"content"`
}

// CreateModuleRequest is the wire body for the backend's module
// creation endpoint.
type CreateModuleRequest struct {
	Title      string          `json:"title"`
	CourseID   int             `json:"course_id"`
	ModuleType ModuleType      `json:"module_type"`
	Content    json.RawMessage `json:"content"`
}

// Request serializes the draft's content into the create-request body.
func (d ModuleDraft) Request() (CreateModuleRequest, error) {
	content, err := json.Marshal(d.Content)
	if err != nil {
		return CreateModuleRequest{}, err
	}
	return CreateModuleRequest{
		Title:      d.Title,
		CourseID:   d.CourseID,
		ModuleType: d.ModuleType,
		Content:    content,
	}, nil
}

// SubmitModuleForm is the authoring form submission from the page.
// Fields carries the type-dependent dynamic inputs by schema field
// name; its shape is judged by the form engine, not here.
type SubmitModuleForm struct {
	Title      string            `json:"title" binding:"required,min=1,max=200"`
	CourseID   int               `json:"course_id" binding:"required,min=1"`
	ModuleType string            `json:"module_type" binding:"required"`
	Fields     map[string]string `json:"fields"`
}

// Module is a stored module as returned by the backend after creation.
type Module struct {
	ID         int             `json:"id"`
	Title      string          `json:"title"`
	CourseID   int             `json:"course_id"`
	CourseName string          `json:"course_name,omitempty"`
	AuthorID   int             `json:"author_id,omitempty"`
	AuthorName string          `json:"author_name,omitempty"`
	ModuleType ModuleType      `json:"module_type"`
	Content    json.RawMessage `json:"content"`
	Published  bool            `json:"published"`
	CreatedAt  time.Time       `json:"created_at"`
}
