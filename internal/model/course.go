package model

// Course is reference data for the authoring form's subject selector.
type Course struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DefaultCourses is the built-in catalog served when the backend does
// not expose a course endpoint. Mirrors the platform's stock subjects.
var DefaultCourses = []Course{
	{ID: 1, Name: "Mathematical Analysis"},
	{ID: 2, Name: "Linear Algebra and Analytic Geometry"},
	{ID: 3, Name: "Discrete Mathematics"},
	{ID: 4, Name: "Economics"},
}
