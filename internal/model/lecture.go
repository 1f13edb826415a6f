package model

import "time"

// Lecture is a published lecture summary returned by the backend's
// filtered listing endpoint.
type Lecture struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	CourseID    int       `json:"course_id"`
	CourseName  string    `json:"course_name"`
	AuthorID    int       `json:"author_id"`
	AuthorName  string    `json:"author_name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// LectureCard is the render-ready projection of a Lecture for the
// listing view: same summary fields plus a display-formatted date.
type LectureCard struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	CourseName  string `json:"course_name"`
	AuthorName  string `json:"author_name"`
	DisplayDate string `json:"display_date"`
}

// Card converts a lecture into its listing projection.
func (l Lecture) Card() LectureCard {
	return LectureCard{
		ID:          l.ID,
		Title:       l.Title,
		CourseName:  l.CourseName,
		AuthorName:  l.AuthorName,
		DisplayDate: l.CreatedAt.Format("02.01.2006"),
	}
}
