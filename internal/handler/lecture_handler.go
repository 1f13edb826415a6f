package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imogenclam/visualmath/internal/middleware"
	"github.com/imogenclam/visualmath/internal/response"
)

type LectureHandler struct{}

func NewLectureHandler() *LectureHandler {
	return &LectureHandler{}
}

// Search godoc
// GET /api/v1/dashboard/lectures?search=<text>&sort=<key>
//
// Filtered, sorted lecture listing. An empty result carries the
// placeholder text; a failed query quietly re-serves the previous
// listing — the page never shows a broken list.
func (h *LectureHandler) Search(c *gin.Context) {
	ctrl := middleware.GetController(c)

	listing := ctrl.SearchLectures(c.Request.Context(), c.Query("search"), c.Query("sort"))
	response.Success(c, http.StatusOK, gin.H{"listing": listing})
}
