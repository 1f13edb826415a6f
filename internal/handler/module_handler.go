package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imogenclam/visualmath/internal/backend"
	"github.com/imogenclam/visualmath/internal/dashboard"
	"github.com/imogenclam/visualmath/internal/form"
	"github.com/imogenclam/visualmath/internal/middleware"
	"github.com/imogenclam/visualmath/internal/model"
	"github.com/imogenclam/visualmath/internal/response"
	"github.com/imogenclam/visualmath/internal/validator"
)

type ModuleHandler struct{}

func NewModuleHandler() *ModuleHandler {
	return &ModuleHandler{}
}

// GetSchema godoc
// GET /api/v1/dashboard/modules/schema?type=<moduleType>
//
// Returns the dynamic field set for the selected module type. Every
// type, including none at all, has a schema — unknown types get the
// placeholder prompt.
func (h *ModuleHandler) GetSchema(c *gin.Context) {
	schema := form.BuildSchema(model.ModuleType(c.Query("type")))
	response.Success(c, http.StatusOK, gin.H{"schema": schema})
}

// Submit godoc
// POST /api/v1/dashboard/modules
//
// Assembles and submits the authored module. Malformed structured
// content comes back as a 400 with the field flagged; a backend
// rejection passes the server's error text through; a transport
// failure gets its own distinct message. The draft survives every
// failure — only a success resets the form.
func (h *ModuleHandler) Submit(c *gin.Context) {
	ctrl := middleware.GetController(c)

	var req model.SubmitModuleForm
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := ctrl.SubmitModule(c.Request.Context(), dashboard.SubmitInput{
		Title:      req.Title,
		CourseID:   req.CourseID,
		ModuleType: model.ModuleType(req.ModuleType),
		Fields:     form.Values(req.Fields),
	})
	if err != nil {
		var formatErr *form.FormatError
		var apiErr *backend.APIError
		switch {
		case errors.As(err, &formatErr):
			response.FailWithFields(c, http.StatusBadRequest, response.ErrContentFormat,
				map[string]string{formatErr.Field: formatErr.Message})
		case errors.As(err, &apiErr):
			response.FailWithMessage(c, http.StatusBadGateway, response.ErrModuleRejected, apiErr.Message)
		default:
			response.Fail(c, http.StatusServiceUnavailable, response.ErrBackendDown)
		}
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// GetCourses godoc
// GET /api/v1/dashboard/courses
//
// Subject catalog for the authoring form, served through the same
// loader (and fallback rules) the section switch uses.
func (h *ModuleHandler) GetCourses(c *gin.Context) {
	ctrl := middleware.GetController(c)

	response.Success(c, http.StatusOK, gin.H{"courses": ctrl.Courses(c.Request.Context())})
}
