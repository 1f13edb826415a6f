package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imogenclam/visualmath/internal/dashboard"
	"github.com/imogenclam/visualmath/internal/middleware"
	"github.com/imogenclam/visualmath/internal/response"
	"github.com/imogenclam/visualmath/internal/session"
)

type DashboardHandler struct {
	manager  *dashboard.Manager
	loginURL string
}

func NewDashboardHandler(manager *dashboard.Manager, loginURL string) *DashboardHandler {
	return &DashboardHandler{manager: manager, loginURL: loginURL}
}

// GetState godoc
// GET /api/v1/dashboard/state
//
// Page-load entry point: refreshes the profile and returns the full
// view state. A token the backend rejects collapses to SESSION_INVALID
// with the login URL; the page navigates there.
func (h *DashboardHandler) GetState(c *gin.Context) {
	ctrl := middleware.GetController(c)

	state, err := ctrl.Init(c.Request.Context())
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			response.AbortLogin(c, response.ErrSessionInvalid, h.loginURL)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"state": state})
}

// SwitchSection godoc
// POST /api/v1/dashboard/sections/:id
//
// Navigation event. Unknown section ids leave the current section
// active; the returned state reflects whatever is actually visible.
func (h *DashboardHandler) SwitchSection(c *gin.Context) {
	ctrl := middleware.GetController(c)

	state := ctrl.SwitchSection(c.Request.Context(), c.Param("id"))
	response.Success(c, http.StatusOK, gin.H{"state": state})
}

// Logout godoc
// POST /api/v1/dashboard/logout
func (h *DashboardHandler) Logout(c *gin.Context) {
	ctrl := middleware.GetController(c)

	token := ctrl.Token()
	loginURL := ctrl.Logout(c.Request.Context())
	h.manager.Drop(token)

	response.Success(c, http.StatusOK, gin.H{"login_url": loginURL})
}
