// Package dashboard is the view-state controller of the single-page
// dashboard: it gates on the session, keeps the user record fresh,
// reveals role-appropriate navigation, switches sections, and mediates
// the module-authoring workflow against the platform backend.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/imogenclam/visualmath/internal/backend"
	"github.com/imogenclam/visualmath/internal/form"
	"github.com/imogenclam/visualmath/internal/model"
	"github.com/imogenclam/visualmath/internal/session"
	"github.com/imogenclam/visualmath/internal/view"
)

// Controller holds the live state of one authenticated dashboard
// session. All event handling is serialized by a mutex, mirroring the
// page's single-threaded event model; redundant loader invocations are
// tolerated rather than coalesced.
type Controller struct {
	mu     sync.Mutex
	log    zerolog.Logger
	guard  *session.Guard
	client *backend.Client

	sess     model.Session
	sections *view.Router
	courses  []model.Course

	// draft is the in-progress module, retained across failed
	// submissions so the user can correct and resubmit.
	draft *model.ModuleDraft

	// lastListing is the previously rendered lecture list, retained
	// when a later search fails.
	lastListing LectureListing
}

// New gates a controller on the session guard. It returns
// session.ErrNoSession when no usable credential exists — the caller
// must then perform the hard navigation to login and create nothing.
func New(ctx context.Context, guard *session.Guard, client *backend.Client, log zerolog.Logger, token string) (*Controller, error) {
	sess, err := guard.Load(ctx, token)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		log:    log.With().Str("component", "dashboard").Logger(),
		guard:  guard,
		client: client,
		sess:   sess,
	}

	c.sections = view.NewRouter(
		view.SectionHome,
		view.SectionProfile,
		view.SectionCreateModule,
		view.SectionLectures,
	)
	// The authoring section needs the course catalog; the lecture
	// section loads nothing up front — search is user-triggered.
	c.sections.Register(view.SectionCreateModule, c.loadCourses)

	return c, nil
}

// Init refreshes the cached profile and returns the initial view
// state. A backend rejection of the token collapses to
// session.ErrNoSession (expired, revoked and malformed all mean
// re-authenticate); a transport failure keeps the stale cached profile
// on display and is only logged.
func (c *Controller) Init(ctx context.Context) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	user, err := c.client.Profile(ctx, c.sess.Token)
	switch {
	case err == nil:
		c.sess.User = user
		c.guard.SaveUser(ctx, c.sess.Token, user)
	case isAPIError(err):
		return State{}, fmt.Errorf("profile rejected: %w", session.ErrNoSession)
	default:
		c.log.Warn().Err(err).Msg("profile refresh failed, keeping cached profile")
	}

	return c.state(), nil
}

// State returns the current view state without side effects.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state()
}

// SwitchSection activates a content section and runs its loader.
// Unknown ids leave the current section active. Loader failures never
// undo the switch.
func (c *Controller) SwitchSection(ctx context.Context, id string) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	switched, err := c.sections.SwitchTo(ctx, id)
	if !switched {
		c.log.Debug().Str("section", id).Msg("ignoring switch to unknown section")
	}
	if err != nil {
		c.log.Warn().Err(err).Str("section", id).Msg("section loader failed")
	}
	return c.state()
}

// SubmitInput carries one authoring form submission.
type SubmitInput struct {
	Title      string
	CourseID   int
	ModuleType model.ModuleType
	Fields     form.Values
}

// SubmitResult reports a successful submission. Reset tells the page
// to return the form to its empty placeholder state.
type SubmitResult struct {
	Message string `json:"message"`
	Reset   bool   `json:"reset"`
}

// SubmitModule assembles the draft from raw form fields and posts it.
// A *form.FormatError means the structured input was malformed; a
// *backend.APIError carries the server's rejection text; a
// *backend.NetworkError means the request never got a verdict. In
// every failure case the draft is retained for correction and
// resubmission — nothing retries automatically.
func (c *Controller) SubmitModule(ctx context.Context, input SubmitInput) (SubmitResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	content, err := form.BuildContent(input.ModuleType, input.Fields)
	if err != nil {
		return SubmitResult{}, err
	}

	draft := model.ModuleDraft{
		Title:      input.Title,
		CourseID:   input.CourseID,
		ModuleType: input.ModuleType,
		Content:    content,
	}
	c.draft = &draft

	req, err := draft.Request()
	if err != nil {
		return SubmitResult{}, fmt.Errorf("serialize draft: %w", err)
	}

	if err := c.client.CreateModule(ctx, c.sess.Token, req); err != nil {
		return SubmitResult{}, err
	}

	c.draft = nil
	return SubmitResult{Message: "Module created successfully", Reset: true}, nil
}

// Draft returns the retained in-progress module, or nil after a
// successful submission.
func (c *Controller) Draft() *model.ModuleDraft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// SearchLectures runs the filtered, sorted lecture query and returns
// the render-ready listing. On failure the previous listing stays in
// place and the error is only logged.
func (c *Controller) SearchLectures(ctx context.Context, text, sortKey string) LectureListing {
	c.mu.Lock()
	defer c.mu.Unlock()

	lectures, err := c.client.SearchLectures(ctx, c.sess.Token, text, sortKey)
	if err != nil {
		c.log.Warn().Err(err).Str("search", text).Msg("lecture search failed, keeping previous listing")
		return c.lastListing
	}

	listing := LectureListing{}
	if len(lectures) == 0 {
		listing.Placeholder = noLecturesPlaceholder
	} else {
		listing.Lectures = make([]model.LectureCard, 0, len(lectures))
		for _, l := range lectures {
			listing.Lectures = append(listing.Lectures, l.Card())
		}
	}

	c.lastListing = listing
	return listing
}

// Logout clears the persisted session and returns the login URL for
// the hard navigation.
func (c *Controller) Logout(ctx context.Context) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.guard.Logout(ctx, c.sess.Token)
	c.sess = model.Session{}
	return c.guard.LoginURL()
}

// Token identifies the session this controller serves.
func (c *Controller) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sess.Token
}

// Courses returns the subject catalog, re-running the loader each
// time. Redundant loads are cheap and keep the list fresh.
func (c *Controller) Courses(ctx context.Context) []model.Course {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.loadCourses(ctx); err != nil {
		c.log.Debug().Err(err).Msg("course load failed, serving built-in catalog")
	}
	return c.courses
}

// loadCourses is the authoring section's loader. When the backend
// exposes no course endpoint the built-in catalog is served, matching
// the page's stock subject list.
func (c *Controller) loadCourses(ctx context.Context) error {
	courses, err := c.client.Courses(ctx, c.sess.Token)
	if err != nil {
		c.courses = model.DefaultCourses
		return err
	}
	c.courses = courses
	return nil
}

// state builds the view-state snapshot. Callers hold the mutex.
func (c *Controller) state() State {
	return State{
		User:          c.sess.User,
		Welcome:       buildWelcome(c.sess.User),
		Profile:       buildProfilePanel(c.sess.User),
		NavGroups:     view.Reveal(c.sess.User.UserType),
		Nav:           c.sections.Links(),
		ActiveSection: c.sections.Active(),
		Courses:       c.courses,
	}
}

// isAPIError reports whether err is a definite backend verdict rather
// than transport trouble.
func isAPIError(err error) bool {
	var apiErr *backend.APIError
	return errors.As(err, &apiErr)
}
