package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imogenclam/visualmath/internal/backend"
	"github.com/imogenclam/visualmath/internal/config"
	"github.com/imogenclam/visualmath/internal/form"
	"github.com/imogenclam/visualmath/internal/model"
	"github.com/imogenclam/visualmath/internal/session"
	"github.com/imogenclam/visualmath/internal/view"
)

// testEnv wires a controller against a fake platform backend and an
// in-memory session store.
type testEnv struct {
	store *session.MemoryStore
	guard *session.Guard
	srv   *httptest.Server
	hits  atomic.Int64
}

func newTestEnv(t *testing.T, backendMux http.Handler) *testEnv {
	t.Helper()

	env := &testEnv{store: session.NewMemoryStore()}
	env.guard = session.NewGuard(env.store, "/login", zerolog.Nop())
	env.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env.hits.Add(1)
		if backendMux == nil {
			http.NotFound(w, r)
			return
		}
		backendMux.ServeHTTP(w, r)
	}))
	t.Cleanup(env.srv.Close)
	return env
}

func (e *testEnv) controller(t *testing.T, token string) *Controller {
	t.Helper()
	c, err := New(context.Background(), e.guard, e.client(), zerolog.Nop(), token)
	require.NoError(t, err)
	return c
}

func (e *testEnv) client() *backend.Client {
	cfg := &config.Config{BackendURL: e.srv.URL, BackendTimeout: 2 * time.Second}
	return backend.NewClient(cfg, zerolog.Nop())
}

func teacherProfileMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/user/profile", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(model.UserProfile{
			FullName: "A. Ivanov",
			UserType: model.UserTypeTeacher,
			Email:    "a@x.edu",
		})
	})
	return mux
}

// Scenario: token absent at startup — immediate redirect decision and
// no network traffic at all.
func TestNoTokenMeansNoControllerAndNoCalls(t *testing.T) {
	env := newTestEnv(t, nil)

	_, err := New(context.Background(), env.guard, env.client(), zerolog.Nop(), "")

	assert.ErrorIs(t, err, session.ErrNoSession)
	assert.Zero(t, env.hits.Load())
}

// Scenario: teacher signs in — teacher navigation shown, admin hidden,
// greeting names the user and role.
func TestInitRevealsTeacherSections(t *testing.T) {
	env := newTestEnv(t, teacherProfileMux())
	ctrl := env.controller(t, "tok-teacher")

	state, err := ctrl.Init(context.Background())
	require.NoError(t, err)

	assert.Contains(t, state.NavGroups, view.NavGroupTeacher)
	assert.NotContains(t, state.NavGroups, view.NavGroupAdmin)
	assert.NotContains(t, state.NavGroups, view.NavGroupStudent)
	assert.Contains(t, state.Welcome, "A. Ivanov")
	assert.Contains(t, state.Welcome, "teacher")

	// The refreshed profile is written through to the store.
	cached, err := env.store.GetUser(context.Background(), "tok-teacher")
	require.NoError(t, err)
	assert.Equal(t, "A. Ivanov", cached.FullName)
}

func TestInitAdminSeesTeacherSectionsToo(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/user/profile", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(model.UserProfile{FullName: "Root", UserType: model.UserTypeAdmin, Email: "r@x.edu"})
	})
	env := newTestEnv(t, mux)
	ctrl := env.controller(t, "tok-admin")

	state, err := ctrl.Init(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []view.NavGroup{view.NavGroupAdmin, view.NavGroupTeacher}, state.NavGroups)
}

// A backend that rejects the token collapses to the re-authenticate
// path, whatever the exact failure.
func TestInitRejectedProfileMeansReauthenticate(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/user/profile", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "token revoked", http.StatusUnauthorized)
	})
	env := newTestEnv(t, mux)
	ctrl := env.controller(t, "tok-stale")

	_, err := ctrl.Init(context.Background())
	assert.ErrorIs(t, err, session.ErrNoSession)
}

// Transport trouble during the refresh keeps the stale cached profile
// on display; nothing is surfaced to the user.
func TestInitNetworkFailureKeepsCachedProfile(t *testing.T) {
	env := newTestEnv(t, nil)
	cached := model.UserProfile{FullName: "B. Petrov", UserType: model.UserTypeStudent, Email: "b@x.edu"}
	require.NoError(t, env.store.SetUser(context.Background(), "tok-b", cached))
	ctrl := env.controller(t, "tok-b")
	env.srv.Close() // Backend goes away before the refresh.

	state, err := ctrl.Init(context.Background())
	require.NoError(t, err)

	assert.Equal(t, cached, state.User)
	assert.Contains(t, state.Welcome, "B. Petrov")
}

func TestSwitchSectionLoadsCourses(t *testing.T) {
	mux := teacherProfileMux()
	mux.HandleFunc("GET /api/courses", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]model.Course{{ID: 9, Name: "Number Theory"}})
	})
	env := newTestEnv(t, mux)
	ctrl := env.controller(t, "tok")

	state := ctrl.SwitchSection(context.Background(), view.SectionCreateModule)

	assert.Equal(t, view.SectionCreateModule, state.ActiveSection)
	assert.Equal(t, []model.Course{{ID: 9, Name: "Number Theory"}}, state.Courses)
}

// Without a course endpoint the built-in catalog backs the form.
func TestSwitchSectionFallsBackToBuiltinCourses(t *testing.T) {
	env := newTestEnv(t, teacherProfileMux())
	ctrl := env.controller(t, "tok")

	state := ctrl.SwitchSection(context.Background(), view.SectionCreateModule)

	assert.Equal(t, view.SectionCreateModule, state.ActiveSection)
	assert.Equal(t, model.DefaultCourses, state.Courses)
}

func TestSwitchSectionUnknownIDKeepsCurrent(t *testing.T) {
	env := newTestEnv(t, teacherProfileMux())
	ctrl := env.controller(t, "tok")

	ctrl.SwitchSection(context.Background(), view.SectionLectures)
	state := ctrl.SwitchSection(context.Background(), "no-such-section")

	assert.Equal(t, view.SectionLectures, state.ActiveSection)
}

// Scenario: successful text-module submission resets the form.
func TestSubmitModuleSuccessResetsDraft(t *testing.T) {
	mux := teacherProfileMux()
	mux.HandleFunc("POST /api/modules", func(w http.ResponseWriter, r *http.Request) {
		var req model.CreateModuleRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, model.ModuleTypeText, req.ModuleType)
		assert.JSONEq(t, `{"text":"Hello","images":[]}`, string(req.Content))
		w.WriteHeader(http.StatusCreated)
	})
	env := newTestEnv(t, mux)
	ctrl := env.controller(t, "tok")

	result, err := ctrl.SubmitModule(context.Background(), SubmitInput{
		Title:      "Greeting",
		CourseID:   1,
		ModuleType: model.ModuleTypeText,
		Fields:     form.Values{form.FieldContent: "Hello"},
	})
	require.NoError(t, err)

	assert.True(t, result.Reset)
	assert.Nil(t, ctrl.Draft())
}

// Scenario: server rejection surfaces its text and keeps the draft for
// correction.
func TestSubmitModuleRejectionKeepsDraft(t *testing.T) {
	mux := teacherProfileMux()
	mux.HandleFunc("POST /api/modules", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "duplicate title", http.StatusConflict)
	})
	env := newTestEnv(t, mux)
	ctrl := env.controller(t, "tok")

	_, err := ctrl.SubmitModule(context.Background(), SubmitInput{
		Title:      "Limits",
		CourseID:   1,
		ModuleType: model.ModuleTypeText,
		Fields:     form.Values{form.FieldContent: "Hello"},
	})

	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "duplicate title")

	draft := ctrl.Draft()
	require.NotNil(t, draft)
	assert.Equal(t, "Limits", draft.Title)
}

func TestSubmitModuleNetworkFailureKeepsDraft(t *testing.T) {
	env := newTestEnv(t, teacherProfileMux())
	ctrl := env.controller(t, "tok")
	env.srv.Close()

	_, err := ctrl.SubmitModule(context.Background(), SubmitInput{
		Title:      "Limits",
		CourseID:   1,
		ModuleType: model.ModuleTypeText,
		Fields:     form.Values{form.FieldContent: "Hello"},
	})

	var netErr *backend.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.NotNil(t, ctrl.Draft())
}

func TestSubmitModuleFormatErrorNeverReachesBackend(t *testing.T) {
	env := newTestEnv(t, teacherProfileMux())
	ctrl := env.controller(t, "tok")
	before := env.hits.Load()

	_, err := ctrl.SubmitModule(context.Background(), SubmitInput{
		Title:      "Quiz",
		CourseID:   1,
		ModuleType: model.ModuleTypeQuestion,
		Fields:     form.Values{form.FieldQuestions: "{not json"},
	})

	var formatErr *form.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, before, env.hits.Load())
}

// Scenario: a search with no matches shows the placeholder and no cards.
func TestSearchLecturesEmptyShowsPlaceholder(t *testing.T) {
	mux := teacherProfileMux()
	mux.HandleFunc("GET /api/lectures", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	env := newTestEnv(t, mux)
	ctrl := env.controller(t, "tok")

	listing := ctrl.SearchLectures(context.Background(), "nothing here", "date")

	assert.Empty(t, listing.Lectures)
	assert.Equal(t, "No lectures found", listing.Placeholder)
}

func TestSearchLecturesRendersCards(t *testing.T) {
	mux := teacherProfileMux()
	mux.HandleFunc("GET /api/lectures", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]model.Lecture{{
			ID:         3,
			Title:      "Derivatives",
			CourseName: "Mathematical Analysis",
			AuthorName: "A. Ivanov",
			CreatedAt:  time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC),
		}})
	})
	env := newTestEnv(t, mux)
	ctrl := env.controller(t, "tok")

	listing := ctrl.SearchLectures(context.Background(), "deriv", "date")

	require.Len(t, listing.Lectures, 1)
	card := listing.Lectures[0]
	assert.Equal(t, "Derivatives", card.Title)
	assert.Equal(t, "Mathematical Analysis", card.CourseName)
	assert.Equal(t, "A. Ivanov", card.AuthorName)
	assert.Equal(t, "09.03.2024", card.DisplayDate)
	assert.Empty(t, listing.Placeholder)
}

// A failed search leaves the previous listing in place.
func TestSearchLecturesFailureKeepsPreviousListing(t *testing.T) {
	healthy := true
	mux := teacherProfileMux()
	mux.HandleFunc("GET /api/lectures", func(w http.ResponseWriter, r *http.Request) {
		if !healthy {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode([]model.Lecture{{ID: 1, Title: "Derivatives"}})
	})
	env := newTestEnv(t, mux)
	ctrl := env.controller(t, "tok")

	first := ctrl.SearchLectures(context.Background(), "deriv", "date")
	require.Len(t, first.Lectures, 1)

	healthy = false
	second := ctrl.SearchLectures(context.Background(), "deriv", "date")

	assert.Equal(t, first, second)
}

func TestLogoutClearsSessionAndReturnsLoginURL(t *testing.T) {
	env := newTestEnv(t, teacherProfileMux())
	ctrl := env.controller(t, "tok")
	_, err := ctrl.Init(context.Background())
	require.NoError(t, err)

	loginURL := ctrl.Logout(context.Background())

	assert.Equal(t, "/login", loginURL)
	_, err = env.store.GetUser(context.Background(), "tok")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestManagerReusesControllerPerToken(t *testing.T) {
	env := newTestEnv(t, teacherProfileMux())
	manager := NewManager(env.guard, env.client(), zerolog.Nop())

	first, err := manager.Controller(context.Background(), "tok")
	require.NoError(t, err)
	second, err := manager.Controller(context.Background(), "tok")
	require.NoError(t, err)
	assert.Same(t, first, second)

	manager.Drop("tok")
	third, err := manager.Controller(context.Background(), "tok")
	require.NoError(t, err)
	assert.NotSame(t, first, third)
}

func TestManagerPassesThroughNoSession(t *testing.T) {
	env := newTestEnv(t, nil)
	manager := NewManager(env.guard, env.client(), zerolog.Nop())

	_, err := manager.Controller(context.Background(), "")
	assert.ErrorIs(t, err, session.ErrNoSession)
}
