package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imogenclam/visualmath/internal/config"
	"github.com/imogenclam/visualmath/internal/model"
)

func newTestClient(baseURL string) *Client {
	cfg := &config.Config{BackendURL: baseURL, BackendTimeout: 2 * time.Second}
	return NewClient(cfg, zerolog.Nop())
}

func TestProfileSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/profile", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(model.UserProfile{
			FullName: "A. Ivanov",
			UserType: model.UserTypeTeacher,
			Email:    "a@x.edu",
		})
	}))
	defer srv.Close()

	user, err := newTestClient(srv.URL).Profile(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "A. Ivanov", user.FullName)
	assert.Equal(t, model.UserTypeTeacher, user.UserType)
}

func TestProfileRejectedIsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "token expired", http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Profile(context.Background(), "stale")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "token expired", apiErr.Message)
}

func TestProfileTransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Nothing listening anymore.

	_, err := newTestClient(srv.URL).Profile(context.Background(), "tok")

	var netErr *NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestCreateModuleSuccess(t *testing.T) {
	var received model.CreateModuleRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/modules", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	req := model.CreateModuleRequest{
		Title:      "Limits",
		CourseID:   1,
		ModuleType: model.ModuleTypeText,
		Content:    json.RawMessage(`{"text":"Hello","images":[]}`),
	}
	err := newTestClient(srv.URL).CreateModule(context.Background(), "tok", req)
	require.NoError(t, err)

	assert.Equal(t, "Limits", received.Title)
	assert.Equal(t, model.ModuleTypeText, received.ModuleType)
	assert.JSONEq(t, `{"text":"Hello","images":[]}`, string(received.Content))
}

func TestCreateModuleRejectionCarriesServerText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "duplicate title", http.StatusConflict)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).CreateModule(context.Background(), "tok", model.CreateModuleRequest{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "duplicate title", apiErr.Message)
}

func TestSearchLecturesBuildsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/lectures", r.URL.Path)
		assert.Equal(t, "матричный анализ", r.URL.Query().Get("search"))
		assert.Equal(t, "date", r.URL.Query().Get("sort"))
		_ = json.NewEncoder(w).Encode([]model.Lecture{
			{ID: 1, Title: "Introduction", CourseName: "Analysis", AuthorName: "Ivanov"},
		})
	}))
	defer srv.Close()

	lectures, err := newTestClient(srv.URL).SearchLectures(context.Background(), "tok", "матричный анализ", "date")
	require.NoError(t, err)
	require.Len(t, lectures, 1)
	assert.Equal(t, "Introduction", lectures[0].Title)
}

func TestSearchLecturesEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	lectures, err := newTestClient(srv.URL).SearchLectures(context.Background(), "tok", "nothing", "date")
	require.NoError(t, err)
	assert.Empty(t, lectures)
}

func TestCoursesFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/courses", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]model.Course{{ID: 7, Name: "Topology"}})
	}))
	defer srv.Close()

	courses, err := newTestClient(srv.URL).Courses(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, []model.Course{{ID: 7, Name: "Topology"}}, courses)
}
