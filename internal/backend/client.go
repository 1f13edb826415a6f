package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/imogenclam/visualmath/internal/config"
	"github.com/imogenclam/visualmath/internal/model"
)

// Client talks to the platform backend API with a bearer credential.
// It owns no session state; the token is supplied per call.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient creates a backend API client from configuration.
func NewClient(cfg *config.Config, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BackendURL, "/"),
		http:    &http.Client{Timeout: cfg.BackendTimeout},
		log:     log.With().Str("component", "backend_client").Logger(),
	}
}

// Profile fetches the authenticated user's profile.
// GET /api/user/profile
func (c *Client) Profile(ctx context.Context, token string) (model.UserProfile, error) {
	var user model.UserProfile
	if err := c.getJSON(ctx, token, "/api/user/profile", nil, &user); err != nil {
		return model.UserProfile{}, err
	}
	return user, nil
}

// CreateModule submits an assembled module.
// POST /api/modules
func (c *Client) CreateModule(ctx context.Context, token string, req model.CreateModuleRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal module: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/modules", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return &NetworkError{Op: "create module", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Message: readErrorText(resp.Body)}
	}
	return nil
}

// SearchLectures issues the filtered, sorted lecture query.
// GET /api/lectures?search=<text>&sort=<key>
func (c *Client) SearchLectures(ctx context.Context, token, search, sort string) ([]model.Lecture, error) {
	q := url.Values{}
	q.Set("search", search)
	q.Set("sort", sort)

	var lectures []model.Lecture
	if err := c.getJSON(ctx, token, "/api/lectures", q, &lectures); err != nil {
		return nil, err
	}
	return lectures, nil
}

// Courses fetches the subject catalog for the authoring form.
// GET /api/courses
func (c *Client) Courses(ctx context.Context, token string) ([]model.Course, error) {
	var courses []model.Course
	if err := c.getJSON(ctx, token, "/api/courses", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// getJSON performs an authenticated GET and decodes a 2xx JSON body
// into dst. Non-2xx becomes an APIError; transport and decode trouble
// become a NetworkError.
func (c *Client) getJSON(ctx context.Context, token, path string, query url.Values, dst interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Op: "get " + path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Message: readErrorText(resp.Body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return &NetworkError{Op: "decode " + path, Err: err}
	}
	return nil
}

// readErrorText extracts the plain-text error body a failed call
// carries, capped so a misbehaving backend cannot flood the UI.
func readErrorText(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}
