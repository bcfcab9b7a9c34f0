// Package api is the HTTP client for the upskill recommendation backend.
package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"upskill-recommender/internal/domain"
	"upskill-recommender/internal/httpx"
)

// ErrCareerPathUnavailable marks a non-success career-path lookup.
// Callers treat it as "no career path for this role", not as a failure.
var ErrCareerPathUnavailable = errors.New("career path unavailable")

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

/* -------- Startup endpoints (fetched once at process start) -------- */

// Info is the capability probe from GET /. Extra backend fields are ignored.
type Info struct {
	GeminiAvailable bool `json:"gemini_available"`
}

func (c *Client) Info(ctx context.Context) (Info, error) {
	var out Info
	err := httpx.GetJSON(ctx, c.HTTP, c.BaseURL+"/", &out, httpx.StartupRetry())
	return out, err
}

func (c *Client) Platforms(ctx context.Context) ([]string, error) {
	var out struct {
		Platforms []string `json:"platforms"`
	}
	if err := httpx.GetJSON(ctx, c.HTTP, c.BaseURL+"/platforms", &out, httpx.StartupRetry()); err != nil {
		return nil, err
	}
	return out.Platforms, nil
}

func (c *Client) Skills(ctx context.Context) ([]string, error) {
	var out struct {
		Skills []string `json:"skills"`
	}
	if err := httpx.GetJSON(ctx, c.HTTP, c.BaseURL+"/skills", &out, httpx.StartupRetry()); err != nil {
		return nil, err
	}
	return out.Skills, nil
}

/* -------- Submission-scoped endpoints (no automatic retries) -------- */

// CareerPath looks up progression info for a role. A non-success status maps
// to ErrCareerPathUnavailable; network errors pass through as-is.
func (c *Client) CareerPath(ctx context.Context, role string) (*domain.CareerPath, error) {
	var out domain.CareerPath
	u := c.BaseURL + "/career_path/" + url.PathEscape(strings.TrimSpace(role))
	if err := httpx.GetJSON(ctx, c.HTTP, u, &out, httpx.NoRetry()); err != nil {
		if httpx.StatusOf(err) != 0 {
			return nil, ErrCareerPathUnavailable
		}
		return nil, err
	}
	return &out, nil
}

// AICourses asks the backend's Gemini path for generated course suggestions.
// An absent or empty courses field is "no AI courses", not an error.
func (c *Client) AICourses(ctx context.Context, role, skills string) ([]domain.Course, error) {
	q := url.Values{}
	q.Set("job_role", strings.TrimSpace(role))
	q.Set("skills", skills)

	var out struct {
		Courses []domain.Course `json:"courses"`
	}
	if err := httpx.GetJSON(ctx, c.HTTP, c.BaseURL+"/ai_courses?"+q.Encode(), &out, httpx.NoRetry()); err != nil {
		return nil, err
	}
	return out.Courses, nil
}

// Query is the recommendations request. Platform and Paid are the two facets
// the backend can pre-filter; "all"/empty values are omitted from the query
// entirely rather than sent literally.
type Query struct {
	JobRole  string
	Skills   string
	Goal     string
	UseAI    bool
	Platform string // "" or "all" means no constraint
	Paid     string // "", "all", "free" or "paid"
}

func (q Query) encode() string {
	v := url.Values{}
	v.Set("job_role", strings.TrimSpace(q.JobRole))
	if q.Paid == "paid" {
		v.Set("paid", "true")
	} else if q.Paid == "free" {
		v.Set("paid", "false")
	}
	if q.Platform != "" && q.Platform != "all" {
		v.Set("platform", q.Platform)
	}
	if s := strings.TrimSpace(q.Skills); s != "" {
		v.Set("user_skills", s)
	}
	if g := strings.TrimSpace(q.Goal); g != "" {
		v.Set("goal", g)
	}
	if q.UseAI {
		v.Set("use_ai", "true")
	}
	return v.Encode()
}

// Recommendations fetches the course list for a submission. Any non-success
// status or network error is a hard failure of the submission.
func (c *Client) Recommendations(ctx context.Context, q Query) ([]domain.Course, error) {
	var out struct {
		Recommendations []domain.Course `json:"recommendations"`
	}
	u := c.BaseURL + "/recommendations?" + q.encode()
	if err := httpx.GetJSON(ctx, c.HTTP, u, &out, httpx.NoRetry()); err != nil {
		return nil, err
	}
	return out.Recommendations, nil
}
