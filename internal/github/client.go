package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Issue is a single issue record as returned by the API. It is kept as
// a raw mapping: only number, created_at, and title are consumed
// downstream, and the rest rides along untouched.
type Issue map[string]any

// CreatedAt returns the issue's created_at value. ISO-8601 timestamps
// order lexicographically, so callers compare these as plain strings.
// A missing or non-string value yields the empty string.
func (i Issue) CreatedAt() string {
	s, _ := i["created_at"].(string)
	return s
}

type resultKind int

const (
	resultSuccess resultKind = iota
	resultFailure
)

// Result is the classified outcome of one issues request. A 200
// response carries the issue list; any other status carries the API's
// error payload. Exactly one variant is populated.
type Result struct {
	kind       resultKind
	statusCode int
	issues     []Issue
	failure    map[string]any
}

// Success wraps an issue list as a successful Result.
func Success(issues []Issue) Result {
	return Result{kind: resultSuccess, statusCode: http.StatusOK, issues: issues}
}

// Failure wraps an error payload and its HTTP status as a failed Result.
func Failure(statusCode int, payload map[string]any) Result {
	return Result{kind: resultFailure, statusCode: statusCode, failure: payload}
}

// APIError is a non-200 response whose payload carried a message field.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github: %s (status %d)", e.Message, e.StatusCode)
}

// Decode unwraps a Result. Success passes the issue list through
// unchanged; failure becomes an *APIError built from the payload's
// message field. A failure payload without a message field is an
// ordinary error, not an APIError.
func Decode(r Result) ([]Issue, error) {
	switch r.kind {
	case resultSuccess:
		return r.issues, nil
	default:
		msg, ok := r.failure["message"].(string)
		if !ok {
			return nil, fmt.Errorf("error payload has no message field (status %d)", r.statusCode)
		}
		return nil, &APIError{StatusCode: r.statusCode, Message: msg}
	}
}

// Client talks to the GitHub REST API. The base URL and User-agent are
// injected at construction so tests can point it at a local server.
type Client struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

// NewClient returns a Client for the given API base URL.
func NewClient(baseURL, userAgent string) *Client {
	return &Client{
		BaseURL:    baseURL,
		UserAgent:  userAgent,
		HTTPClient: http.DefaultClient,
	}
}

// Issues performs a single GET of /repos/<user>/<repo>/issues and
// classifies the response by status code. One request only: no retries,
// no pagination, no authentication.
func (c *Client) Issues(ctx context.Context, user, repo string) (Result, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/issues", c.BaseURL, user, repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-agent", c.UserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		var issues []Issue
		if err := json.NewDecoder(resp.Body).Decode(&issues); err != nil {
			return Result{}, fmt.Errorf("parse issues: %w", err)
		}
		return Success(issues), nil
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Result{}, fmt.Errorf("parse error payload: %w", err)
	}
	return Failure(resp.StatusCode, payload), nil
}
