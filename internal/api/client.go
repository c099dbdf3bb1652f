package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/amishk599/jobboard/internal/model"
)

// Response bodies larger than this are rejected rather than buffered.
const maxBodyBytes = 4 << 20

// Ensure Client implements model.JobBoard.
var _ model.JobBoard = (*Client)(nil)

// Client talks to the job board REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient returns a client rooted at baseURL (e.g. "http://localhost:5000").
func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// NewHTTPClient returns an http.Client with the given timeout and a cookie jar,
// so a session cookie set by the server is replayed on later calls.
func NewHTTPClient(timeout time.Duration) *http.Client {
	jar, _ := cookiejar.New(nil) // only fails on a non-nil Options with a bad PublicSuffixList
	return &http.Client{Timeout: timeout, Jar: jar}
}

// apiJob is the wire shape of a job; created_at is an ISO-8601 string.
type apiJob struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	JobType     string `json:"job_type"`
	Salary      string `json:"salary"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

// apiResult is the body of a POST response: {"message": ...} or {"error": ...}.
type apiResult struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// ListJobs fetches GET /api/jobs. Any non-2xx status is an error.
func (c *Client) ListJobs(ctx context.Context) ([]model.Job, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/jobs", nil)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, fmt.Errorf("list jobs: %w", &model.APIError{StatusCode: resp.StatusCode})
	}

	var raw []apiJob
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&raw); err != nil {
		return nil, fmt.Errorf("list jobs: decode: %w", err)
	}

	jobs := make([]model.Job, 0, len(raw))
	for _, rj := range raw {
		jobs = append(jobs, model.Job{
			ID:          rj.ID,
			Title:       rj.Title,
			Company:     rj.Company,
			Location:    rj.Location,
			JobType:     rj.JobType,
			Salary:      rj.Salary,
			Description: rj.Description,
			CreatedAt:   parseTimestamp(rj.CreatedAt),
		})
	}
	return jobs, nil
}

// Apply sends POST /api/jobs/{id}/apply.
func (c *Client) Apply(ctx context.Context, app model.Application) error {
	path := fmt.Sprintf("/api/jobs/%d/apply", app.JobID)
	if err := c.submit(ctx, path, app); err != nil {
		return fmt.Errorf("apply to job %d: %w", app.JobID, err)
	}
	return nil
}

// PostJob sends POST /api/jobs.
func (c *Client) PostJob(ctx context.Context, posting model.JobPosting) error {
	if err := c.submit(ctx, "/api/jobs", posting); err != nil {
		return fmt.Errorf("post job: %w", err)
	}
	return nil
}

// submit POSTs payload as JSON and interprets the JSON reply. A body that is not
// JSON is a failure even on 2xx; a non-2xx reply becomes *model.APIError.
func (c *Client) submit(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var result apiResult
	if err := json.Unmarshal(data, &result); err != nil {
		return fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}

	if !isSuccess(resp.StatusCode) {
		return &model.APIError{StatusCode: resp.StatusCode, Message: result.Error}
	}
	return nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("api request failed",
			"method", req.Method,
			"path", req.URL.Path,
			"request_id", requestID,
			"error", err,
		)
		return nil, err
	}

	c.logger.Debug("api request",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"request_id", requestID,
	)
	return resp, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
