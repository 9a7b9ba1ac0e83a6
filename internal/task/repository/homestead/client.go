package homestead

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout = 15 * time.Second
	defaultRate    = 10
	defaultBurst   = 5
)

// ClientConfig configures the homestead REST client.
type ClientConfig struct {
	BaseURL string
	// TokenSource supplies the bearer credential for every request. The
	// client never refreshes or stores it beyond what the source does.
	TokenSource oauth2.TokenSource
	Timeout     time.Duration
	// RateLimitPerSec throttles outgoing requests; zero uses the default.
	RateLimitPerSec float64
	Burst           int
	// HTTPClient is the base transport, mostly for tests.
	HTTPClient *http.Client
}

// Client is the HTTP wrapper for the homestead task REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new homestead HTTP client.
func NewClient(ctx context.Context, cfg ClientConfig) *Client {
	var httpClient *http.Client
	switch {
	case cfg.TokenSource != nil:
		if cfg.HTTPClient != nil {
			ctx = context.WithValue(ctx, oauth2.HTTPClient, cfg.HTTPClient)
		}
		httpClient = oauth2.NewClient(ctx, cfg.TokenSource)
	case cfg.HTTPClient != nil:
		base := *cfg.HTTPClient
		httpClient = &base
	default:
		httpClient = &http.Client{}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient.Timeout = timeout

	perSec := cfg.RateLimitPerSec
	if perSec <= 0 {
		perSec = defaultRate
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = defaultBurst
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(perSec), burst),
	}
}

// ListTasks fetches the tasks of a project via
// GET /projects/{projectId}/tasks?start_date=&end_date=.
func (c *Client) ListTasks(ctx context.Context, projectID string, start, end time.Time) ([]TaskDTO, error) {
	q := url.Values{}
	q.Set("start_date", FormatDateTime(start))
	q.Set("end_date", FormatDateTime(end))
	endpoint := fmt.Sprintf("%s?%s", c.tasksURL(projectID), q.Encode())

	var listResp ListTasksResponse
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &listResp); err != nil {
		return nil, fmt.Errorf("list tasks for project %s: %w", projectID, err)
	}
	return listResp.Tasks, nil
}

// CreateTask creates a task via POST /projects/{projectId}/tasks.
func (c *Client) CreateTask(ctx context.Context, projectID string, req CreateTaskRequest) (*TaskDTO, error) {
	var created TaskDTO
	if err := c.do(ctx, http.MethodPost, c.tasksURL(projectID), req, &created); err != nil {
		return nil, fmt.Errorf("create task in project %s: %w", projectID, err)
	}
	return &created, nil
}

// UpdateTask sends a partial update via PUT /projects/{projectId}/tasks/{taskId}.
func (c *Client) UpdateTask(ctx context.Context, projectID, taskID string, req UpdateTaskRequest) error {
	if err := c.do(ctx, http.MethodPut, c.taskURL(projectID, taskID), req, nil); err != nil {
		return fmt.Errorf("update task %s: %w", taskID, err)
	}
	return nil
}

// DeleteTask removes a task via DELETE /projects/{projectId}/tasks/{taskId}.
func (c *Client) DeleteTask(ctx context.Context, projectID, taskID string) error {
	if err := c.do(ctx, http.MethodDelete, c.taskURL(projectID, taskID), nil, nil); err != nil {
		return fmt.Errorf("delete task %s: %w", taskID, err)
	}
	return nil
}

func (c *Client) tasksURL(projectID string) string {
	return fmt.Sprintf("%s/projects/%s/tasks", c.baseURL, url.PathEscape(projectID))
}

func (c *Client) taskURL(projectID, taskID string) string {
	return fmt.Sprintf("%s/%s", c.tasksURL(projectID), url.PathEscape(taskID))
}

// do performs one throttled JSON round trip. A nil out discards the body.
func (c *Client) do(ctx context.Context, method, endpoint string, in, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call homestead API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Method: method, Body: string(raw)}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode homestead response: %w", err)
	}
	return nil
}
