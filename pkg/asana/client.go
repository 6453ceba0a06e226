package asana

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// Client is a thin REST client for the work-item system.
// Requests carry the bearer token, are paced by a token bucket and retried on 429/5xx.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	maxRetries int
	retryDelay time.Duration
}

// NewClient builds a client for cfg.Token. An empty token still yields a usable handle;
// the API answers its requests with 401.
func NewClient(ctx context.Context, cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = DefaultRequestsPerMinute
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}
	if cfg.HTTPClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, cfg.HTTPClient)
	}

	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: cfg.Token,
		TokenType:   "Bearer",
	}))
	httpClient.Timeout = cfg.Timeout

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), max(1, cfg.RequestsPerMinute/10)),
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
	}
}

// ListWorkspaces returns every workspace visible to the token, following pagination.
func (c *Client) ListWorkspaces(ctx context.Context) ([]Compact, error) {
	var all []Compact
	offset := ""
	for {
		q := url.Values{}
		q.Set("limit", strconv.Itoa(DefaultPageSize))
		if offset != "" {
			q.Set("offset", offset)
		}

		var page Page[Compact]
		if err := c.get(ctx, "/workspaces", q, &page); err != nil {
			return nil, err
		}
		all = append(all, page.Data...)

		offset = page.NextOffset()
		if offset == "" {
			return all, nil
		}
	}
}

// ListProjects returns one page of projects in a workspace.
func (c *Client) ListProjects(ctx context.Context, workspaceGID string, opt ListOptions) (Page[Compact], error) {
	if workspaceGID == "" {
		return Page[Compact]{}, ErrEmptyID
	}
	q := pageQuery(opt.Limit, opt.Offset)

	var page Page[Compact]
	if err := c.get(ctx, "/workspaces/"+url.PathEscape(workspaceGID)+"/projects", q, &page); err != nil {
		return Page[Compact]{}, err
	}
	return page, nil
}

// GetTasksForProject returns one page of tasks in a project.
func (c *Client) GetTasksForProject(ctx context.Context, projectGID string, opt TaskListOptions) (Page[Task], error) {
	if projectGID == "" {
		return Page[Task]{}, ErrEmptyID
	}
	q := pageQuery(opt.Limit, opt.Offset)
	if len(opt.OptFields) > 0 {
		q.Set("opt_fields", strings.Join(opt.OptFields, ","))
	}

	var page Page[Task]
	if err := c.get(ctx, "/projects/"+url.PathEscape(projectGID)+"/tasks", q, &page); err != nil {
		return Page[Task]{}, err
	}
	return page, nil
}

// GetUser fetches a user; "me" resolves to the token owner.
func (c *Client) GetUser(ctx context.Context, userGID string, optFields []string) (Compact, error) {
	if userGID == "" {
		return Compact{}, ErrEmptyID
	}
	q := url.Values{}
	if len(optFields) > 0 {
		q.Set("opt_fields", strings.Join(optFields, ","))
	}

	var env dataEnvelope[Compact]
	if err := c.get(ctx, "/users/"+url.PathEscape(userGID), q, &env); err != nil {
		return Compact{}, err
	}
	return env.Data, nil
}

func pageQuery(limit int, offset string) url.Values {
	if limit <= 0 || limit > DefaultPageSize {
		limit = DefaultPageSize
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	if offset != "" {
		q.Set("offset", offset)
	}
	return q
}

// get performs a GET with retry on retryable API errors.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * c.retryDelay
			var raErr *retryAfterError
			if errors.As(lastErr, &raErr) && raErr.after > 0 {
				delay = raErr.after
			}
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		err := c.doGet(ctx, path, query, out)
		if err == nil {
			return nil
		}
		lastErr = err

		var apiErr *APIError
		if !errors.As(err, &apiErr) || !apiErr.Retryable() {
			return err
		}
	}
	return lastErr
}

// retryAfterError carries the server's Retry-After hint alongside the APIError.
type retryAfterError struct {
	*APIError
	after time.Duration
}

func (e *retryAfterError) Unwrap() error { return e.APIError }

func (c *Client) doGet(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("asana rate limiter: %w", err)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build asana request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call asana %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
		if secs, convErr := strconv.Atoi(resp.Header.Get("Retry-After")); convErr == nil && secs > 0 {
			return &retryAfterError{APIError: apiErr, after: time.Duration(secs) * time.Second}
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode asana %s response: %w", path, err)
	}
	return nil
}

func errorMessage(raw []byte) string {
	var env errorEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Errors) > 0 {
		msgs := make([]string, 0, len(env.Errors))
		for _, e := range env.Errors {
			msgs = append(msgs, e.Message)
		}
		return strings.Join(msgs, "; ")
	}
	return strings.TrimSpace(string(raw))
}
