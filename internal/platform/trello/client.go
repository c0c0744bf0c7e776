// Package trello pushes curriculum plans onto a Trello board: one list per
// week with cards for the week's videos and project.
package trello

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/phrazzld/syllabus-api/internal/domain"
)

const defaultBaseURL = "https://api.trello.com"

// ErrMissingCredentials is returned when the client lacks an API key or
// token.
var ErrMissingCredentials = errors.New("trello API key and token are required")

// APIError reports a non-success response from the Trello API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("trello API error %d: %s", e.StatusCode, e.Body)
}

// Client pushes curriculum plans to Trello.
type Client struct {
	apiKey     string
	token      string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, primarily for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) { c.httpClient = client }
}

// NewClient creates a Trello client.
func NewClient(apiKey, token string, logger *slog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" || token == "" {
		return nil, ErrMissingCredentials
	}

	c := &Client{
		apiKey:     apiKey,
		token:      token,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger.With("component", "trello_client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// PushCurriculum creates one list per week on the board and fills it with
// cards for the week's videos and project.
func (c *Client) PushCurriculum(ctx context.Context, plan *domain.CurriculumPlan, boardID string) error {
	if boardID == "" {
		return errors.New("trello board ID is required")
	}

	c.logger.InfoContext(ctx, "pushing curriculum to Trello",
		"plan_id", plan.ID, "board_id", boardID)

	for _, week := range plan.WeeklyContent {
		listID, err := c.createList(ctx, boardID, week)
		if err != nil {
			return fmt.Errorf("creating list for week %d: %w", week.WeekNumber, err)
		}

		if err := c.createWeekCards(ctx, listID, week); err != nil {
			return fmt.Errorf("creating cards for week %d: %w", week.WeekNumber, err)
		}
	}

	c.logger.InfoContext(ctx, "curriculum pushed to Trello", "plan_id", plan.ID)
	return nil
}

func (c *Client) createList(ctx context.Context, boardID string, week domain.WeeklyContent) (string, error) {
	form := url.Values{}
	form.Set("name", fmt.Sprintf("Week %d: %s", week.WeekNumber, week.Topic))
	form.Set("idBoard", boardID)

	var list struct {
		ID string `json:"id"`
	}
	if err := c.postForm(ctx, "/1/lists", form, &list); err != nil {
		return "", err
	}
	if list.ID == "" {
		return "", errors.New("trello response missing list ID")
	}
	return list.ID, nil
}

func (c *Client) createWeekCards(ctx context.Context, listID string, week domain.WeeklyContent) error {
	for _, video := range week.Videos {
		form := url.Values{}
		form.Set("name", "📺 "+video.Title)
		form.Set("desc", fmt.Sprintf("Channel: %s\nURL: %s", video.Channel, video.URL))
		form.Set("idList", listID)

		if err := c.postForm(ctx, "/1/cards", form, nil); err != nil {
			return err
		}
	}

	if week.Project != nil {
		form := url.Values{}
		form.Set("name", "🔨 "+week.Project.Title)
		form.Set("desc", week.Project.Description)
		form.Set("idList", listID)

		if err := c.postForm(ctx, "/1/cards", form, nil); err != nil {
			return err
		}
	}

	return nil
}

// postForm sends a form-encoded POST with credentials attached and decodes
// the response into out when non-nil.
func (c *Client) postForm(ctx context.Context, path string, form url.Values, out any) error {
	form.Set("key", c.apiKey)
	form.Set("token", c.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
