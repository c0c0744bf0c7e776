// Package notion pushes curriculum plans into a Notion database: one page
// per plan with overview and weekly heading blocks.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/syllabus-api/internal/domain"
	"github.com/phrazzld/syllabus-api/internal/export"
)

const (
	defaultBaseURL = "https://api.notion.com"

	// apiVersion is the Notion-Version header value the payloads target.
	apiVersion = "2022-06-28"
)

// ErrMissingCredentials is returned when the client lacks a token or
// database ID.
var ErrMissingCredentials = errors.New("notion token and database ID are required")

// APIError reports a non-success response from the Notion API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion API error %d: %s", e.StatusCode, e.Body)
}

// Client pushes curriculum plans to Notion.
type Client struct {
	token      string
	databaseID string
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

// NewClient creates a Notion client for the given integration token and
// target database.
func NewClient(token, databaseID string, logger *slog.Logger, opts ...Option) (*Client, error) {
	if token == "" || databaseID == "" {
		return nil, ErrMissingCredentials
	}

	c := &Client{
		token:      token,
		databaseID: databaseID,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger.With("component", "notion_client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// PushCurriculum creates a database page for the plan and appends its
// content blocks. Returns the created page ID.
func (c *Client) PushCurriculum(ctx context.Context, plan *domain.CurriculumPlan) (string, error) {
	c.logger.InfoContext(ctx, "pushing curriculum to Notion", "plan_id", plan.ID)

	pageID, err := c.createPage(ctx, plan)
	if err != nil {
		return "", fmt.Errorf("creating Notion page: %w", err)
	}

	if err := c.appendBlocks(ctx, pageID, plan); err != nil {
		return "", fmt.Errorf("appending Notion blocks: %w", err)
	}

	c.logger.InfoContext(ctx, "curriculum pushed to Notion",
		"plan_id", plan.ID, "page_id", pageID)
	return pageID, nil
}

func (c *Client) createPage(ctx context.Context, plan *domain.CurriculumPlan) (string, error) {
	payload := map[string]any{
		"parent": map[string]any{"database_id": c.databaseID},
		"properties": map[string]any{
			"Name": map[string]any{
				"title": []any{
					map[string]any{
						"text": map[string]any{
							"content": plan.Topic + " Curriculum",
						},
					},
				},
			},
			"Skill Level": map[string]any{
				"select": map[string]any{"name": titled(string(plan.SkillLevel))},
			},
			"Duration": map[string]any{
				"number": plan.TotalWeeks,
			},
			"Created": map[string]any{
				"date": map[string]any{"start": plan.CreatedAt.Format("2006-01-02")},
			},
		},
	}

	var page struct {
		ID string `json:"id"`
	}
	if err := c.post(ctx, http.MethodPost, "/v1/pages", payload, &page); err != nil {
		return "", err
	}
	if page.ID == "" {
		return "", errors.New("notion response missing page ID")
	}
	return page.ID, nil
}

func (c *Client) appendBlocks(ctx context.Context, pageID string, plan *domain.CurriculumPlan) error {
	summary := export.Summarize(plan)
	overview := fmt.Sprintf("Skill Level: %s\nDuration: %d weeks\nTime Commitment: %d hours/week\nEstimated Total: %d hours",
		titled(string(plan.SkillLevel)), plan.TotalWeeks, plan.HoursPerWeek, summary.EstimatedTotalHours)

	blocks := []any{
		heading2("📋 Overview"),
		paragraph(overview),
	}

	for _, week := range plan.WeeklyContent {
		blocks = append(blocks,
			heading3(fmt.Sprintf("Week %d: %s", week.WeekNumber, week.Topic)),
			paragraph("Objective: "+week.Objective),
		)
	}

	payload := map[string]any{"children": blocks}
	return c.post(ctx, http.MethodPatch, "/v1/blocks/"+pageID+"/children", payload, nil)
}

// post sends a JSON request and decodes the response into out when non-nil.
func (c *Client) post(ctx context.Context, method, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Notion-Version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: buf.String()}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func heading2(text string) map[string]any {
	return block("heading_2", text)
}

func heading3(text string) map[string]any {
	return block("heading_3", text)
}

func paragraph(text string) map[string]any {
	return block("paragraph", text)
}

func block(kind, text string) map[string]any {
	return map[string]any{
		"object": "block",
		"type":   kind,
		kind: map[string]any{
			"rich_text": []any{
				map[string]any{
					"type": "text",
					"text": map[string]any{"content": text},
				},
			},
		},
	}
}

func titled(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
