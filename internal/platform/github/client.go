// Package github is a minimal GitHub REST v3 client for publishing hands-on
// project repositories: create a repo, look it up, and upload starter files
// through the contents API.
package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/phrazzld/syllabus-api/internal/domain"
)

const defaultAPIBase = "https://api.github.com"

// ErrMissingToken is returned when the client is built without a token.
var ErrMissingToken = errors.New("github token is required")

// APIError reports an error response from the GitHub API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github API error %d: %s", e.StatusCode, e.Message)
}

// RepoDetails is the metadata subset we surface for a repository.
type RepoDetails struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Private     bool   `json:"private"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
	OpenIssues  int    `json:"open_issues_count"`
	HTMLURL     string `json:"html_url"`
}

// Client manages GitHub repositories for hands-on projects.
type Client struct {
	token      string
	apiBase    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithAPIBase overrides the API endpoint, for tests and GHES.
func WithAPIBase(u string) Option {
	return func(c *Client) { c.apiBase = strings.TrimRight(u, "/") }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) { c.httpClient = client }
}

// NewClient creates a GitHub client authenticated with a personal access
// token.
func NewClient(token string, logger *slog.Logger, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	c := &Client{
		token:      token,
		apiBase:    defaultAPIBase,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger.With("component", "github_client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// CreateRepository creates a repository under the authenticated user, or
// under org when non-empty.
func (c *Client) CreateRepository(ctx context.Context, name string, private bool, org string) (*RepoDetails, error) {
	if name == "" {
		return nil, errors.New("repository name is required")
	}

	path := "/user/repos"
	if org != "" {
		path = "/orgs/" + org + "/repos"
	}

	payload := map[string]any{
		"name":      name,
		"private":   private,
		"auto_init": false,
	}

	var details RepoDetails
	if err := c.do(ctx, http.MethodPost, path, payload, &details); err != nil {
		return nil, fmt.Errorf("creating repository %q: %w", name, err)
	}

	c.logger.InfoContext(ctx, "repository created", "full_name", details.FullName)
	return &details, nil
}

// GetRepoDetails returns metadata for the repository, given as "owner/name".
func (c *Client) GetRepoDetails(ctx context.Context, fullName string) (*RepoDetails, error) {
	if !strings.Contains(fullName, "/") {
		return nil, fmt.Errorf("repository name must be owner/name, got %q", fullName)
	}

	var details RepoDetails
	if err := c.do(ctx, http.MethodGet, "/repos/"+fullName, nil, &details); err != nil {
		return nil, fmt.Errorf("fetching repository %q: %w", fullName, err)
	}
	return &details, nil
}

// UploadProjectFiles publishes the project's starter files to the repository
// through the contents API: a README built from the project description plus
// the starter code under its first listed filename.
func (c *Client) UploadProjectFiles(ctx context.Context, fullName string, project *domain.Project) error {
	if project == nil {
		return errors.New("project is required")
	}

	files := map[string]string{
		"README.md": projectReadme(project),
	}
	if project.StarterCode != "" {
		name := "main.py"
		if len(project.FilesToCreate) > 0 {
			name = project.FilesToCreate[0]
		}
		files[name] = project.StarterCode
	}

	for path, content := range files {
		if err := c.uploadFile(ctx, fullName, path, content, project.Title); err != nil {
			return fmt.Errorf("uploading %s: %w", path, err)
		}
	}

	c.logger.InfoContext(ctx, "project files uploaded",
		"full_name", fullName, "files", len(files))
	return nil
}

func (c *Client) uploadFile(ctx context.Context, fullName, path, content, projectTitle string) error {
	payload := map[string]any{
		"message": "Add " + path + " for " + projectTitle,
		"content": base64.StdEncoding.EncodeToString([]byte(content)),
	}
	return c.do(ctx, http.MethodPut, "/repos/"+fullName+"/contents/"+path, payload, nil)
}

// do sends a JSON request with auth headers and decodes the response into
// out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshaling payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiBase+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "token "+c.token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Message: string(msg)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func projectReadme(project *domain.Project) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n", project.Title, project.Description)

	if len(project.LearningObjectives) > 0 {
		b.WriteString("\n## Learning Objectives\n")
		for _, obj := range project.LearningObjectives {
			fmt.Fprintf(&b, "- %s\n", obj)
		}
	}

	if len(project.Requirements) > 0 {
		b.WriteString("\n## Requirements\n")
		for _, req := range project.Requirements {
			fmt.Fprintf(&b, "- %s\n", req)
		}
	}

	if project.EstimatedTime != "" {
		fmt.Fprintf(&b, "\nEstimated time: %s\n", project.EstimatedTime)
	}

	return b.String()
}
