package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/syllabus-api/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateRepository(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/user/repos", r.URL.Path)
		assert.Equal(t, "token pat-1", r.Header.Get("Authorization"))
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "week1-calculator", payload["name"])
		assert.Equal(t, true, payload["private"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"name": "week1-calculator", "full_name": "learner/week1-calculator", "private": true, "html_url": "https://github.com/learner/week1-calculator"}`))
	}))
	defer server.Close()

	client, err := NewClient("pat-1", discardLogger(), WithAPIBase(server.URL))
	require.NoError(t, err)

	details, err := client.CreateRepository(context.Background(), "week1-calculator", true, "")
	require.NoError(t, err)
	assert.Equal(t, "learner/week1-calculator", details.FullName)
	assert.True(t, details.Private)
}

func TestCreateRepositoryUnderOrg(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orgs/my-school/repos", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"full_name": "my-school/repo"}`))
	}))
	defer server.Close()

	client, err := NewClient("pat-1", discardLogger(), WithAPIBase(server.URL))
	require.NoError(t, err)

	details, err := client.CreateRepository(context.Background(), "repo", false, "my-school")
	require.NoError(t, err)
	assert.Equal(t, "my-school/repo", details.FullName)
}

func TestGetRepoDetails(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/learner/week1-calculator", r.URL.Path)
		_, _ = w.Write([]byte(`{"name": "week1-calculator", "full_name": "learner/week1-calculator", "language": "Python", "stargazers_count": 3}`))
	}))
	defer server.Close()

	client, err := NewClient("pat-1", discardLogger(), WithAPIBase(server.URL))
	require.NoError(t, err)

	details, err := client.GetRepoDetails(context.Background(), "learner/week1-calculator")
	require.NoError(t, err)
	assert.Equal(t, "Python", details.Language)
	assert.Equal(t, 3, details.Stars)
}

func TestGetRepoDetailsRejectsBareName(t *testing.T) {
	t.Parallel()

	client, err := NewClient("pat-1", discardLogger())
	require.NoError(t, err)

	_, err = client.GetRepoDetails(context.Background(), "just-a-name")
	assert.Error(t, err)
}

func TestUploadProjectFiles(t *testing.T) {
	t.Parallel()

	uploaded := map[string]string{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)

		var payload struct {
			Message string `json:"message"`
			Content string `json:"content"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		decoded, err := base64.StdEncoding.DecodeString(payload.Content)
		require.NoError(t, err)
		uploaded[r.URL.Path] = string(decoded)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := NewClient("pat-1", discardLogger(), WithAPIBase(server.URL))
	require.NoError(t, err)

	project := &domain.Project{
		Type:               domain.ProjectExercise,
		Title:              "Basic Calculator",
		Description:        "Build a calculator that handles the four basic operations",
		LearningObjectives: []string{"Functions", "User input"},
		EstimatedTime:      "3-4 hours",
		FilesToCreate:      []string{"calculator.py"},
		StarterCode:        "def add(a, b):\n    pass\n",
	}

	require.NoError(t, client.UploadProjectFiles(context.Background(), "learner/week1", project))

	readme := uploaded["/repos/learner/week1/contents/README.md"]
	assert.Contains(t, readme, "# Basic Calculator")
	assert.Contains(t, readme, "- Functions")
	assert.Contains(t, readme, "Estimated time: 3-4 hours")

	assert.Equal(t, "def add(a, b):\n    pass\n", uploaded["/repos/learner/week1/contents/calculator.py"])
}

func TestAPIErrorSurfaced(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message": "name already exists"}`))
	}))
	defer server.Close()

	client, err := NewClient("pat-1", discardLogger(), WithAPIBase(server.URL))
	require.NoError(t, err)

	_, err = client.CreateRepository(context.Background(), "dup", true, "")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "name already exists")
}

func TestNewClientRequiresToken(t *testing.T) {
	t.Parallel()

	_, err := NewClient("", discardLogger())
	assert.ErrorIs(t, err, ErrMissingToken)
}
