package youtube

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/syllabus-api/internal/domain"
	"github.com/phrazzld/syllabus-api/internal/generation"
	"github.com/phrazzld/syllabus-api/internal/generation/static"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRequest(topic string, level domain.SkillLevel) generation.Request {
	return generation.Request{
		Week: domain.WeekSpec{
			WeekNumber:       1,
			Topic:            topic,
			Objective:        "Learn " + topic,
			ExpectedOutcomes: []string{"Understand " + topic},
		},
		Topic:      topic,
		SkillLevel: level,
		TotalWeeks: 4,
	}
}

const searchPayload = `{
  "items": [
    {"id": {"videoId": "aaa111"}, "snippet": {"title": "Go Basics", "channelTitle": "Random Channel", "description": "intro"}},
    {"id": {"videoId": "bbb222"}, "snippet": {"title": "Go Crash Course", "channelTitle": "Traversy Media", "description": "crash course"}},
    {"id": {"videoId": "ccc333"}, "snippet": {"title": "Go Full Course", "channelTitle": "freeCodeCamp.org", "description": "full course"}},
    {"id": {"videoId": "ddd444"}, "snippet": {"title": "Go Tips", "channelTitle": "Another Channel", "description": "tips"}}
  ]
}`

func TestCurateVideosRanksPreferredChannels(t *testing.T) {
	t.Parallel()

	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		assert.Equal(t, "snippet", r.URL.Query().Get("part"))
		assert.Equal(t, "video", r.URL.Query().Get("type"))
		assert.Equal(t, "9", r.URL.Query().Get("maxResults"))
		assert.Equal(t, "medium", r.URL.Query().Get("videoDuration"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchPayload))
	}))
	defer server.Close()

	curator, err := NewCurator("test-key", static.NewVideoCurator(), discardLogger(), WithBaseURL(server.URL))
	require.NoError(t, err)

	videos, err := curator.CurateVideos(context.Background(), testRequest("Go Fundamentals", domain.SkillBeginner))
	require.NoError(t, err)
	require.Len(t, videos, 3)

	assert.Equal(t, "go fundamentals tutorial beginners", gotQuery)

	// Preferred channels sort ahead of the rest, original order preserved
	// within each score band.
	assert.Equal(t, "Traversy Media", videos[0].Channel)
	assert.Equal(t, "freeCodeCamp.org", videos[1].Channel)
	assert.Equal(t, "Random Channel", videos[2].Channel)
	assert.Equal(t, "https://www.youtube.com/watch?v=bbb222", videos[0].URL)
}

func TestCurateVideosFallsBackOnServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	curator, err := NewCurator("test-key", static.NewVideoCurator(), discardLogger(), WithBaseURL(server.URL))
	require.NoError(t, err)

	videos, err := curator.CurateVideos(context.Background(), testRequest("Python Fundamentals", domain.SkillBeginner))
	require.NoError(t, err)
	require.NotEmpty(t, videos, "fallback catalog must supply videos")
}

func TestCurateVideosFallsBackOnEmptyResults(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	curator, err := NewCurator("test-key", static.NewVideoCurator(), discardLogger(), WithBaseURL(server.URL))
	require.NoError(t, err)

	videos, err := curator.CurateVideos(context.Background(), testRequest("Rust Basics", domain.SkillBeginner))
	require.NoError(t, err)
	require.NotEmpty(t, videos)
}

func TestCurateVideosHonorsCancelledContext(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(searchPayload))
	}))
	defer server.Close()

	curator, err := NewCurator("test-key", static.NewVideoCurator(), discardLogger(), WithBaseURL(server.URL))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = curator.CurateVideos(ctx, testRequest("Go", domain.SkillBeginner))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewCuratorValidation(t *testing.T) {
	t.Parallel()

	_, err := NewCurator("", static.NewVideoCurator(), discardLogger())
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	_, err = NewCurator("key", nil, discardLogger())
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}
