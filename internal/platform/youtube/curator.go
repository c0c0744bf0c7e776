// Package youtube implements video curation against the YouTube Data API v3,
// with a fallback curator for when the API is unavailable or returns nothing.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/phrazzld/syllabus-api/internal/domain"
	"github.com/phrazzld/syllabus-api/internal/generation"
)

const (
	defaultBaseURL = "https://www.googleapis.com/youtube/v3"

	// videoCount is how many videos each week receives.
	videoCount = 3
)

// preferredChannels score higher during result filtering. Partial channel
// name matches count.
var preferredChannels = []string{
	"freeCodeCamp.org",
	"Programming with Mosh",
	"Traversy Media",
	"The Net Ninja",
	"Academind",
	"CS Dojo",
	"Corey Schafer",
	"sentdex",
	"TechWorld with Nana",
}

// Curator searches YouTube for educational videos. When the search fails or
// returns no results, the fallback curator supplies the week's videos
// instead, so a provider outage never fails a build.
type Curator struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	fallback   generation.VideoCurator
	logger     *slog.Logger
}

// Option configures a Curator.
type Option func(*Curator)

// WithBaseURL overrides the API endpoint, primarily for tests.
func WithBaseURL(u string) Option {
	return func(c *Curator) { c.baseURL = u }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Curator) { c.httpClient = client }
}

// NewCurator creates a Curator using the given API key and fallback.
func NewCurator(apiKey string, fallback generation.VideoCurator, logger *slog.Logger, opts ...Option) (*Curator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: YouTube API key is required", generation.ErrInvalidConfig)
	}
	if fallback == nil {
		return nil, fmt.Errorf("%w: fallback video curator is required", generation.ErrInvalidConfig)
	}

	c := &Curator{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		fallback:   fallback,
		logger:     logger.With("component", "youtube_curator"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// CurateVideos searches YouTube for the week's topic and returns the
// highest-scoring results, falling back to the static catalog on failure.
func (c *Curator) CurateVideos(ctx context.Context, req generation.Request) ([]domain.Video, error) {
	videos, err := c.search(ctx, req.Week.Topic, req.SkillLevel)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		c.logger.WarnContext(ctx, "YouTube search failed, using fallback",
			"topic", req.Week.Topic, "error", err)
		return c.fallback.CurateVideos(ctx, req)
	}
	if len(videos) == 0 {
		c.logger.DebugContext(ctx, "YouTube search returned no results, using fallback",
			"topic", req.Week.Topic)
		return c.fallback.CurateVideos(ctx, req)
	}
	return videos, nil
}

// searchResponse is the subset of the search endpoint's payload we consume.
type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
			Description  string `json:"description"`
		} `json:"snippet"`
	} `json:"items"`
}

func (c *Curator) search(ctx context.Context, topic string, level domain.SkillLevel) ([]domain.Video, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", searchQuery(topic, level))
	params.Set("type", "video")
	// Over-fetch so preferred-channel filtering has results to discard.
	params.Set("maxResults", strconv.Itoa(videoCount*3))
	params.Set("order", "relevance")
	params.Set("videoDuration", "medium")
	params.Set("key", c.apiKey)

	reqURL := c.baseURL + "/search?" + params.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building YouTube request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling YouTube search: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: YouTube search returned %d", generation.ErrGenerationFailed, resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding YouTube response: %v", generation.ErrInvalidResponse, err)
	}

	return rankResults(payload), nil
}

// rankResults scores results by channel preference and keeps the top ones.
func rankResults(payload searchResponse) []domain.Video {
	type scored struct {
		video domain.Video
		score int
	}

	results := make([]scored, 0, len(payload.Items))
	for _, item := range payload.Items {
		if item.ID.VideoID == "" {
			continue
		}

		video := domain.Video{
			Title:       item.Snippet.Title,
			URL:         "https://www.youtube.com/watch?v=" + item.ID.VideoID,
			Channel:     item.Snippet.ChannelTitle,
			Description: truncate(item.Snippet.Description, 200),
		}

		score := 5
		for _, pref := range preferredChannels {
			if strings.Contains(video.Channel, pref) {
				score = 10
				break
			}
		}
		results = append(results, scored{video: video, score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	videos := make([]domain.Video, 0, videoCount)
	for _, r := range results {
		if len(videos) == videoCount {
			break
		}
		videos = append(videos, r.video)
	}
	return videos
}

// searchQuery combines the topic with two skill-level modifiers.
func searchQuery(topic string, level domain.SkillLevel) string {
	var modifiers [2]string
	switch level {
	case domain.SkillBeginner:
		modifiers = [2]string{"tutorial", "beginners"}
	case domain.SkillIntermediate:
		modifiers = [2]string{"course", "guide"}
	default:
		modifiers = [2]string{"advanced", "masterclass"}
	}
	return fmt.Sprintf("%s %s %s", strings.ToLower(topic), modifiers[0], modifiers[1])
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
