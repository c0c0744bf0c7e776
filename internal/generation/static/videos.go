// Package static implements all four content generators from built-in lookup
// tables. It needs no network access and serves as the default content
// source and as the fallback when external providers are unavailable.
package static

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/phrazzld/syllabus-api/internal/domain"
	"github.com/phrazzld/syllabus-api/internal/generation"
)

// defaultVideoCount is how many videos each week receives.
const defaultVideoCount = 3

// VideoCurator serves videos from a curated catalog, with generated search
// links for topics the catalog does not cover.
type VideoCurator struct {
	catalog map[string]map[domain.SkillLevel][]domain.Video
}

var _ generation.VideoCurator = (*VideoCurator)(nil)

// NewVideoCurator creates a VideoCurator with the built-in catalog.
func NewVideoCurator() *VideoCurator {
	return &VideoCurator{
		catalog: map[string]map[domain.SkillLevel][]domain.Video{
			"python": {
				domain.SkillBeginner: {
					{
						Title:       "Python Tutorial - Python Full Course for Beginners",
						URL:         "https://www.youtube.com/watch?v=_uQrJ0TkZlc",
						Duration:    "4:26:52",
						Channel:     "Programming with Mosh",
						Views:       "15M+",
						Description: "Complete Python tutorial for beginners covering all fundamentals",
					},
					{
						Title:       "Learn Python - Full Course for Beginners [Tutorial]",
						URL:         "https://www.youtube.com/watch?v=rfscVS0vtbw",
						Duration:    "4:20:19",
						Channel:     "freeCodeCamp.org",
						Views:       "28M+",
						Description: "Comprehensive Python course from freeCodeCamp",
					},
				},
			},
			"javascript": {
				domain.SkillBeginner: {
					{
						Title:       "JavaScript Tutorial for Beginners: Learn JavaScript in 1 Hour",
						URL:         "https://www.youtube.com/watch?v=W6NZfCO5SIk",
						Duration:    "1:00:00",
						Channel:     "Programming with Mosh",
						Views:       "8M+",
						Description: "Quick and comprehensive JavaScript tutorial for beginners",
					},
					{
						Title:       "Learn JavaScript - Full Course for Beginners",
						URL:         "https://www.youtube.com/watch?v=PkZNo7MFNFg",
						Duration:    "3:26:42",
						Channel:     "freeCodeCamp.org",
						Views:       "19M+",
						Description: "Complete JavaScript course covering all basics",
					},
				},
			},
		},
	}
}

// CurateVideos returns catalog entries when the week's topic matches one,
// generated search links otherwise. It never returns an empty list.
func (c *VideoCurator) CurateVideos(ctx context.Context, req generation.Request) ([]domain.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	topicLower := strings.ToLower(req.Week.Topic)
	for tech, levels := range c.catalog {
		if !strings.Contains(topicLower, tech) {
			continue
		}
		if videos, ok := levels[req.SkillLevel]; ok {
			if len(videos) > defaultVideoCount {
				videos = videos[:defaultVideoCount]
			}
			return videos, nil
		}
	}

	return genericVideos(req.Week.Topic, req.SkillLevel, defaultVideoCount), nil
}

// genericVideos builds search-link placeholders when the catalog has no
// entry for the topic.
func genericVideos(topic string, level domain.SkillLevel, count int) []domain.Video {
	var titles []string
	switch level {
	case domain.SkillBeginner:
		titles = []string{
			fmt.Sprintf("%s Tutorial for Beginners", topic),
			fmt.Sprintf("Learn %s - Complete Course", topic),
			fmt.Sprintf("%s Crash Course", topic),
		}
	case domain.SkillIntermediate:
		titles = []string{
			fmt.Sprintf("Advanced %s Course", topic),
			fmt.Sprintf("%s Deep Dive", topic),
			fmt.Sprintf("Mastering %s", topic),
		}
	default:
		titles = []string{
			fmt.Sprintf("Expert %s Techniques", topic),
			fmt.Sprintf("Professional %s Development", topic),
			fmt.Sprintf("%s Best Practices", topic),
		}
	}

	searchURL := "https://www.youtube.com/results?search_query=" + url.QueryEscape(topic+" tutorial")

	videos := make([]domain.Video, 0, count)
	for i := 0; i < count; i++ {
		videos = append(videos, domain.Video{
			Title:       titles[i%len(titles)],
			URL:         searchURL,
			Channel:     "Search Results",
			Description: fmt.Sprintf("Search for high-quality %s tutorials on YouTube", topic),
			Duration:    "Various",
			Note:        "Manual search required - curated videos not available for this topic",
		})
	}

	return videos
}
