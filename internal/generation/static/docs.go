package static

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/phrazzld/syllabus-api/internal/domain"
	"github.com/phrazzld/syllabus-api/internal/generation"
)

// defaultDocCount is how many documentation links each week receives.
const defaultDocCount = 3

var levelWords = regexp.MustCompile(`(?i)\b(fundamentals|basics|introduction|advanced|intermediate)\b`)
var multiSpace = regexp.MustCompile(`\s+`)

// DocFinder serves documentation links from a curated set, with generated
// search links for uncovered topics.
type DocFinder struct {
	curated map[string]map[domain.SkillLevel][]domain.Document
}

var _ generation.DocFinder = (*DocFinder)(nil)

// NewDocFinder creates a DocFinder with the built-in curated set.
func NewDocFinder() *DocFinder {
	return &DocFinder{
		curated: map[string]map[domain.SkillLevel][]domain.Document{
			"python": {
				domain.SkillBeginner: {
					{
						Title:       "Python Tutorial - Official Documentation",
						URL:         "https://docs.python.org/3/tutorial/",
						Source:      "docs.python.org",
						Type:        "Official Documentation",
						Description: "Comprehensive official Python tutorial covering all basics",
					},
					{
						Title:       "Python Basics - Real Python",
						URL:         "https://realpython.com/python-basics/",
						Source:      "realpython.com",
						Type:        "Tutorial Series",
						Description: "High-quality Python tutorials for beginners",
					},
					{
						Title:       "Learn Python - freeCodeCamp",
						URL:         "https://www.freecodecamp.org/learn/scientific-computing-with-python/",
						Source:      "freecodecamp.org",
						Type:        "Interactive Course",
						Description: "Free interactive Python course with projects",
					},
				},
			},
			"javascript": {
				domain.SkillBeginner: {
					{
						Title:       "JavaScript Guide - MDN",
						URL:         "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Guide",
						Source:      "developer.mozilla.org",
						Type:        "Official Documentation",
						Description: "Comprehensive JavaScript guide from Mozilla",
					},
					{
						Title:       "JavaScript Tutorial - W3Schools",
						URL:         "https://www.w3schools.com/js/",
						Source:      "w3schools.com",
						Type:        "Tutorial",
						Description: "Interactive JavaScript tutorial with examples",
					},
					{
						Title:       "Learn JavaScript - freeCodeCamp",
						URL:         "https://www.freecodecamp.org/learn/javascript-algorithms-and-data-structures/",
						Source:      "freecodecamp.org",
						Type:        "Interactive Course",
						Description: "Free JavaScript course with algorithmic thinking",
					},
				},
			},
			"react": {
				domain.SkillBeginner: {
					{
						Title:       "React Documentation",
						URL:         "https://reactjs.org/docs/getting-started.html",
						Source:      "reactjs.org",
						Type:        "Official Documentation",
						Description: "Official React documentation and guides",
					},
					{
						Title:       "React Tutorial - Intro to React",
						URL:         "https://reactjs.org/tutorial/tutorial.html",
						Source:      "reactjs.org",
						Type:        "Official Tutorial",
						Description: "Step-by-step React tutorial building a tic-tac-toe game",
					},
				},
			},
		},
	}
}

// FindDocs returns curated links when the week's topic matches one,
// generated search links otherwise. It never returns an empty list.
func (f *DocFinder) FindDocs(ctx context.Context, req generation.Request) ([]domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	topicLower := strings.ToLower(req.Week.Topic)
	for tech, levels := range f.curated {
		if !strings.Contains(topicLower, tech) {
			continue
		}
		if docs, ok := levels[req.SkillLevel]; ok {
			if len(docs) > defaultDocCount {
				docs = docs[:defaultDocCount]
			}
			return docs, nil
		}
	}

	return genericDocs(req.Week.Topic, req.SkillLevel, defaultDocCount), nil
}

// genericDocs builds search-link documents plus one trusted-source link.
func genericDocs(topic string, level domain.SkillLevel, count int) []domain.Document {
	clean := cleanTopicName(topic)

	docTypes := []string{"documentation", "tutorials", "examples"}
	if level != domain.SkillBeginner {
		docTypes = append(docTypes, "best_practices")
	}
	if len(docTypes) > count {
		docTypes = docTypes[:count]
	}

	docs := make([]domain.Document, 0, count)
	for _, docType := range docTypes {
		query := searchQuery(clean, docType)
		docs = append(docs, domain.Document{
			Title:       docTitle(clean, docType, level),
			URL:         "https://www.google.com/search?q=" + url.QueryEscape(query),
			Source:      "Search Results",
			Type:        typeLabel(docType),
			Description: fmt.Sprintf("Search for %s related to %s", strings.ReplaceAll(docType, "_", " "), clean),
			SearchQuery: query,
		})
	}

	if len(docs) < count {
		docs = append(docs, trustedSourceDoc(clean))
	}
	if len(docs) > count {
		docs = docs[:count]
	}

	return docs
}

// cleanTopicName strips level qualifiers so search queries stay focused.
func cleanTopicName(topic string) string {
	clean := levelWords.ReplaceAllString(topic, "")
	return strings.TrimSpace(multiSpace.ReplaceAllString(clean, " "))
}

func searchQuery(topic, docType string) string {
	switch docType {
	case "documentation":
		return topic + " documentation"
	case "tutorials":
		return topic + " tutorial"
	case "examples":
		return topic + " examples"
	default:
		return topic + " best practices"
	}
}

func typeLabel(docType string) string {
	words := strings.Split(strings.ReplaceAll(docType, "_", " "), " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func docTitle(topic, docType string, level domain.SkillLevel) string {
	switch docType {
	case "documentation":
		if level == domain.SkillBeginner {
			return fmt.Sprintf("%s - Getting Started Guide", topic)
		}
		return fmt.Sprintf("%s - Official Documentation", topic)
	case "tutorials":
		return fmt.Sprintf("Learn %s - Step-by-Step Tutorial", topic)
	case "examples":
		return fmt.Sprintf("%s Code Examples and Projects", topic)
	case "best_practices":
		return fmt.Sprintf("%s Best Practices and Patterns", topic)
	default:
		return fmt.Sprintf("%s Learning Resources", topic)
	}
}

// trustedSourceDoc picks the best-fitting trusted site for the topic.
func trustedSourceDoc(topic string) domain.Document {
	topicLower := strings.ToLower(topic)
	escaped := url.QueryEscape(topic)

	var source, link string
	switch {
	case containsAny(topicLower, "python", "django", "flask"):
		source = "realpython.com"
		link = "https://realpython.com/search?q=" + escaped
	case containsAny(topicLower, "javascript", "react", "vue", "angular", "html", "css"):
		source = "developer.mozilla.org"
		link = "https://developer.mozilla.org/en-US/search?q=" + escaped
	case containsAny(topicLower, "data", "machine learning", "ai", "pandas", "numpy"):
		source = "towardsdatascience.com"
		link = "https://towardsdatascience.com/search?q=" + escaped
	default:
		source = "freecodecamp.org"
		link = "https://www.freecodecamp.org/news/search/?query=" + escaped
	}

	return domain.Document{
		Title:       fmt.Sprintf("%s - %s", topic, source),
		URL:         link,
		Source:      source,
		Type:        "Trusted Source",
		Description: fmt.Sprintf("High-quality %s content from %s", topic, source),
	}
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
