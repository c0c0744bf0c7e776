// Package goal turns a free-text learning goal into a structured analysis:
// the normalized topic, recognized technology stack, skill level, week count,
// weekly hour budget, and one milestone label per week.
package goal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/phrazzld/syllabus-api/internal/domain"
)

// ErrGoalTextEmpty is returned when the goal text is empty or whitespace.
var ErrGoalTextEmpty = errors.New("goal text cannot be empty")

// levelEstimate bounds the week count and sets the weekly hour budget for a
// skill level.
type levelEstimate struct {
	minWeeks     int
	maxWeeks     int
	hoursPerWeek int
}

// topicPatterns match "learn X", "master Y" style phrasings. The capture is
// non-greedy so trailing qualifiers ("for", "in", "with") are not swallowed
// into the topic.
var topicPatterns = []*regexp.Regexp{
	regexp.MustCompile(`learn\s+(.+?)(?:\s+for|\s+in|\s+with|$)`),
	regexp.MustCompile(`master\s+(.+?)(?:\s+for|\s+in|\s+with|$)`),
	regexp.MustCompile(`get\s+into\s+(.+?)(?:\s+for|\s+in|\s+with|$)`),
	regexp.MustCompile(`start\s+with\s+(.+?)(?:\s+for|\s+in|\s+with|$)`),
	regexp.MustCompile(`study\s+(.+?)(?:\s+for|\s+in|\s+with|$)`),
}

// Analyzer parses learning goals. It is stateless apart from its lookup
// tables and safe for concurrent use.
type Analyzer struct {
	logger *slog.Logger

	skillIndicators  map[domain.SkillLevel][]string
	technologyStacks map[string][]string
	timeEstimates    map[domain.SkillLevel]levelEstimate
}

// NewAnalyzer creates an Analyzer with the built-in indicator and technology
// tables.
func NewAnalyzer(logger *slog.Logger) *Analyzer {
	return &Analyzer{
		logger: logger,
		skillIndicators: map[domain.SkillLevel][]string{
			domain.SkillBeginner:     {"learn", "start", "begin", "basics", "introduction", "getting started", "new to"},
			domain.SkillIntermediate: {"improve", "better", "enhance", "deepen", "advance", "build upon"},
			domain.SkillAdvanced:     {"master", "expert", "deep dive", "advanced", "professional", "production"},
		},
		technologyStacks: map[string][]string{
			"python":          {"python", "django", "flask", "fastapi", "pandas", "numpy", "scikit-learn"},
			"javascript":      {"javascript", "js", "node", "react", "vue", "angular", "express"},
			"java":            {"java", "spring", "hibernate", "maven", "gradle"},
			"web_development": {"html", "css", "frontend", "backend", "fullstack", "web development"},
			"data_science":    {"data science", "machine learning", "ai", "ml", "analytics", "statistics"},
			"mobile":          {"mobile", "android", "ios", "flutter", "react native", "swift", "kotlin"},
			"devops":          {"devops", "docker", "kubernetes", "aws", "azure", "gcp", "terraform"},
			"database":        {"database", "sql", "postgresql", "mysql", "mongodb", "redis"},
		},
		timeEstimates: map[domain.SkillLevel]levelEstimate{
			domain.SkillBeginner:     {minWeeks: 6, maxWeeks: 12, hoursPerWeek: 8},
			domain.SkillIntermediate: {minWeeks: 4, maxWeeks: 8, hoursPerWeek: 6},
			domain.SkillAdvanced:     {minWeeks: 3, maxWeeks: 6, hoursPerWeek: 10},
		},
	}
}

// Analyze parses the goal text into a validated GoalAnalysis. An explicit
// week count or skill level, when non-zero, overrides the inferred value.
func (a *Analyzer) Analyze(
	ctx context.Context,
	goalText string,
	explicitWeeks int,
	explicitLevel domain.SkillLevel,
) (*domain.GoalAnalysis, error) {
	if strings.TrimSpace(goalText) == "" {
		return nil, ErrGoalTextEmpty
	}

	a.logger.InfoContext(ctx, "analyzing learning goal", "goal", goalText)

	topic := a.extractTopic(goalText)
	stack := a.identifyTechnologyStack(goalText)

	level := explicitLevel
	if level == "" {
		level = a.determineSkillLevel(goalText)
	}
	if !level.Valid() {
		return nil, domain.ErrInvalidSkillLevel
	}

	weeks := explicitWeeks
	if weeks == 0 {
		weeks = a.calculateTimeframe(level, stack)
	}
	if weeks < 1 {
		return nil, domain.ErrGoalWeeksInvalid
	}

	analysis := &domain.GoalAnalysis{
		Topic:           topic,
		TechnologyStack: stack,
		SkillLevel:      level,
		TotalWeeks:      weeks,
		HoursPerWeek:    a.timeEstimates[level].hoursPerWeek,
		Milestones:      a.generateMilestones(topic, stack, level, weeks),
	}

	if err := analysis.Validate(); err != nil {
		return nil, fmt.Errorf("goal analysis failed validation: %w", err)
	}

	a.logger.InfoContext(ctx, "goal analysis complete",
		"topic", analysis.Topic,
		"skill_level", analysis.SkillLevel,
		"total_weeks", analysis.TotalWeeks,
		"stack", analysis.TechnologyStack)

	return analysis, nil
}

// extractTopic pulls the main subject out of the goal text, falling back to
// the whole goal when no phrasing pattern matches.
func (a *Analyzer) extractTopic(goalText string) string {
	goalLower := strings.ToLower(goalText)

	for _, pattern := range topicPatterns {
		if match := pattern.FindStringSubmatch(goalLower); match != nil {
			return titleCase(strings.TrimSpace(match[1]))
		}
	}

	return titleCase(strings.TrimSpace(goalText))
}

// identifyTechnologyStack returns the recognized technology keywords,
// deduplicated and sorted.
func (a *Analyzer) identifyTechnologyStack(goalText string) []string {
	goalLower := strings.ToLower(goalText)

	seen := make(map[string]struct{})
	for _, technologies := range a.technologyStacks {
		for _, tech := range technologies {
			if strings.Contains(goalLower, tech) {
				seen[tech] = struct{}{}
			}
		}
	}

	stack := make([]string, 0, len(seen))
	for tech := range seen {
		stack = append(stack, tech)
	}
	sort.Strings(stack)

	return stack
}

// determineSkillLevel scores each level by its indicator hits. Ties resolve
// to the less advanced level; no hits default to beginner.
func (a *Analyzer) determineSkillLevel(goalText string) domain.SkillLevel {
	goalLower := strings.ToLower(goalText)

	best := domain.SkillBeginner
	bestScore := 0
	for _, level := range []domain.SkillLevel{domain.SkillBeginner, domain.SkillIntermediate, domain.SkillAdvanced} {
		score := 0
		for _, indicator := range a.skillIndicators[level] {
			if strings.Contains(goalLower, indicator) {
				score++
			}
		}
		if score > bestScore {
			best = level
			bestScore = score
		}
	}

	return best
}

// calculateTimeframe starts from the level's minimum week count, adds weeks
// for stack breadth, and clamps to the level's maximum.
func (a *Analyzer) calculateTimeframe(level domain.SkillLevel, stack []string) int {
	estimate := a.timeEstimates[level]

	weeks := estimate.minWeeks
	switch {
	case len(stack) > 3:
		weeks += 2
	case len(stack) > 1:
		weeks++
	}

	if weeks > estimate.maxWeeks {
		return estimate.maxWeeks
	}
	return weeks
}

// MaxWeeks returns the largest supported week count across skill levels.
func (a *Analyzer) MaxWeeks() int {
	max := 0
	for _, estimate := range a.timeEstimates {
		if estimate.maxWeeks > max {
			max = estimate.maxWeeks
		}
	}
	return max
}

// titleCase uppercases the first letter of each word and lowercases the
// rest, treating any non-letter as a word boundary.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		switch {
		case isLetter && !prevLetter:
			b.WriteRune(toUpper(r))
		case isLetter:
			b.WriteRune(toLower(r))
		default:
			b.WriteRune(r)
		}
		prevLetter = isLetter
	}

	return b.String()
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
