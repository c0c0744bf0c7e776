// Package plan converts a goal analysis into a week-by-week curriculum
// structure: one WeekSpec per week with a topic, an objective, and expected
// outcomes. Planning is deterministic; the same analysis always yields the
// same structure.
package plan

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/syllabus-api/internal/domain"
)

// Planner builds curriculum structures from goal analyses. It is stateless
// and safe for concurrent use.
type Planner struct {
	logger *slog.Logger
}

// NewPlanner creates a Planner.
func NewPlanner(logger *slog.Logger) *Planner {
	return &Planner{logger: logger}
}

// Plan produces exactly analysis.TotalWeeks validated week specs, numbered
// 1..N. Topic-specific templates are selected first; when a template runs
// short, skill-level filler weeks complete the schedule.
func (p *Planner) Plan(ctx context.Context, analysis *domain.GoalAnalysis) ([]domain.WeekSpec, error) {
	if err := analysis.Validate(); err != nil {
		return nil, fmt.Errorf("cannot plan from invalid analysis: %w", err)
	}

	p.logger.InfoContext(ctx, "planning curriculum structure",
		"topic", analysis.Topic,
		"skill_level", analysis.SkillLevel,
		"total_weeks", analysis.TotalWeeks)

	topicLower := strings.ToLower(analysis.Topic)

	var templates []domain.WeekSpec
	switch {
	case containsAny(topicLower, "python", "django", "flask"):
		templates = pythonWeeks(topicLower, analysis.SkillLevel)
	case containsAny(topicLower, "javascript", "react", "vue", "angular", "node"):
		templates = javascriptWeeks(topicLower, analysis.SkillLevel, analysis.TechnologyStack)
	case containsAny(topicLower, "java", "spring"):
		templates = javaWeeks(analysis.SkillLevel)
	case containsAny(topicLower, "data science", "machine learning", "ai", "ml"):
		templates = dataScienceWeeks(analysis.SkillLevel)
	case containsAny(topicLower, "web development", "frontend", "backend", "fullstack"):
		templates = webDevWeeks(analysis.SkillLevel)
	default:
		templates = genericWeeks(analysis.Topic)
	}

	if len(templates) > analysis.TotalWeeks {
		templates = templates[:analysis.TotalWeeks]
	}

	weeks := make([]domain.WeekSpec, 0, analysis.TotalWeeks)
	for i, tmpl := range templates {
		tmpl.WeekNumber = i + 1
		weeks = append(weeks, tmpl)
	}
	for len(weeks) < analysis.TotalWeeks {
		weeks = append(weeks, fillerWeek(analysis.Topic, analysis.SkillLevel, len(weeks)+1))
	}

	for i := range weeks {
		if err := weeks[i].Validate(); err != nil {
			return nil, fmt.Errorf("planned week %d is invalid: %w", weeks[i].WeekNumber, err)
		}
	}

	p.logger.InfoContext(ctx, "curriculum structure planned", "weeks", len(weeks))
	return weeks, nil
}

// LearningPath renders the "Week N: Topic" overview labels for a plan.
func LearningPath(weeks []domain.WeekSpec) []string {
	path := make([]string, 0, len(weeks))
	for _, week := range weeks {
		path = append(path, fmt.Sprintf("Week %d: %s", week.WeekNumber, week.Topic))
	}
	return path
}

// Prerequisites lists what a learner should bring before starting.
func Prerequisites(topic string, level domain.SkillLevel) []string {
	switch level {
	case domain.SkillBeginner:
		return []string{
			"Basic computer literacy",
			"Willingness to problem-solve",
			"Time commitment (6-10 hours per week)",
		}
	case domain.SkillIntermediate:
		return []string{
			fmt.Sprintf("Basic knowledge of %s", topic),
			"Programming fundamentals",
			"Development environment setup",
			"Time commitment (4-8 hours per week)",
		}
	default:
		return []string{
			fmt.Sprintf("Strong background in %s", topic),
			"Professional development experience",
			"Understanding of software architecture",
			"Time commitment (8-12 hours per week)",
		}
	}
}

// FinalOutcomes lists what completing the curriculum should deliver.
func FinalOutcomes(topic string, level domain.SkillLevel) []string {
	switch level {
	case domain.SkillBeginner:
		return []string{
			fmt.Sprintf("Solid foundation in %s", topic),
			"Ability to build basic projects",
			"Understanding of best practices",
			"Readiness for intermediate topics",
			"Portfolio of learning projects",
		}
	case domain.SkillIntermediate:
		return []string{
			fmt.Sprintf("Advanced proficiency in %s", topic),
			"Ability to build complex applications",
			"Understanding of design patterns",
			"Professional development practices",
			"Portfolio of production-ready projects",
		}
	default:
		return []string{
			fmt.Sprintf("Expert-level mastery of %s", topic),
			"Ability to architect scalable systems",
			"Leadership in technical decisions",
			"Contribution to community/open source",
			"Mentoring capabilities",
		}
	}
}

// fillerWeek completes a schedule when the topic templates run short.
func fillerWeek(topic string, level domain.SkillLevel, weekNumber int) domain.WeekSpec {
	switch level {
	case domain.SkillBeginner:
		return domain.WeekSpec{
			WeekNumber: weekNumber,
			Topic:      fmt.Sprintf("Advanced %s Topics", topic),
			Objective:  "Explore advanced concepts and build practical projects",
			ExpectedOutcomes: []string{
				"Apply advanced techniques",
				"Build complex projects",
				"Follow best practices",
				"Prepare for next level",
			},
		}
	case domain.SkillIntermediate:
		return domain.WeekSpec{
			WeekNumber: weekNumber,
			Topic:      fmt.Sprintf("Professional %s Development", topic),
			Objective:  "Master professional development practices",
			ExpectedOutcomes: []string{
				"Use professional tools",
				"Apply industry standards",
				"Build portfolio projects",
				"Optimize performance",
			},
		}
	default:
		return domain.WeekSpec{
			WeekNumber: weekNumber,
			Topic:      fmt.Sprintf("Expert-Level %s", topic),
			Objective:  "Master expert-level concepts and techniques",
			ExpectedOutcomes: []string{
				"Solve complex problems",
				"Architect scalable solutions",
				"Mentor others",
				"Contribute to open source",
			},
		}
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

func hasTech(stack []string, tech string) bool {
	for _, t := range stack {
		if t == tech {
			return true
		}
	}
	return false
}
