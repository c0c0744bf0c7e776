package goal

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/syllabus-api/internal/domain"
)

func testAnalyzer() *Analyzer {
	return NewAnalyzer(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAnalyzePythonGoal(t *testing.T) {
	t.Parallel()

	analysis, err := testAnalyzer().Analyze(context.Background(), "Learn Python for web development", 0, "")
	if err != nil {
		t.Fatalf("Analyze() error = %v, want nil", err)
	}

	if analysis.Topic != "Python" {
		t.Errorf("Topic = %q, want %q", analysis.Topic, "Python")
	}
	if !analysis.HasTechnology("python") {
		t.Errorf("TechnologyStack = %v, want python included", analysis.TechnologyStack)
	}
	if analysis.SkillLevel != domain.SkillBeginner {
		t.Errorf("SkillLevel = %q, want beginner", analysis.SkillLevel)
	}
	if analysis.TotalWeeks < 6 || analysis.TotalWeeks > 12 {
		t.Errorf("TotalWeeks = %d, want within [6, 12]", analysis.TotalWeeks)
	}
	if analysis.HoursPerWeek != 8 {
		t.Errorf("HoursPerWeek = %d, want 8", analysis.HoursPerWeek)
	}
	if len(analysis.Milestones) != analysis.TotalWeeks {
		t.Errorf("len(Milestones) = %d, want %d", len(analysis.Milestones), analysis.TotalWeeks)
	}
}

func TestAnalyzeExplicitOverrides(t *testing.T) {
	t.Parallel()

	analysis, err := testAnalyzer().Analyze(
		context.Background(), "Master React and Redux", 4, domain.SkillIntermediate)
	if err != nil {
		t.Fatalf("Analyze() error = %v, want nil", err)
	}

	if analysis.TotalWeeks != 4 {
		t.Errorf("TotalWeeks = %d, want explicit 4", analysis.TotalWeeks)
	}
	if analysis.SkillLevel != domain.SkillIntermediate {
		t.Errorf("SkillLevel = %q, want explicit intermediate", analysis.SkillLevel)
	}
	if len(analysis.Milestones) != 4 {
		t.Errorf("len(Milestones) = %d, want 4", len(analysis.Milestones))
	}
}

func TestAnalyzeEmptyGoal(t *testing.T) {
	t.Parallel()

	_, err := testAnalyzer().Analyze(context.Background(), "   ", 0, "")
	if !errors.Is(err, ErrGoalTextEmpty) {
		t.Errorf("Analyze() error = %v, want ErrGoalTextEmpty", err)
	}
}

func TestExtractTopic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		goal string
		want string
	}{
		{"Learn Python for data science", "Python"},
		{"Master machine learning", "Machine Learning"},
		{"get into web development", "Web Development"},
		{"start with rust", "Rust"},
		{"study algorithms in depth", "Algorithms"},
		{"Become a great engineer", "Become A Great Engineer"},
	}

	a := testAnalyzer()
	for _, tc := range tests {
		if got := a.extractTopic(tc.goal); got != tc.want {
			t.Errorf("extractTopic(%q) = %q, want %q", tc.goal, got, tc.want)
		}
	}
}

func TestIdentifyTechnologyStack(t *testing.T) {
	t.Parallel()

	a := testAnalyzer()

	stack := a.identifyTechnologyStack("Learn Django and React with PostgreSQL")
	want := map[string]bool{"django": true, "react": true, "postgresql": true}
	for tech := range want {
		found := false
		for _, got := range stack {
			if got == tech {
				found = true
			}
		}
		if !found {
			t.Errorf("identifyTechnologyStack() = %v, want %q included", stack, tech)
		}
	}

	for i := 1; i < len(stack); i++ {
		if stack[i-1] >= stack[i] {
			t.Errorf("stack not sorted: %v", stack)
		}
	}

	if got := a.identifyTechnologyStack("Learn knitting"); len(got) != 0 {
		t.Errorf("identifyTechnologyStack(knitting) = %v, want empty", got)
	}
}

func TestDetermineSkillLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		goal string
		want domain.SkillLevel
	}{
		{"Learn Python basics", domain.SkillBeginner},
		{"Improve and deepen my Go skills", domain.SkillIntermediate},
		{"Master production Kubernetes", domain.SkillAdvanced},
		{"Kubernetes networking", domain.SkillBeginner},
	}

	a := testAnalyzer()
	for _, tc := range tests {
		if got := a.determineSkillLevel(tc.goal); got != tc.want {
			t.Errorf("determineSkillLevel(%q) = %q, want %q", tc.goal, got, tc.want)
		}
	}
}

func TestCalculateTimeframe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level domain.SkillLevel
		stack []string
		want  int
	}{
		{"beginner single tech", domain.SkillBeginner, []string{"python"}, 6},
		{"beginner two techs", domain.SkillBeginner, []string{"python", "django"}, 7},
		{"beginner wide stack", domain.SkillBeginner, []string{"a", "b", "c", "d"}, 8},
		{"advanced clamped to max", domain.SkillAdvanced, []string{"a", "b", "c", "d", "e"}, 5},
		{"intermediate baseline", domain.SkillIntermediate, nil, 4},
	}

	a := testAnalyzer()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.calculateTimeframe(tc.level, tc.stack); got != tc.want {
				t.Errorf("calculateTimeframe(%s, %d techs) = %d, want %d",
					tc.level, len(tc.stack), got, tc.want)
			}
		})
	}
}

func TestGenerateMilestonesPadding(t *testing.T) {
	t.Parallel()

	a := testAnalyzer()

	// Advanced Java templates carry 3 entries; request more to force padding.
	milestones := a.generateMilestones("Java", nil, domain.SkillAdvanced, 6)
	if len(milestones) != 6 {
		t.Fatalf("len(milestones) = %d, want 6", len(milestones))
	}
	if milestones[5] != "Week 6: Advanced Java Application" {
		t.Errorf("padded milestone = %q", milestones[5])
	}

	// Beginner Python templates carry 8 entries; request fewer to force truncation.
	milestones = a.generateMilestones("Python", nil, domain.SkillBeginner, 3)
	if len(milestones) != 3 {
		t.Fatalf("len(milestones) = %d, want 3", len(milestones))
	}
}

func TestGenerateMilestonesTopicRouting(t *testing.T) {
	t.Parallel()

	a := testAnalyzer()

	tests := []struct {
		topic string
		want  string
	}{
		{"Python", "Week 1: Python Environment Setup and Basic Syntax"},
		{"Javascript", "Week 1: JavaScript Fundamentals and DOM Manipulation"},
		{"Java", "Week 1: Java Environment Setup and Basic Syntax"},
		{"Machine Learning", "Week 1: Python for Data Science and Jupyter Notebooks"},
		{"Web Development", "Week 1: HTML5 Fundamentals and Semantic Markup"},
		{"Rust", "Week 1: Rust Fundamentals and Environment Setup"},
	}

	for _, tc := range tests {
		milestones := a.generateMilestones(tc.topic, nil, domain.SkillBeginner, 4)
		if milestones[0] != tc.want {
			t.Errorf("generateMilestones(%q)[0] = %q, want %q", tc.topic, milestones[0], tc.want)
		}
	}
}

func TestGenerateMilestonesFrameworkExtensions(t *testing.T) {
	t.Parallel()

	a := testAnalyzer()

	milestones := a.generateMilestones("Python", []string{"django", "python"}, domain.SkillAdvanced, 8)
	if milestones[4] != "Week 5: Django Framework Fundamentals" {
		t.Errorf("milestones[4] = %q, want Django extension", milestones[4])
	}
}
