package plan

import (
	"context"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/phrazzld/syllabus-api/internal/domain"
)

func testPlanner() *Planner {
	return NewPlanner(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func analysisFor(topic string, level domain.SkillLevel, weeks int) *domain.GoalAnalysis {
	milestones := make([]string, weeks)
	for i := range milestones {
		milestones[i] = "Week N: placeholder"
	}
	return &domain.GoalAnalysis{
		Topic:        topic,
		SkillLevel:   level,
		TotalWeeks:   weeks,
		HoursPerWeek: 8,
		Milestones:   milestones,
	}
}

func TestPlanWeekCountAndNumbering(t *testing.T) {
	t.Parallel()

	p := testPlanner()

	// Every supported week count yields exactly that many contiguous weeks.
	for weeks := 1; weeks <= 12; weeks++ {
		plan, err := p.Plan(context.Background(), analysisFor("Python", domain.SkillBeginner, weeks))
		if err != nil {
			t.Fatalf("Plan(%d weeks) error = %v", weeks, err)
		}
		if len(plan) != weeks {
			t.Fatalf("len(plan) = %d, want %d", len(plan), weeks)
		}
		for i, week := range plan {
			if week.WeekNumber != i+1 {
				t.Errorf("plan[%d].WeekNumber = %d, want %d", i, week.WeekNumber, i+1)
			}
			if len(week.ExpectedOutcomes) == 0 {
				t.Errorf("week %d has no expected outcomes", week.WeekNumber)
			}
		}
	}
}

func TestPlanDeterminism(t *testing.T) {
	t.Parallel()

	p := testPlanner()
	analysis := analysisFor("Machine Learning", domain.SkillBeginner, 8)

	first, err := p.Plan(context.Background(), analysis)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	second, err := p.Plan(context.Background(), analysis)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("Plan() is not deterministic for identical analyses")
	}
}

func TestPlanTopicRouting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		topic string
		level domain.SkillLevel
		want  string
	}{
		{"Python", domain.SkillBeginner, "Python Environment and Syntax"},
		{"Javascript", domain.SkillBeginner, "JavaScript Fundamentals"},
		{"Java", domain.SkillBeginner, "Java Environment and Basics"},
		{"Machine Learning", domain.SkillBeginner, "Data Science Environment Setup"},
		{"Web Development", domain.SkillBeginner, "HTML5 and Semantic Markup"},
		{"Rust", domain.SkillBeginner, "Rust Fundamentals"},
	}

	p := testPlanner()
	for _, tc := range tests {
		plan, err := p.Plan(context.Background(), analysisFor(tc.topic, tc.level, 4))
		if err != nil {
			t.Fatalf("Plan(%q) error = %v", tc.topic, err)
		}
		if plan[0].Topic != tc.want {
			t.Errorf("Plan(%q)[0].Topic = %q, want %q", tc.topic, plan[0].Topic, tc.want)
		}
	}
}

func TestPlanFillerWeeksByLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level domain.SkillLevel
		want  string
	}{
		{domain.SkillBeginner, "Advanced Rust Topics"},
		{domain.SkillIntermediate, "Professional Rust Development"},
		{domain.SkillAdvanced, "Expert-Level Rust"},
	}

	p := testPlanner()
	for _, tc := range tests {
		// Generic templates carry 2 weeks; the rest are filler.
		plan, err := p.Plan(context.Background(), analysisFor("Rust", tc.level, 4))
		if err != nil {
			t.Fatalf("Plan(%s) error = %v", tc.level, err)
		}
		if plan[3].Topic != tc.want {
			t.Errorf("Plan(%s)[3].Topic = %q, want %q", tc.level, plan[3].Topic, tc.want)
		}
	}
}

func TestPlanPythonWebFocus(t *testing.T) {
	t.Parallel()

	p := testPlanner()

	plan, err := p.Plan(context.Background(), analysisFor("Python Web Development", domain.SkillBeginner, 8))
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if plan[6].Topic != "Web Development Foundations" {
		t.Errorf("plan[6].Topic = %q, want web specialization", plan[6].Topic)
	}
}

func TestPlanRejectsInvalidAnalysis(t *testing.T) {
	t.Parallel()

	analysis := analysisFor("Python", domain.SkillBeginner, 4)
	analysis.Topic = ""

	if _, err := testPlanner().Plan(context.Background(), analysis); err == nil {
		t.Error("Plan() with invalid analysis should fail")
	}
}

func TestLearningPath(t *testing.T) {
	t.Parallel()

	weeks := []domain.WeekSpec{
		{WeekNumber: 1, Topic: "Basics"},
		{WeekNumber: 2, Topic: "Projects"},
	}

	path := LearningPath(weeks)
	want := []string{"Week 1: Basics", "Week 2: Projects"}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("LearningPath() = %v, want %v", path, want)
	}
}

func TestPrerequisitesAndFinalOutcomes(t *testing.T) {
	t.Parallel()

	for _, level := range []domain.SkillLevel{domain.SkillBeginner, domain.SkillIntermediate, domain.SkillAdvanced} {
		if got := Prerequisites("Go", level); len(got) == 0 {
			t.Errorf("Prerequisites(%s) is empty", level)
		}
		if got := FinalOutcomes("Go", level); len(got) == 0 {
			t.Errorf("FinalOutcomes(%s) is empty", level)
		}
	}
}
