package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func validWeeks(n int) []WeeklyContent {
	weeks := make([]WeeklyContent, 0, n)
	for i := 1; i <= n; i++ {
		weeks = append(weeks, WeeklyContent{
			WeekNumber:       i,
			Topic:            "Python Fundamentals",
			Objective:        "Build a solid foundation",
			ExpectedOutcomes: []string{"Understand core concepts"},
			Project:          sampleProject(),
		})
	}
	return weeks
}

func TestNewCurriculumPlan(t *testing.T) {
	t.Parallel()

	t.Run("valid plan", func(t *testing.T) {
		t.Parallel()

		analysis := validAnalysis()
		plan, err := NewCurriculumPlan(analysis, validWeeks(analysis.TotalWeeks))
		if err != nil {
			t.Fatalf("NewCurriculumPlan() error = %v, want nil", err)
		}

		if plan.ID == uuid.Nil {
			t.Error("plan ID was not generated")
		}
		if plan.Topic != analysis.Topic {
			t.Errorf("Topic = %q, want %q", plan.Topic, analysis.Topic)
		}
		if plan.CreatedAt.IsZero() {
			t.Error("CreatedAt was not stamped")
		}
		if got := plan.EstimatedTotalHours(); got != analysis.TotalWeeks*analysis.HoursPerWeek {
			t.Errorf("EstimatedTotalHours() = %d, want %d", got, analysis.TotalWeeks*analysis.HoursPerWeek)
		}
	})

	t.Run("week count mismatch", func(t *testing.T) {
		t.Parallel()

		analysis := validAnalysis()
		_, err := NewCurriculumPlan(analysis, validWeeks(analysis.TotalWeeks-1))
		if !errors.Is(err, ErrPlanWeekCount) {
			t.Errorf("NewCurriculumPlan() error = %v, want ErrPlanWeekCount", err)
		}
	})

	t.Run("weeks out of order", func(t *testing.T) {
		t.Parallel()

		analysis := validAnalysis()
		weeks := validWeeks(analysis.TotalWeeks)
		weeks[0], weeks[1] = weeks[1], weeks[0]

		_, err := NewCurriculumPlan(analysis, weeks)
		if !errors.Is(err, ErrPlanWeekOrder) {
			t.Errorf("NewCurriculumPlan() error = %v, want ErrPlanWeekOrder", err)
		}
	})
}

func TestCurriculumPlanValidate(t *testing.T) {
	t.Parallel()

	analysis := validAnalysis()
	plan, err := NewCurriculumPlan(analysis, validWeeks(analysis.TotalWeeks))
	if err != nil {
		t.Fatalf("NewCurriculumPlan() error = %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*CurriculumPlan)
		wantErr error
	}{
		{
			name:    "nil ID",
			mutate:  func(p *CurriculumPlan) { p.ID = uuid.Nil },
			wantErr: ErrPlanIDEmpty,
		},
		{
			name:    "empty topic",
			mutate:  func(p *CurriculumPlan) { p.Topic = "" },
			wantErr: ErrGoalTopicEmpty,
		},
		{
			name:    "invalid skill level",
			mutate:  func(p *CurriculumPlan) { p.SkillLevel = "ninja" },
			wantErr: ErrInvalidSkillLevel,
		},
		{
			name:    "zero hours",
			mutate:  func(p *CurriculumPlan) { p.HoursPerWeek = 0 },
			wantErr: ErrGoalHoursInvalid,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			copied := *plan
			tc.mutate(&copied)

			if err := copied.Validate(); !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}
