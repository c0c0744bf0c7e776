package domain

import (
	"errors"
	"testing"
)

func validWeekSpec() WeekSpec {
	return WeekSpec{
		WeekNumber: 1,
		Topic:      "Introduction to Python Fundamentals",
		Objective:  "Build a solid foundation in Python fundamentals",
		ExpectedOutcomes: []string{
			"Understand core concepts of Python",
			"Complete hands-on exercises",
		},
	}
}

func sampleProject() *Project {
	return &Project{
		Type:        ProjectExercise,
		Title:       "Python Fundamentals Practice",
		Description: "Complete a series of Python exercises",
	}
}

func TestWeekSpecValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*WeekSpec)
		wantErr error
	}{
		{
			name:    "valid spec",
			mutate:  func(s *WeekSpec) {},
			wantErr: nil,
		},
		{
			name:    "zero week number",
			mutate:  func(s *WeekSpec) { s.WeekNumber = 0 },
			wantErr: ErrWeekNumberInvalid,
		},
		{
			name:    "empty topic",
			mutate:  func(s *WeekSpec) { s.Topic = "" },
			wantErr: ErrWeekTopicEmpty,
		},
		{
			name:    "empty objective",
			mutate:  func(s *WeekSpec) { s.Objective = "" },
			wantErr: ErrWeekObjectiveEmpty,
		},
		{
			name:    "no outcomes",
			mutate:  func(s *WeekSpec) { s.ExpectedOutcomes = nil },
			wantErr: ErrWeekOutcomesEmpty,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			spec := validWeekSpec()
			tc.mutate(&spec)

			err := spec.Validate()
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestNewWeeklyContent(t *testing.T) {
	t.Parallel()

	t.Run("valid content", func(t *testing.T) {
		t.Parallel()

		spec := validWeekSpec()
		videos := []Video{{Title: "Python Tutorial", URL: "https://example.com", Channel: "Test"}}
		docs := []Document{{Title: "Python Docs", URL: "https://docs.python.org", Source: "Official"}}
		quiz := []Question{{Number: 1, Type: QuestionTrueFalse, Prompt: "Python is typed?"}}

		content, err := NewWeeklyContent(spec, videos, docs, sampleProject(), quiz)
		if err != nil {
			t.Fatalf("NewWeeklyContent() error = %v, want nil", err)
		}

		if content.WeekNumber != spec.WeekNumber {
			t.Errorf("WeekNumber = %d, want %d", content.WeekNumber, spec.WeekNumber)
		}
		if content.Topic != spec.Topic {
			t.Errorf("Topic = %q, want %q", content.Topic, spec.Topic)
		}
		if len(content.Videos) != 1 || len(content.Documentation) != 1 || len(content.Quiz) != 1 {
			t.Error("generated content was not carried into the weekly content")
		}
	})

	t.Run("invalid spec rejected", func(t *testing.T) {
		t.Parallel()

		spec := validWeekSpec()
		spec.Topic = ""

		_, err := NewWeeklyContent(spec, nil, nil, sampleProject(), nil)
		if !errors.Is(err, ErrWeekTopicEmpty) {
			t.Errorf("NewWeeklyContent() error = %v, want ErrWeekTopicEmpty", err)
		}
	})

	t.Run("nil project rejected", func(t *testing.T) {
		t.Parallel()

		_, err := NewWeeklyContent(validWeekSpec(), nil, nil, nil, nil)
		if !errors.Is(err, ErrWeekProjectMissing) {
			t.Errorf("NewWeeklyContent() error = %v, want ErrWeekProjectMissing", err)
		}
	})

	t.Run("untitled project rejected", func(t *testing.T) {
		t.Parallel()

		project := sampleProject()
		project.Title = ""

		_, err := NewWeeklyContent(validWeekSpec(), nil, nil, project, nil)
		if !errors.Is(err, ErrWeekProjectMissing) {
			t.Errorf("NewWeeklyContent() error = %v, want ErrWeekProjectMissing", err)
		}
	})
}
