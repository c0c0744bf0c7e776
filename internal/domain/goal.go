package domain

import "errors"

// Goal analysis validation errors
var (
	// ErrGoalTopicEmpty is returned when an analysis has no topic.
	ErrGoalTopicEmpty = errors.New("goal topic cannot be empty")

	// ErrGoalWeeksInvalid is returned when the total week count is below one.
	ErrGoalWeeksInvalid = errors.New("total weeks must be at least 1")

	// ErrGoalHoursInvalid is returned when the weekly hour budget is not positive.
	ErrGoalHoursInvalid = errors.New("hours per week must be positive")

	// ErrGoalMilestoneCount is returned when the milestone list length does
	// not match the total week count.
	ErrGoalMilestoneCount = errors.New("milestone count must equal total weeks")
)

// GoalAnalysis is the structured interpretation of a free-text learning goal.
// It is produced once by the goal analyzer and never mutated afterward; the
// structure planner consumes it and its fields are copied into the final plan.
type GoalAnalysis struct {
	// Topic is the normalized, human-readable subject of the goal.
	Topic string `json:"topic"`

	// TechnologyStack holds the recognized technology keywords, deduplicated
	// and sorted. Sorting keeps analysis output reproducible; consumers treat
	// it as a set.
	TechnologyStack []string `json:"technology_stack"`

	SkillLevel   SkillLevel `json:"skill_level"`
	TotalWeeks   int        `json:"total_weeks"`
	HoursPerWeek int        `json:"hours_per_week"`

	// Milestones are human-readable "Week N: ..." labels, exactly one per week.
	Milestones []string `json:"milestones"`
}

// Validate checks the GoalAnalysis invariants.
// Returns the first violated invariant's error.
func (a *GoalAnalysis) Validate() error {
	if a.Topic == "" {
		return ErrGoalTopicEmpty
	}

	if !a.SkillLevel.Valid() {
		return ErrInvalidSkillLevel
	}

	if a.TotalWeeks < 1 {
		return ErrGoalWeeksInvalid
	}

	if a.HoursPerWeek <= 0 {
		return ErrGoalHoursInvalid
	}

	if len(a.Milestones) != a.TotalWeeks {
		return ErrGoalMilestoneCount
	}

	return nil
}

// HasTechnology reports whether the given keyword is part of the identified
// technology stack.
func (a *GoalAnalysis) HasTechnology(keyword string) bool {
	for _, tech := range a.TechnologyStack {
		if tech == keyword {
			return true
		}
	}
	return false
}
