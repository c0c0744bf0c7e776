package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Curriculum plan validation errors
var (
	// ErrPlanIDEmpty is returned when a plan ID is nil.
	ErrPlanIDEmpty = errors.New("curriculum plan ID cannot be empty")

	// ErrPlanWeekCount is returned when the weekly content length does not
	// match the total week count.
	ErrPlanWeekCount = errors.New("weekly content length must equal total weeks")

	// ErrPlanWeekOrder is returned when weekly content is not ordered by
	// contiguous 1-based week numbers.
	ErrPlanWeekOrder = errors.New("weekly content must be ordered by week number")
)

// CurriculumPlan is the complete, immutable output of the pipeline for one
// learning goal. It is created once by the orchestrator and read-only
// afterward; export and push collaborators consume it.
type CurriculumPlan struct {
	ID              uuid.UUID       `json:"id"`
	Topic           string          `json:"topic"`
	TechnologyStack []string        `json:"technology_stack"`
	TotalWeeks      int             `json:"total_weeks"`
	SkillLevel      SkillLevel      `json:"skill_level"`
	WeeklyContent   []WeeklyContent `json:"weekly_content"`
	CreatedAt       time.Time       `json:"created_at"`
	HoursPerWeek    int             `json:"hours_per_week"`
}

// NewCurriculumPlan assembles the final plan from a goal analysis and the
// completed weekly content, stamping the creation time. The weekly content
// must already be in week-number order.
func NewCurriculumPlan(analysis *GoalAnalysis, weeks []WeeklyContent) (*CurriculumPlan, error) {
	plan := &CurriculumPlan{
		ID:              uuid.New(),
		Topic:           analysis.Topic,
		TechnologyStack: analysis.TechnologyStack,
		TotalWeeks:      analysis.TotalWeeks,
		SkillLevel:      analysis.SkillLevel,
		WeeklyContent:   weeks,
		CreatedAt:       time.Now().UTC(),
		HoursPerWeek:    analysis.HoursPerWeek,
	}

	if err := plan.Validate(); err != nil {
		return nil, err
	}

	return plan, nil
}

// Validate checks the CurriculumPlan invariants, including week ordering.
func (p *CurriculumPlan) Validate() error {
	if p.ID == uuid.Nil {
		return ErrPlanIDEmpty
	}

	if p.Topic == "" {
		return ErrGoalTopicEmpty
	}

	if !p.SkillLevel.Valid() {
		return ErrInvalidSkillLevel
	}

	if p.TotalWeeks < 1 {
		return ErrGoalWeeksInvalid
	}

	if p.HoursPerWeek <= 0 {
		return ErrGoalHoursInvalid
	}

	if len(p.WeeklyContent) != p.TotalWeeks {
		return ErrPlanWeekCount
	}

	for i := range p.WeeklyContent {
		if p.WeeklyContent[i].WeekNumber != i+1 {
			return ErrPlanWeekOrder
		}
	}

	return nil
}

// EstimatedTotalHours returns the total time commitment across the plan.
func (p *CurriculumPlan) EstimatedTotalHours() int {
	return p.TotalWeeks * p.HoursPerWeek
}
