package domain

import "errors"

// Week validation errors
var (
	// ErrWeekNumberInvalid is returned when a week number is below one.
	ErrWeekNumberInvalid = errors.New("week number must be at least 1")

	// ErrWeekTopicEmpty is returned when a week has no topic.
	ErrWeekTopicEmpty = errors.New("week topic cannot be empty")

	// ErrWeekObjectiveEmpty is returned when a week has no objective.
	ErrWeekObjectiveEmpty = errors.New("week objective cannot be empty")

	// ErrWeekOutcomesEmpty is returned when a week has no expected outcomes.
	ErrWeekOutcomesEmpty = errors.New("week must have at least one expected outcome")

	// ErrWeekProjectMissing is returned when weekly content lacks a project
	// or the project lacks a title.
	ErrWeekProjectMissing = errors.New("weekly content project must have a title")
)

// WeekSpec is the planned shape of a single curriculum week before any
// content is attached. Week numbers are 1-based and contiguous within a
// curriculum; the spec list exists only between planning and aggregation.
type WeekSpec struct {
	WeekNumber       int      `json:"week_number"`
	Topic            string   `json:"topic"`
	Objective        string   `json:"objective"`
	ExpectedOutcomes []string `json:"expected_outcomes"`
}

// Validate checks the WeekSpec invariants.
func (w *WeekSpec) Validate() error {
	if w.WeekNumber < 1 {
		return ErrWeekNumberInvalid
	}

	if w.Topic == "" {
		return ErrWeekTopicEmpty
	}

	if w.Objective == "" {
		return ErrWeekObjectiveEmpty
	}

	if len(w.ExpectedOutcomes) == 0 {
		return ErrWeekOutcomesEmpty
	}

	return nil
}

// WeeklyContent is a WeekSpec enriched with generated content. It is owned
// exclusively by the curriculum plan that contains it and is never mutated
// after construction.
type WeeklyContent struct {
	WeekNumber       int      `json:"week_number"`
	Topic            string   `json:"topic"`
	Objective        string   `json:"objective"`
	ExpectedOutcomes []string `json:"expected_outcomes"`

	Videos        []Video    `json:"videos"`
	Documentation []Document `json:"documentation"`
	Project       *Project   `json:"hands_on_project"`
	Quiz          []Question `json:"quiz_questions"`
}

// NewWeeklyContent merges a week specification with generated content.
// Returns an error if the spec is invalid or the project lacks a title.
func NewWeeklyContent(
	spec WeekSpec,
	videos []Video,
	docs []Document,
	project *Project,
	quiz []Question,
) (*WeeklyContent, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	if project == nil || project.Title == "" {
		return nil, ErrWeekProjectMissing
	}

	return &WeeklyContent{
		WeekNumber:       spec.WeekNumber,
		Topic:            spec.Topic,
		Objective:        spec.Objective,
		ExpectedOutcomes: spec.ExpectedOutcomes,
		Videos:           videos,
		Documentation:    docs,
		Project:          project,
		Quiz:             quiz,
	}, nil
}
