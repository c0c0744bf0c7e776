package service

import (
	"errors"
	"fmt"
)

// Input validation errors
var (
	// ErrGoalTextEmpty is returned when a build request carries no goal text.
	ErrGoalTextEmpty = errors.New("goal text cannot be empty")

	// ErrWeeksOutOfRange is returned when an explicit week count falls
	// outside the supported bounds.
	ErrWeeksOutOfRange = errors.New("requested week count is out of range")
)

// AggregationError reports which week's content generation failed. The
// orchestrator is all-or-nothing, so one AggregationError fails the build.
type AggregationError struct {
	Week int
	Err  error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("week %d content generation failed: %v", e.Week, e.Err)
}

func (e *AggregationError) Unwrap() error {
	return e.Err
}
