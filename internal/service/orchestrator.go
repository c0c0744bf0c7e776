// Package service contains the curriculum pipeline: goal analysis, structure
// planning, concurrent per-week content aggregation, and final plan assembly.
package service

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/phrazzld/syllabus-api/internal/domain"
	"github.com/phrazzld/syllabus-api/internal/generation"
	"github.com/phrazzld/syllabus-api/internal/goal"
	"github.com/phrazzld/syllabus-api/internal/plan"
)

// BuildRequest is the input to a curriculum build. Weeks and SkillLevel are
// optional overrides; zero values mean "infer from the goal text".
type BuildRequest struct {
	GoalText   string
	Weeks      int
	SkillLevel domain.SkillLevel
}

// Orchestrator drives a build through its stages: analyze the goal, plan the
// week structure, aggregate every week's content concurrently, and assemble
// the immutable plan. A build is all-or-nothing; the first week failure
// cancels the rest and fails the build.
type Orchestrator struct {
	analyzer   *goal.Analyzer
	planner    *plan.Planner
	aggregator *WeeklyAggregator
	logger     *slog.Logger
}

// NewOrchestrator creates an Orchestrator over the pipeline stages.
func NewOrchestrator(
	analyzer *goal.Analyzer,
	planner *plan.Planner,
	aggregator *WeeklyAggregator,
	logger *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		analyzer:   analyzer,
		planner:    planner,
		aggregator: aggregator,
		logger:     logger,
	}
}

// Build runs the full pipeline for one learning goal.
func (o *Orchestrator) Build(ctx context.Context, req BuildRequest) (*domain.CurriculumPlan, error) {
	if err := o.validateRequest(req); err != nil {
		return nil, err
	}

	o.logger.InfoContext(ctx, "curriculum build started", "goal", req.GoalText)

	analysis, err := o.analyzer.Analyze(ctx, req.GoalText, req.Weeks, req.SkillLevel)
	if err != nil {
		return nil, err
	}

	weeks, err := o.planner.Plan(ctx, analysis)
	if err != nil {
		return nil, err
	}

	content, err := o.aggregateWeeks(ctx, analysis, weeks)
	if err != nil {
		return nil, err
	}

	curriculum, err := domain.NewCurriculumPlan(analysis, content)
	if err != nil {
		return nil, err
	}

	o.logger.InfoContext(ctx, "curriculum build complete",
		"plan_id", curriculum.ID,
		"topic", curriculum.Topic,
		"weeks", curriculum.TotalWeeks)

	return curriculum, nil
}

func (o *Orchestrator) validateRequest(req BuildRequest) error {
	if req.GoalText == "" {
		return ErrGoalTextEmpty
	}
	if req.Weeks < 0 || req.Weeks > o.analyzer.MaxWeeks() {
		return ErrWeeksOutOfRange
	}
	if req.SkillLevel != "" && !req.SkillLevel.Valid() {
		return domain.ErrInvalidSkillLevel
	}
	return nil
}

// aggregateWeeks runs one aggregator per week concurrently. Completion order
// is arbitrary; results are re-ordered by week number before assembly.
func (o *Orchestrator) aggregateWeeks(
	ctx context.Context,
	analysis *domain.GoalAnalysis,
	weeks []domain.WeekSpec,
) ([]domain.WeeklyContent, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]*domain.WeeklyContent, len(weeks))
	errCh := make(chan error, len(weeks))

	var wg sync.WaitGroup
	for i, week := range weeks {
		wg.Add(1)
		go func(i int, week domain.WeekSpec) {
			defer wg.Done()

			content, err := o.aggregator.Aggregate(ctx, generation.Request{
				Week:       week,
				Topic:      analysis.Topic,
				SkillLevel: analysis.SkillLevel,
				TotalWeeks: analysis.TotalWeeks,
			})
			if err != nil {
				errCh <- &AggregationError{Week: week.WeekNumber, Err: err}
				cancel()
				return
			}
			results[i] = content
		}(i, week)
	}

	wg.Wait()
	close(errCh)

	if err := <-errCh; err != nil {
		return nil, err
	}

	content := make([]domain.WeeklyContent, 0, len(results))
	for _, r := range results {
		content = append(content, *r)
	}
	sort.Slice(content, func(i, j int) bool {
		return content[i].WeekNumber < content[j].WeekNumber
	})

	return content, nil
}
