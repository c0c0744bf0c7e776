package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/syllabus-api/internal/service"
)

// CurriculumBuildTask runs one curriculum build in the background and
// deposits the resulting plan into the registry.
type CurriculumBuildTask struct {
	taskState

	id       uuid.UUID
	req      service.BuildRequest
	orch     *service.Orchestrator
	registry *service.PlanRegistry
	store    *Store
	logger   *slog.Logger
}

// NewCurriculumBuildTask creates a pending build task for the given request.
func NewCurriculumBuildTask(
	req service.BuildRequest,
	orch *service.Orchestrator,
	registry *service.PlanRegistry,
	store *Store,
	logger *slog.Logger,
) *CurriculumBuildTask {
	t := &CurriculumBuildTask{
		id:       uuid.New(),
		req:      req,
		orch:     orch,
		registry: registry,
		store:    store,
		logger:   logger.With("task_type", TaskTypeCurriculumBuild),
	}
	t.setStatus(TaskStatusPending)
	return t
}

// ID returns the task's unique identifier.
func (t *CurriculumBuildTask) ID() uuid.UUID { return t.id }

// Type returns the task type identifier.
func (t *CurriculumBuildTask) Type() string { return TaskTypeCurriculumBuild }

// Execute runs the build pipeline and publishes the completed plan.
func (t *CurriculumBuildTask) Execute(ctx context.Context) error {
	t.setStatus(TaskStatusProcessing)

	plan, err := t.orch.Build(ctx, t.req)
	if err != nil {
		t.setStatus(TaskStatusFailed)
		return fmt.Errorf("building curriculum: %w", err)
	}

	t.registry.Put(plan)
	if err := t.store.SetPlanID(t.id, plan.ID); err != nil {
		t.setStatus(TaskStatusFailed)
		return fmt.Errorf("recording plan ID: %w", err)
	}

	t.setStatus(TaskStatusCompleted)
	t.logger.InfoContext(ctx, "background build finished",
		"task_id", t.id, "plan_id", plan.ID)
	return nil
}
