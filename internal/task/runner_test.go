package task

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/syllabus-api/internal/domain"
	"github.com/phrazzld/syllabus-api/internal/generation/static"
	"github.com/phrazzld/syllabus-api/internal/goal"
	"github.com/phrazzld/syllabus-api/internal/plan"
	"github.com/phrazzld/syllabus-api/internal/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestPipeline() (*service.Orchestrator, *service.PlanRegistry, *Store) {
	logger := discardLogger()
	aggregator := service.NewWeeklyAggregator(
		static.NewVideoCurator(),
		static.NewDocFinder(),
		static.NewProjectBuilder(),
		static.NewQuizGenerator(),
		5*time.Second,
		logger,
	)
	orch := service.NewOrchestrator(goal.NewAnalyzer(logger), plan.NewPlanner(logger), aggregator, logger)
	return orch, service.NewPlanRegistry(), NewStore()
}

// waitForTerminal polls the store until the task leaves pending/processing.
func waitForTerminal(t *testing.T, store *Store, id uuid.UUID) Record {
	t.Helper()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case <-deadline:
			t.Fatalf("task %s never reached a terminal status", id)
		case <-time.After(10 * time.Millisecond):
			rec, err := store.Get(id)
			require.NoError(t, err)
			if rec.Status == TaskStatusCompleted || rec.Status == TaskStatusFailed {
				return rec
			}
		}
	}
}

func TestSubmittedBuildCompletes(t *testing.T) {
	t.Parallel()

	orch, registry, store := newTestPipeline()
	runner := NewTaskRunner(store, RunnerConfig{WorkerCount: 2, QueueSize: 10}, discardLogger())
	require.NoError(t, runner.Start(context.Background()))
	defer runner.Stop()

	buildTask := NewCurriculumBuildTask(service.BuildRequest{
		GoalText:   "Learn Python for web development",
		Weeks:      2,
		SkillLevel: domain.SkillBeginner,
	}, orch, registry, store, discardLogger())

	require.NoError(t, runner.Submit(context.Background(), buildTask))

	rec := waitForTerminal(t, store, buildTask.ID())
	assert.Equal(t, TaskStatusCompleted, rec.Status)
	assert.Empty(t, rec.Error)
	require.NotEqual(t, uuid.Nil, rec.PlanID)

	built, err := registry.Get(rec.PlanID)
	require.NoError(t, err)
	assert.Equal(t, "Python", built.Topic)
	assert.Len(t, built.WeeklyContent, 2)
	assert.Equal(t, TaskStatusCompleted, buildTask.Status())
}

func TestFailedBuildRecordsError(t *testing.T) {
	t.Parallel()

	orch, registry, store := newTestPipeline()
	runner := NewTaskRunner(store, RunnerConfig{WorkerCount: 1, QueueSize: 10}, discardLogger())
	require.NoError(t, runner.Start(context.Background()))
	defer runner.Stop()

	// Empty goal text fails inside the pipeline, not at submission.
	buildTask := NewCurriculumBuildTask(service.BuildRequest{}, orch, registry, store, discardLogger())
	require.NoError(t, runner.Submit(context.Background(), buildTask))

	rec := waitForTerminal(t, store, buildTask.ID())
	assert.Equal(t, TaskStatusFailed, rec.Status)
	assert.Contains(t, rec.Error, "goal text cannot be empty")
	assert.Equal(t, uuid.Nil, rec.PlanID)
	assert.Equal(t, 0, registry.Len())
}

func TestSubmitQueueFull(t *testing.T) {
	t.Parallel()

	orch, registry, store := newTestPipeline()
	// Runner is never started, so nothing drains the queue.
	runner := NewTaskRunner(store, RunnerConfig{WorkerCount: 1, QueueSize: 1}, discardLogger())

	first := NewCurriculumBuildTask(service.BuildRequest{GoalText: "Learn Go"}, orch, registry, store, discardLogger())
	second := NewCurriculumBuildTask(service.BuildRequest{GoalText: "Learn Go"}, orch, registry, store, discardLogger())

	require.NoError(t, runner.Submit(context.Background(), first))

	err := runner.Submit(context.Background(), second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "task queue is full")

	rec, err := store.Get(second.ID())
	require.NoError(t, err)
	assert.Equal(t, TaskStatusFailed, rec.Status)
}

func TestSubmitNilTask(t *testing.T) {
	t.Parallel()

	runner := NewTaskRunner(NewStore(), RunnerConfig{}, discardLogger())
	assert.Error(t, runner.Submit(context.Background(), nil))
}

func TestRunnerDoubleStart(t *testing.T) {
	t.Parallel()

	runner := NewTaskRunner(NewStore(), RunnerConfig{WorkerCount: 1}, discardLogger())
	require.NoError(t, runner.Start(context.Background()))
	defer runner.Stop()

	assert.Error(t, runner.Start(context.Background()))
}

func TestStoreUnknownTask(t *testing.T) {
	t.Parallel()

	store := NewStore()

	_, err := store.Get(uuid.New())
	assert.ErrorIs(t, err, ErrTaskNotFound)
	assert.ErrorIs(t, store.UpdateStatus(uuid.New(), TaskStatusCompleted, ""), ErrTaskNotFound)
	assert.ErrorIs(t, store.SetPlanID(uuid.New(), uuid.New()), ErrTaskNotFound)
}
