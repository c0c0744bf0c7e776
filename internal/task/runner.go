package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// RunnerConfig holds configuration for the task runner.
type RunnerConfig struct {
	// WorkerCount is the number of concurrent workers processing tasks.
	WorkerCount int

	// QueueSize is the buffer size of the task queue.
	QueueSize int
}

// TaskRunner processes submitted tasks with a pool of workers. Each task's
// status transitions are mirrored into the store so clients can poll them.
type TaskRunner struct {
	store      *Store
	taskQueue  chan Task
	config     RunnerConfig
	logger     *slog.Logger
	wg         sync.WaitGroup
	cancelFunc context.CancelFunc
	mu         sync.Mutex
}

// NewTaskRunner creates a TaskRunner over the given store.
func NewTaskRunner(store *Store, config RunnerConfig, logger *slog.Logger) *TaskRunner {
	if config.WorkerCount <= 0 {
		config.WorkerCount = 1
	}
	if config.QueueSize <= 0 {
		config.QueueSize = 100
	}

	return &TaskRunner{
		store:     store,
		taskQueue: make(chan Task, config.QueueSize),
		config:    config,
		logger:    logger.With("component", "task_runner"),
	}
}

// Start launches the worker pool. It returns immediately; workers run until
// Stop is called or the context is cancelled.
func (r *TaskRunner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancelFunc != nil {
		return errors.New("task runner already started")
	}

	ctx, cancel := context.WithCancel(ctx)
	r.cancelFunc = cancel

	for i := 0; i < r.config.WorkerCount; i++ {
		r.wg.Add(1)
		go r.worker(ctx, i)
	}

	r.logger.InfoContext(ctx, "task runner started", "workers", r.config.WorkerCount)
	return nil
}

// Stop gracefully shuts down the runner, waiting for in-flight tasks to
// finish. Queued tasks that no worker has picked up are abandoned in the
// pending status.
func (r *TaskRunner) Stop() {
	r.mu.Lock()
	cancel := r.cancelFunc
	r.cancelFunc = nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	r.wg.Wait()
	r.logger.Info("task runner stopped")
}

// Submit records the task as pending and enqueues it for processing. It
// fails fast when the queue is full rather than blocking the caller.
func (r *TaskRunner) Submit(ctx context.Context, task Task) error {
	if task == nil {
		return errors.New("cannot submit nil task")
	}

	r.store.Save(task)

	select {
	case r.taskQueue <- task:
		r.logger.DebugContext(ctx, "task submitted",
			"task_id", task.ID(), "task_type", task.Type())
		return nil
	default:
		if err := r.store.UpdateStatus(task.ID(), TaskStatusFailed, "task queue is full"); err != nil {
			r.logger.ErrorContext(ctx, "failed to mark rejected task",
				"task_id", task.ID(), "error", err)
		}
		return fmt.Errorf("task queue is full, cannot submit task %s", task.ID())
	}
}

func (r *TaskRunner) worker(ctx context.Context, id int) {
	defer r.wg.Done()

	logger := r.logger.With("worker_id", id)
	logger.DebugContext(ctx, "worker started")

	for {
		select {
		case <-ctx.Done():
			logger.DebugContext(ctx, "worker stopping")
			return
		case task, ok := <-r.taskQueue:
			if !ok {
				return
			}
			r.processTask(ctx, task)
		}
	}
}

// processTask runs one task through its status transitions.
func (r *TaskRunner) processTask(ctx context.Context, task Task) {
	logger := r.logger.With("task_id", task.ID(), "task_type", task.Type())

	if err := r.store.UpdateStatus(task.ID(), TaskStatusProcessing, ""); err != nil {
		logger.ErrorContext(ctx, "failed to mark task processing", "error", err)
		return
	}

	if err := task.Execute(ctx); err != nil {
		logger.ErrorContext(ctx, "task execution failed", "error", err)
		if storeErr := r.store.UpdateStatus(task.ID(), TaskStatusFailed, err.Error()); storeErr != nil {
			logger.ErrorContext(ctx, "failed to mark task failed", "error", storeErr)
		}
		return
	}

	if err := r.store.UpdateStatus(task.ID(), TaskStatusCompleted, ""); err != nil {
		logger.ErrorContext(ctx, "failed to mark task completed", "error", err)
		return
	}

	logger.DebugContext(ctx, "task completed")
}
