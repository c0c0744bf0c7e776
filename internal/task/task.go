// Package task defines background tasks and the runner that processes them.
// Tasks move through pending, processing, and a terminal completed or failed
// status; the in-memory store tracks status so API clients can poll builds.
package task

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	// TaskStatusPending indicates a task waiting to be processed.
	TaskStatusPending TaskStatus = "pending"

	// TaskStatusProcessing indicates a task currently being executed.
	TaskStatusProcessing TaskStatus = "processing"

	// TaskStatusCompleted indicates a task that finished successfully.
	TaskStatusCompleted TaskStatus = "completed"

	// TaskStatusFailed indicates a task that failed during execution.
	TaskStatusFailed TaskStatus = "failed"
)

// TaskTypeCurriculumBuild identifies asynchronous curriculum build tasks.
const TaskTypeCurriculumBuild = "curriculum_build"

// Task represents a unit of background work.
type Task interface {
	// ID returns the task's unique identifier.
	ID() uuid.UUID

	// Type returns the task type identifier.
	Type() string

	// Status returns the task's current status.
	Status() TaskStatus

	// Execute performs the task's work. It should honor ctx cancellation.
	Execute(ctx context.Context) error
}

// taskState carries the mutable status shared by task implementations.
type taskState struct {
	mu     sync.RWMutex
	status TaskStatus
}

func (s *taskState) Status() TaskStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *taskState) setStatus(status TaskStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}
