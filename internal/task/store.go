package task

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrTaskNotFound is returned when no task record exists for the given ID.
var ErrTaskNotFound = errors.New("task not found")

// Record is a snapshot of a task's state for status polling. PlanID is the
// zero UUID until the build completes.
type Record struct {
	TaskID      uuid.UUID  `json:"task_id"`
	Type        string     `json:"type"`
	Status      TaskStatus `json:"status"`
	Error       string     `json:"error,omitempty"`
	PlanID      uuid.UUID  `json:"plan_id,omitempty"`
	SubmittedAt time.Time  `json:"submitted_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Store tracks task records in memory, keyed by task ID. Safe for concurrent
// use. Records are not persisted; a restart loses in-flight builds.
type Store struct {
	mu      sync.RWMutex
	records map[uuid.UUID]Record
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{records: make(map[uuid.UUID]Record)}
}

// Save records a newly submitted task.
func (s *Store) Save(t Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	s.records[t.ID()] = Record{
		TaskID:      t.ID(),
		Type:        t.Type(),
		Status:      t.Status(),
		SubmittedAt: now,
		UpdatedAt:   now,
	}
}

// UpdateStatus transitions the task's status. errMsg is recorded for failed
// tasks and cleared otherwise.
func (s *Store) UpdateStatus(id uuid.UUID, status TaskStatus, errMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return ErrTaskNotFound
	}

	rec.Status = status
	rec.Error = errMsg
	rec.UpdatedAt = time.Now().UTC()
	s.records[id] = rec
	return nil
}

// SetPlanID links a completed build task to the plan it produced.
func (s *Store) SetPlanID(id, planID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return ErrTaskNotFound
	}

	rec.PlanID = planID
	rec.UpdatedAt = time.Now().UTC()
	s.records[id] = rec
	return nil
}

// Get returns the record for the given task ID, or ErrTaskNotFound.
func (s *Store) Get(id uuid.UUID) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return Record{}, ErrTaskNotFound
	}
	return rec, nil
}
