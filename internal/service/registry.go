package service

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/phrazzld/syllabus-api/internal/domain"
)

// ErrPlanNotFound is returned when no plan exists for the given ID.
var ErrPlanNotFound = errors.New("curriculum plan not found")

// PlanRegistry holds completed curriculum plans in memory, keyed by plan ID.
// Plans are immutable once deposited, so reads need no copying. Safe for
// concurrent use.
type PlanRegistry struct {
	mu    sync.RWMutex
	plans map[uuid.UUID]*domain.CurriculumPlan
}

// NewPlanRegistry creates an empty PlanRegistry.
func NewPlanRegistry() *PlanRegistry {
	return &PlanRegistry{plans: make(map[uuid.UUID]*domain.CurriculumPlan)}
}

// Put deposits a completed plan.
func (r *PlanRegistry) Put(plan *domain.CurriculumPlan) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans[plan.ID] = plan
}

// Get returns the plan for the given ID, or ErrPlanNotFound.
func (r *PlanRegistry) Get(id uuid.UUID) (*domain.CurriculumPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plan, ok := r.plans[id]
	if !ok {
		return nil, ErrPlanNotFound
	}
	return plan, nil
}

// Len reports how many plans the registry holds.
func (r *PlanRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.plans)
}
