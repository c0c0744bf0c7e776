package api

import (
	"github.com/google/uuid"

	"github.com/phrazzld/syllabus-api/internal/domain"
	"github.com/phrazzld/syllabus-api/internal/task"
)

// BuildCurriculumRequest is the body for both the synchronous and async
// build endpoints. Weeks and SkillLevel are optional overrides.
type BuildCurriculumRequest struct {
	Goal       string `json:"goal"        validate:"required"`
	Weeks      int    `json:"weeks"       validate:"omitempty,gte=1,lte=12"`
	SkillLevel string `json:"skill_level" validate:"omitempty,oneof=beginner intermediate advanced"`
}

// BuildAcceptedResponse is returned by the async build endpoint.
type BuildAcceptedResponse struct {
	TaskID uuid.UUID `json:"task_id"`
	Status string    `json:"status"`
}

// BuildStatusResponse reports an async build's progress, including the plan
// once the build completes.
type BuildStatusResponse struct {
	TaskID uuid.UUID              `json:"task_id"`
	Status task.TaskStatus        `json:"status"`
	Error  string                 `json:"error,omitempty"`
	PlanID uuid.UUID              `json:"plan_id,omitempty"`
	Plan   *domain.CurriculumPlan `json:"plan,omitempty"`
}

// PushTrelloRequest is the body for the Trello push endpoint.
type PushTrelloRequest struct {
	BoardID string `json:"board_id" validate:"required"`
}

// PushGitHubRequest is the body for the GitHub push endpoint. It publishes
// one week's hands-on project as a repository.
type PushGitHubRequest struct {
	Week     int    `json:"week"      validate:"required,gte=1"`
	RepoName string `json:"repo_name" validate:"required"`
	Private  bool   `json:"private"`
	Org      string `json:"org"`
}

// PushResponse reports a successful push to an external platform.
type PushResponse struct {
	Platform string `json:"platform"`
	PageID   string `json:"page_id,omitempty"`
	RepoURL  string `json:"repo_url,omitempty"`
}
