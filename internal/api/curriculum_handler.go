// Package api implements the HTTP handlers for the curriculum builder:
// synchronous and asynchronous builds, build status polling, exports, and
// pushes to external platforms.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/phrazzld/syllabus-api/internal/api/shared"
	"github.com/phrazzld/syllabus-api/internal/domain"
	"github.com/phrazzld/syllabus-api/internal/export"
	"github.com/phrazzld/syllabus-api/internal/platform/github"
	"github.com/phrazzld/syllabus-api/internal/service"
	"github.com/phrazzld/syllabus-api/internal/task"
)

// NotionPusher pushes a plan to Notion and returns the created page ID.
type NotionPusher interface {
	PushCurriculum(ctx context.Context, plan *domain.CurriculumPlan) (string, error)
}

// TrelloPusher pushes a plan onto a Trello board.
type TrelloPusher interface {
	PushCurriculum(ctx context.Context, plan *domain.CurriculumPlan, boardID string) error
}

// GitHubPublisher creates a repository and uploads a week's project starter
// files into it.
type GitHubPublisher interface {
	CreateRepository(ctx context.Context, name string, private bool, org string) (*github.RepoDetails, error)
	UploadProjectFiles(ctx context.Context, fullName string, project *domain.Project) error
}

// CurriculumHandler handles all curriculum routes. The notion and trello
// pushers are nil when the corresponding integration is not configured.
type CurriculumHandler struct {
	orchestrator *service.Orchestrator
	runner       *task.TaskRunner
	taskStore    *task.Store
	registry     *service.PlanRegistry
	exporter     *export.Exporter
	notion       NotionPusher
	trello       TrelloPusher
	github       GitHubPublisher
	logger       *slog.Logger
}

// NewCurriculumHandler creates a CurriculumHandler.
func NewCurriculumHandler(
	orchestrator *service.Orchestrator,
	runner *task.TaskRunner,
	taskStore *task.Store,
	registry *service.PlanRegistry,
	exporter *export.Exporter,
	notion NotionPusher,
	trello TrelloPusher,
	github GitHubPublisher,
	logger *slog.Logger,
) *CurriculumHandler {
	return &CurriculumHandler{
		orchestrator: orchestrator,
		runner:       runner,
		taskStore:    taskStore,
		registry:     registry,
		exporter:     exporter,
		notion:       notion,
		trello:       trello,
		github:       github,
		logger:       logger.With("component", "curriculum_handler"),
	}
}

// CreateCurriculum handles POST /api/curricula: a synchronous build.
func (h *CurriculumHandler) CreateCurriculum(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeBuildRequest(w, r)
	if !ok {
		return
	}

	plan, err := h.orchestrator.Build(r.Context(), req)
	if err != nil {
		h.respondBuildError(w, r, err)
		return
	}

	h.registry.Put(plan)
	shared.RespondWithJSON(w, r, http.StatusCreated, plan)
}

// CreateCurriculumAsync handles POST /api/curricula/async: enqueue a build.
func (h *CurriculumHandler) CreateCurriculumAsync(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeBuildRequest(w, r)
	if !ok {
		return
	}

	buildTask := task.NewCurriculumBuildTask(req, h.orchestrator, h.registry, h.taskStore, h.logger)
	if err := h.runner.Submit(r.Context(), buildTask); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable,
			"Build queue is full, try again later", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusAccepted, BuildAcceptedResponse{
		TaskID: buildTask.ID(),
		Status: string(task.TaskStatusPending),
	})
}

// GetBuildStatus handles GET /api/builds/{id}.
func (h *CurriculumHandler) GetBuildStatus(w http.ResponseWriter, r *http.Request) {
	taskID, ok := parseUUID(w, r, "id")
	if !ok {
		return
	}

	rec, err := h.taskStore.Get(taskID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Build not found")
		return
	}

	resp := BuildStatusResponse{
		TaskID: rec.TaskID,
		Status: rec.Status,
		Error:  rec.Error,
		PlanID: rec.PlanID,
	}
	if rec.Status == task.TaskStatusCompleted && rec.PlanID != uuid.Nil {
		if plan, err := h.registry.Get(rec.PlanID); err == nil {
			resp.Plan = plan
		}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// ExportCurriculum handles GET /api/curricula/{id}/export?format=...
func (h *CurriculumHandler) ExportCurriculum(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.lookupPlan(w, r)
	if !ok {
		return
	}

	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Unknown export format, expected one of: json, markdown, html, csv")
		return
	}

	rendered, err := h.exporter.Export(plan, format)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to render export", err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(rendered)); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to write export response", "error", err)
	}
}

// PushToNotion handles POST /api/curricula/{id}/push/notion.
func (h *CurriculumHandler) PushToNotion(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.lookupPlan(w, r)
	if !ok {
		return
	}

	if h.notion == nil {
		shared.RespondWithError(w, r, http.StatusServiceUnavailable,
			"Notion integration is not configured")
		return
	}

	pageID, err := h.notion.PushCurriculum(r.Context(), plan)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadGateway,
			"Failed to push curriculum to Notion", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PushResponse{Platform: "notion", PageID: pageID})
}

// PushToTrello handles POST /api/curricula/{id}/push/trello.
func (h *CurriculumHandler) PushToTrello(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.lookupPlan(w, r)
	if !ok {
		return
	}

	if h.trello == nil {
		shared.RespondWithError(w, r, http.StatusServiceUnavailable,
			"Trello integration is not configured")
		return
	}

	var req PushTrelloRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "board_id is required")
		return
	}

	if err := h.trello.PushCurriculum(r.Context(), plan, req.BoardID); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadGateway,
			"Failed to push curriculum to Trello", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PushResponse{Platform: "trello"})
}

// PushToGitHub handles POST /api/curricula/{id}/push/github: create a repo
// for one week's hands-on project and upload its starter files.
func (h *CurriculumHandler) PushToGitHub(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.lookupPlan(w, r)
	if !ok {
		return
	}

	if h.github == nil {
		shared.RespondWithError(w, r, http.StatusServiceUnavailable,
			"GitHub integration is not configured")
		return
	}

	var req PushGitHubRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"week and repo_name are required")
		return
	}

	if req.Week > len(plan.WeeklyContent) {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			fmt.Sprintf("week %d exceeds the plan's %d weeks", req.Week, plan.TotalWeeks))
		return
	}

	project := plan.WeeklyContent[req.Week-1].Project
	details, err := h.github.CreateRepository(r.Context(), req.RepoName, req.Private, req.Org)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadGateway,
			"Failed to create GitHub repository", err)
		return
	}

	if err := h.github.UploadProjectFiles(r.Context(), details.FullName, project); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadGateway,
			"Failed to upload project files", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PushResponse{
		Platform: "github",
		RepoURL:  details.HTMLURL,
	})
}

// decodeBuildRequest decodes and validates a build request body. On failure
// it writes the error response and returns ok=false.
func (h *CurriculumHandler) decodeBuildRequest(w http.ResponseWriter, r *http.Request) (service.BuildRequest, bool) {
	var req BuildCurriculumRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return service.BuildRequest{}, false
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid build request: "+err.Error())
		return service.BuildRequest{}, false
	}

	return service.BuildRequest{
		GoalText:   req.Goal,
		Weeks:      req.Weeks,
		SkillLevel: domain.SkillLevel(req.SkillLevel),
	}, true
}

// respondBuildError maps pipeline errors to HTTP responses: input problems
// are 400s, generation failures are 502s, everything else a 500.
func (h *CurriculumHandler) respondBuildError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrGoalTextEmpty),
		errors.Is(err, service.ErrWeeksOutOfRange),
		errors.Is(err, domain.ErrInvalidSkillLevel):
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
	default:
		var aggErr *service.AggregationError
		if errors.As(err, &aggErr) {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadGateway,
				"Content generation failed, try again later", err)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to build curriculum", err)
	}
}

// lookupPlan resolves the {id} route parameter to a plan in the registry.
func (h *CurriculumHandler) lookupPlan(w http.ResponseWriter, r *http.Request) (*domain.CurriculumPlan, bool) {
	planID, ok := parseUUID(w, r, "id")
	if !ok {
		return nil, false
	}

	plan, err := h.registry.Get(planID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Curriculum not found")
		return nil, false
	}
	return plan, true
}

func parseUUID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}
