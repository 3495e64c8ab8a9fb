package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/KwonOil/easyplanner/api/transport"
	"github.com/KwonOil/easyplanner/domain"
	"github.com/KwonOil/easyplanner/pkg/httpcontext"
	projectUC "github.com/KwonOil/easyplanner/usecase/project"
)

type ProjectHandler struct {
	baseHandler
	uc *projectUC.UseCase
}

func NewProjectHandler(uc *projectUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List the viewer's projects
// @Tags projects
// @Router /api/projects [get]
func (h *ProjectHandler) List(ctx *fasthttp.RequestCtx) {
	viewer, ok := h.viewer(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	projects, err := h.uc.ListForViewer(stdCtx, viewer)
	if err != nil {
		h.respondFailure(ctx, err)
		return
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	h.respondJSON(ctx, http.StatusOK, projects)
}

// @Summary Create project
// @Tags projects
// @Router /projects/create [post]
func (h *ProjectHandler) Create(ctx *fasthttp.RequestCtx) {
	viewer, ok := h.viewer(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	project, err := h.uc.Create(stdCtx, viewer,
		formValue(ctx, transport.FieldProjectName),
		formValue(ctx, transport.FieldStartDate),
		formValue(ctx, transport.FieldEndDate),
	)
	if err != nil {
		h.respondFailure(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusCreated, project)
}

// @Summary Delete project
// @Tags projects
// @Router /projects/{id}/delete [post]
func (h *ProjectHandler) Delete(ctx *fasthttp.RequestCtx) {
	viewer, ok := h.viewer(ctx)
	if !ok {
		return
	}
	projectID, ok := h.pathID(ctx, "id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Delete(stdCtx, viewer, projectID); err != nil {
		h.respondFailure(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.SimpleResponse{
		Success: true,
		Message: "프로젝트가 성공적으로 삭제되었습니다.",
	})
}

// @Summary Edit project
// @Tags projects
// @Router /api/project/{id}/edit [post]
func (h *ProjectHandler) Edit(ctx *fasthttp.RequestCtx) {
	viewer, ok := h.viewer(ctx)
	if !ok {
		return
	}
	projectID, ok := h.pathID(ctx, "id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	project, err := h.uc.Edit(stdCtx, viewer, projectID,
		formValue(ctx, transport.FieldProjectName),
		formValue(ctx, transport.FieldStartDate),
		formValue(ctx, transport.FieldEndDate),
	)
	if err != nil {
		h.respondFailure(ctx, err)
		return
	}

	h.respondJSON(ctx, http.StatusOK, transport.EditProjectResponse{
		Success: true,
		Project: transport.ProjectPayload{
			Name:      project.Name,
			StartDate: project.StartDate,
			EndDate:   project.EndDate,
		},
	})
}

// @Summary Invite a member
// @Tags projects
// @Router /api/project/{id}/invite [post]
func (h *ProjectHandler) Invite(ctx *fasthttp.RequestCtx) {
	viewer, ok := h.viewer(ctx)
	if !ok {
		return
	}
	projectID, ok := h.pathID(ctx, "id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Invite(stdCtx, viewer, projectID, formValue(ctx, transport.FieldUsername)); err != nil {
		h.respondFailure(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.SimpleResponse{
		Success: true,
		Message: "멤버를 초대했습니다.",
	})
}

// @Summary Project completion stats
// @Tags projects
// @Router /api/project/{id}/stats [get]
func (h *ProjectHandler) Stats(ctx *fasthttp.RequestCtx) {
	viewer, ok := h.viewer(ctx)
	if !ok {
		return
	}
	projectID, ok := h.pathID(ctx, "id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	progress, err := h.uc.Stats(stdCtx, viewer, projectID)
	if err != nil {
		h.respondFailure(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.StatsResponse{TaskProgress: progress})
}

// @Summary Gantt chart series
// @Tags projects
// @Router /api/project/{id}/chartjs-data [get]
func (h *ProjectHandler) ChartData(ctx *fasthttp.RequestCtx) {
	viewer, ok := h.viewer(ctx)
	if !ok {
		return
	}
	projectID, ok := h.pathID(ctx, "id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	data, err := h.uc.ChartData(stdCtx, viewer, projectID)
	if err != nil {
		// The chart endpoint reports failures in its own {error} shape.
		h.respondJSON(ctx, mapError(err), transport.ChartError{Error: err.Error()})
		return
	}
	h.respondJSON(ctx, http.StatusOK, data)
}
