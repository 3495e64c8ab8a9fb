package handler

import (
	"net/http"
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/KwonOil/easyplanner/api/transport"
	"github.com/KwonOil/easyplanner/domain"
	"github.com/KwonOil/easyplanner/pkg/httpcontext"
	taskUC "github.com/KwonOil/easyplanner/usecase/task"
)

type TaskHandler struct {
	baseHandler
	uc *taskUC.UseCase
}

func NewTaskHandler(uc *taskUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List project tasks
// @Tags tasks
// @Router /api/project/{project_id}/tasks [get]
func (h *TaskHandler) List(ctx *fasthttp.RequestCtx) {
	viewer, ok := h.viewer(ctx)
	if !ok {
		return
	}
	projectID, ok := h.pathID(ctx, "project_id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.uc.ListForProject(stdCtx, viewer, projectID)
	if err != nil {
		h.respondFailure(ctx, err)
		return
	}

	payload := make([]transport.TaskPayload, 0, len(tasks))
	for i := range tasks {
		payload = append(payload, taskPayload(&tasks[i]))
	}
	h.respondJSON(ctx, http.StatusOK, payload)
}

// @Summary Create task
// @Tags tasks
// @Router /project/{project_id}/tasks/create [post]
func (h *TaskHandler) Create(ctx *fasthttp.RequestCtx) {
	viewer, ok := h.viewer(ctx)
	if !ok {
		return
	}
	projectID, ok := h.pathID(ctx, "project_id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.uc.Create(stdCtx, viewer, projectID,
		formValue(ctx, transport.FieldTaskName),
		formValue(ctx, transport.FieldStartDate),
		formValue(ctx, transport.FieldEndDate),
	)
	if err != nil {
		h.respondFailure(ctx, err)
		return
	}

	h.respondJSON(ctx, http.StatusOK, transport.CreateTaskResponse{
		Success: true,
		Message: "새로운 작업이 추가되었습니다.",
		Task:    taskPayload(task),
	})
}

// @Summary Edit task
// @Tags tasks
// @Router /api/task/{id}/edit [post]
func (h *TaskHandler) Edit(ctx *fasthttp.RequestCtx) {
	viewer, ok := h.viewer(ctx)
	if !ok {
		return
	}
	taskID, ok := h.pathID(ctx, "id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.uc.Edit(stdCtx, viewer, taskID,
		formValue(ctx, transport.FieldTaskName),
		formValue(ctx, transport.FieldStartDate),
		formValue(ctx, transport.FieldEndDate),
	)
	if err != nil {
		h.respondFailure(ctx, err)
		return
	}

	h.respondJSON(ctx, http.StatusOK, transport.EditTaskResponse{
		Success: true,
		Task: transport.TaskPayload{
			Name:      task.Name,
			StartDate: task.StartDate,
			EndDate:   task.EndDate,
		},
	})
}

// @Summary Update task status
// @Tags tasks
// @Router /tasks/{id}/update-status [post]
func (h *TaskHandler) UpdateStatus(ctx *fasthttp.RequestCtx) {
	viewer, ok := h.viewer(ctx)
	if !ok {
		return
	}
	taskID, ok := h.pathID(ctx, "id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	newStatus, err := h.uc.UpdateStatus(stdCtx, viewer, taskID, formValue(ctx, transport.FieldStatus))
	if err != nil {
		h.respondFailure(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.StatusResponse{Success: true, NewStatus: newStatus})
}

// @Summary Assign task
// @Tags tasks
// @Router /api/task/{id}/assign [post]
func (h *TaskHandler) Assign(ctx *fasthttp.RequestCtx) {
	viewer, ok := h.viewer(ctx)
	if !ok {
		return
	}
	taskID, ok := h.pathID(ctx, "id")
	if !ok {
		return
	}

	assigneeID, err := strconv.ParseInt(formValue(ctx, transport.FieldAssigneeID), 10, 64)
	if err != nil || assigneeID <= 0 {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewFailure(domain.ErrInvalidPayload.Message))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	assigneeName, err := h.uc.Assign(stdCtx, viewer, taskID, assigneeID)
	if err != nil {
		h.respondFailure(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.AssignResponse{
		Success:      true,
		AssigneeName: assigneeName,
		Message:      "담당자가 변경되었습니다.",
	})
}

// @Summary Delete task
// @Tags tasks
// @Router /tasks/{id}/delete [post]
func (h *TaskHandler) Delete(ctx *fasthttp.RequestCtx) {
	viewer, ok := h.viewer(ctx)
	if !ok {
		return
	}
	taskID, ok := h.pathID(ctx, "id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Delete(stdCtx, viewer, taskID); err != nil {
		h.respondFailure(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.SimpleResponse{
		Success: true,
		Message: "작업이 삭제되었습니다.",
	})
}

func taskPayload(task *domain.Task) transport.TaskPayload {
	return transport.TaskPayload{
		ID:        task.ID,
		Name:      task.Name,
		Status:    task.Status,
		StartDate: task.StartDate,
		EndDate:   task.EndDate,
	}
}
