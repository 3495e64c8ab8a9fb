package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/KwonOil/easyplanner/api/transport"
	"github.com/KwonOil/easyplanner/pkg/httpcontext"
	commentUC "github.com/KwonOil/easyplanner/usecase/comment"
)

type CommentHandler struct {
	baseHandler
	uc *commentUC.UseCase
}

func NewCommentHandler(uc *commentUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *CommentHandler {
	return &CommentHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List task comments
// @Tags comments
// @Router /api/task/{task_id}/comments [get]
func (h *CommentHandler) List(ctx *fasthttp.RequestCtx) {
	viewer, ok := h.viewer(ctx)
	if !ok {
		return
	}
	taskID, ok := h.pathID(ctx, "task_id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	comments, err := h.uc.ListForTask(stdCtx, viewer, taskID)
	if err != nil {
		h.respondFailure(ctx, err)
		return
	}

	// Always an array, never null, even for a task with no comments.
	payload := make([]transport.CommentPayload, 0, len(comments))
	for i := range comments {
		c := &comments[i]
		payload = append(payload, transport.CommentPayload{
			ID:        c.ID,
			Username:  c.Username,
			Content:   c.Content,
			CreatedAt: transport.KSTTimestamp(c.CreatedAt),
		})
	}
	h.respondJSON(ctx, http.StatusOK, payload)
}

// @Summary Add comment
// @Tags comments
// @Router /api/task/{task_id}/comments/add [post]
func (h *CommentHandler) Add(ctx *fasthttp.RequestCtx) {
	viewer, ok := h.viewer(ctx)
	if !ok {
		return
	}
	taskID, ok := h.pathID(ctx, "task_id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	comment, err := h.uc.Add(stdCtx, viewer, taskID, formValue(ctx, transport.FieldContent))
	if err != nil {
		h.respondFailure(ctx, err)
		return
	}

	h.respondJSON(ctx, http.StatusOK, transport.AddCommentResponse{
		Success: true,
		Comment: transport.CommentPayload{
			ID:        comment.ID,
			Username:  comment.Username,
			Content:   comment.Content,
			CreatedAt: transport.KSTTimestamp(comment.CreatedAt),
		},
	})
}

// @Summary Edit comment
// @Tags comments
// @Router /api/comment/{id}/edit [post]
func (h *CommentHandler) Edit(ctx *fasthttp.RequestCtx) {
	viewer, ok := h.viewer(ctx)
	if !ok {
		return
	}
	commentID, ok := h.pathID(ctx, "id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	newContent, err := h.uc.Edit(stdCtx, viewer, commentID, formValue(ctx, transport.FieldContent))
	if err != nil {
		h.respondFailure(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.EditCommentResponse{Success: true, NewContent: newContent})
}

// @Summary Delete comment
// @Tags comments
// @Router /api/comments/{id}/delete [post]
func (h *CommentHandler) Delete(ctx *fasthttp.RequestCtx) {
	viewer, ok := h.viewer(ctx)
	if !ok {
		return
	}
	commentID, ok := h.pathID(ctx, "id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Delete(stdCtx, viewer, commentID); err != nil {
		h.respondFailure(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.SimpleResponse{
		Success: true,
		Message: "댓글이 삭제되었습니다.",
	})
}
