package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/KwonOil/easyplanner/api/transport"
	"github.com/KwonOil/easyplanner/domain"
	"github.com/KwonOil/easyplanner/pkg/httpcontext"
)

// Identity headers injected by the auth middleware.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserName = "X-User-Name"
	HeaderUserRole = "X-User-Role"
)

type baseHandler struct {
	adapter *httpcontext.Adapter
	logger  *zap.Logger
}

func newBaseHandler(adapter *httpcontext.Adapter, logger *zap.Logger) baseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return baseHandler{adapter: adapter, logger: logger}
}

func (h baseHandler) requestContext(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	if h.adapter != nil {
		return h.adapter.Attach(ctx)
	}
	return context.WithCancel(context.Background())
}

func (h baseHandler) respondJSON(ctx *fasthttp.RequestCtx, status int, payload interface{}) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(payload)
	ctx.SetBody(body)
}

// respondFailure maps a domain error onto an HTTP status and the
// {success:false, message} wire shape.
func (h baseHandler) respondFailure(ctx *fasthttp.RequestCtx, err error) {
	h.respondJSON(ctx, mapError(err), transport.NewFailure(err.Error()))
}

// viewer reconstructs the session identity the middleware stamped onto the
// request. Requests that bypass the middleware have no viewer.
func (h baseHandler) viewer(ctx *fasthttp.RequestCtx) (*domain.Session, bool) {
	id, err := strconv.ParseInt(string(ctx.Request.Header.Peek(HeaderUserID)), 10, 64)
	if err != nil || id == 0 {
		h.respondJSON(ctx, http.StatusUnauthorized, transport.NewFailure(domain.ErrSessionNotFound.Message))
		return nil, false
	}
	return &domain.Session{
		UserID:   id,
		Username: string(ctx.Request.Header.Peek(HeaderUserName)),
		Role:     string(ctx.Request.Header.Peek(HeaderUserRole)),
	}, true
}

// pathID parses the {id}-style route parameter under the given name.
func (h baseHandler) pathID(ctx *fasthttp.RequestCtx, name string) (int64, bool) {
	raw, _ := ctx.UserValue(name).(string)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewFailure(domain.ErrInvalidPayload.Message))
		return 0, false
	}
	return id, true
}

func formValue(ctx *fasthttp.RequestCtx, name string) string {
	return string(ctx.PostArgs().Peek(name))
}

func mapError(err error) int {
	switch {
	case domain.IsDomainError(err, domain.ErrCodeUnauthorized):
		return http.StatusUnauthorized
	case domain.IsDomainError(err, domain.ErrCodeForbidden):
		return http.StatusForbidden
	case domain.IsDomainError(err, domain.ErrCodeInvalid):
		return http.StatusBadRequest
	case domain.IsDomainError(err, domain.ErrCodeNotFound):
		return http.StatusNotFound
	case domain.IsDomainError(err, domain.ErrCodeConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
