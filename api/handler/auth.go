package handler

import (
	"net/http"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/KwonOil/easyplanner/api/transport"
	"github.com/KwonOil/easyplanner/pkg/httpcontext"
	authUC "github.com/KwonOil/easyplanner/usecase/auth"
)

type AuthHandler struct {
	baseHandler
	uc *authUC.UseCase
}

func NewAuthHandler(uc *authUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Register an account
// @Tags auth
// @Router /register [post]
func (h *AuthHandler) Register(ctx *fasthttp.RequestCtx) {
	username := formValue(ctx, transport.FieldUsername)
	password := formValue(ctx, transport.FieldPassword)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if _, err := h.uc.Register(stdCtx, username, password); err != nil {
		h.respondFailure(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusCreated, transport.SimpleResponse{
		Success: true,
		Message: "회원가입이 완료되었습니다. 로그인해주세요.",
	})
}

// @Summary Log in and receive a bearer token
// @Tags auth
// @Router /login [post]
func (h *AuthHandler) Login(ctx *fasthttp.RequestCtx) {
	username := formValue(ctx, transport.FieldUsername)
	password := formValue(ctx, transport.FieldPassword)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	token, _, err := h.uc.Login(stdCtx, username, password)
	if err != nil {
		h.respondFailure(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.LoginResponse{Success: true, Token: token})
}

// @Summary Log out
// @Tags auth
// @Router /logout [post]
func (h *AuthHandler) Logout(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	_ = h.uc.Logout(stdCtx, bearerToken(ctx))
	h.respondJSON(ctx, http.StatusOK, transport.SimpleResponse{
		Success: true,
		Message: "성공적으로 로그아웃되었습니다.",
	})
}

func bearerToken(ctx *fasthttp.RequestCtx) string {
	header := string(ctx.Request.Header.Peek("Authorization"))
	return strings.TrimPrefix(header, "Bearer ")
}
