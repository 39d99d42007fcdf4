// Package handler はHTTPハンドラーを提供する。
package handler

import (
	"context"
	"net/http"

	"github.com/hitoshi/rpelgate/internal/auth"
	"github.com/hitoshi/rpelgate/internal/middleware"
)

// AuthServiceInterface は認証ハンドラーが必要とするサービスインターフェース。
type AuthServiceInterface interface {
	Login(ctx context.Context, name, secret string) (*auth.LoginResult, error)
	Check(ctx context.Context, token string, role int64) (bool, error)
}

// loginRequest はログインのリクエストボディ。
type loginRequest struct {
	User   string `json:"u"`
	Secret string `json:"p"`
}

// tokenBody はログインの応答とトークン確認のリクエストボディ。
type tokenBody struct {
	Token string `json:"t"`
	Role  int64  `json:"r"`
}

// checkResponse はトークン確認の応答。
type checkResponse struct {
	Match bool `json:"r"`
}

// AuthHandler はログインとトークン確認のHTTPハンドラー。
type AuthHandler struct {
	service AuthServiceInterface
}

// NewAuthHandler はAuthHandlerを生成する。
func NewAuthHandler(service AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login は名前とシークレットを照合し、トークンとロールを返す。
// POST /api/go/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.service.Login(r.Context(), req.User, req.Secret)
	if err != nil {
		middleware.WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenBody{Token: res.Token, Role: res.Role})
}

// Check はトークンが有効で、ロールが一致するかを返す。
// POST /api/go/check
func (h *AuthHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req tokenBody
	if !decodeBody(w, r, &req) {
		return
	}

	match, err := h.service.Check(r.Context(), req.Token, req.Role)
	if err != nil {
		middleware.WriteServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, checkResponse{Match: match})
}
