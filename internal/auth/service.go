// Package auth はログインとセッショントークンの確認を提供する。
package auth

import (
	"context"
	"log/slog"

	"github.com/hitoshi/rpelgate/internal/model"
	"github.com/hitoshi/rpelgate/internal/session"
)

// SessionSource は現在のセッションストアを返す。
type SessionSource interface {
	Current() *session.Store
}

// LoginResult はログイン成功時に返すトークンとロール。
type LoginResult struct {
	Token string
	Role  int64
}

// Service は認証に関するビジネスロジックを提供する。
// トークンは起動時（または再構築時）に発行済みで、ログインは発行済みトークンを引き渡すだけ。
type Service struct {
	sessions SessionSource
}

// NewService はServiceを生成する。
func NewService(sessions SessionSource) *Service {
	return &Service{sessions: sessions}
}

// Login は名前とシークレットに一致するユーザーのトークンとロールを返す。
// 一致するユーザーがいない場合はNotAuthを返す。
func (s *Service) Login(_ context.Context, name, secret string) (*LoginResult, error) {
	token, role, ok := s.sessions.Current().FindByCredentials(name, secret)
	if !ok {
		slog.Warn("login rejected", slog.String("name", name))
		return nil, model.NewNotAuthError()
	}

	slog.Info("user logged in", slog.String("name", name), slog.Int64("role", role))
	return &LoginResult{Token: token, Role: role}, nil
}

// Check はトークンが有効で、そのユーザーのロールがroleと一致するかを返す。
// トークンが未登録の場合はNotAuthを返す。
func (s *Service) Check(_ context.Context, token string, role int64) (bool, error) {
	user, ok := s.sessions.Current().Lookup(token)
	if !ok {
		return false, model.NewNotAuthError()
	}
	return user.Role == role, nil
}
