package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/rpelgate/internal/metrics"
	"github.com/hitoshi/rpelgate/internal/middleware"
)

// DefaultMaxBodyBytes はリクエストボディの既定の上限。
const DefaultMaxBodyBytes = 16 * 1024

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	Logger            *slog.Logger
	CORSAllowedOrigin string
	MaxBodyBytes      int64
	RateLimiter       *middleware.RateLimiter

	// 監視
	HealthChecker HealthChecker
	Metrics       metrics.MetricsCollector
	Gatherer      prometheus.Gatherer

	// サービス
	AuthService AuthServiceInterface
	Executor    CommandExecutor
}

// NewRouter は全エンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Logging → Recovery → SecurityHeaders → CORS → (/api/go) BodyLimit → RateLimit
//
// ログインは全般のレート制限に加えてログイン専用の制限を受ける。
func NewRouter(deps *RouterDeps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	maxBody := deps.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}

	r := chi.NewRouter()

	r.Use(middleware.NewLoggingMiddleware(logger, deps.Metrics))
	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))

	authHandler := NewAuthHandler(deps.AuthService)
	commandHandler := NewCommandHandler(deps.Executor)

	// --- 監視 ---
	r.Get("/health", NewHealthHandler(deps.HealthChecker))
	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.Gatherer))
	}

	// --- API ---
	r.Route("/api/go", func(r chi.Router) {
		r.Use(middleware.NewBodyLimitMiddleware(maxBody))
		if deps.RateLimiter != nil {
			r.Use(deps.RateLimiter.GeneralMiddleware())
		}

		login := r.With()
		if deps.RateLimiter != nil {
			login = r.With(deps.RateLimiter.LoginMiddleware())
		}
		login.Post("/login", authHandler.Login)

		r.Post("/check", authHandler.Check)
		r.Post("/json", commandHandler.Execute)
	})

	return r
}
