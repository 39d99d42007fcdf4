package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// healthTimeout はヘルスチェック時のDB疎通確認のタイムアウト。
const healthTimeout = 2 * time.Second

// HealthChecker はDBの疎通確認を行う。*sql.DBが満たす。
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

type healthResponse struct {
	Status string `json:"status"`
}

// NewHealthHandler は/healthのハンドラーを返す。
// DBに到達できない場合は503を返す。
func NewHealthHandler(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if checker != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
			defer cancel()

			if err := checker.PingContext(ctx); err != nil {
				slog.Error("health check failed", slog.String("error", err.Error()))
				writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
				return
			}
		}
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
	}
}
