// Package reload はセッションストアの定期再構築を提供する。
// ユーザーの追加や変更は再構築されるまでログインに反映されない。
package reload

import (
	"context"
	"log/slog"
	"time"

	"github.com/hitoshi/rpelgate/internal/metrics"
	"github.com/hitoshi/rpelgate/internal/session"
)

// Reloader はセッションストアの再構築を実行するインターフェース。
type Reloader interface {
	Reload(ctx context.Context) error
}

// SessionSource は現在のセッションストアを返す。
type SessionSource interface {
	Current() *session.Store
}

// Scheduler は一定間隔でセッションストアを再構築する。
type Scheduler struct {
	reloader Reloader
	sessions SessionSource
	metrics  metrics.MetricsCollector
	logger   *slog.Logger
}

// NewScheduler はSchedulerを生成する。recorderがnilの場合はメトリクスを記録しない。
func NewScheduler(
	reloader Reloader,
	sessions SessionSource,
	recorder metrics.MetricsCollector,
	logger *slog.Logger,
) *Scheduler {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		reloader: reloader,
		sessions: sessions,
		metrics:  recorder,
		logger:   logger,
	}
}

// Start はintervalごとにRunOnceを実行する。
// コンテキストがキャンセルされるまで戻らない。
func (s *Scheduler) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("session reload scheduler started",
		slog.Duration("interval", interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("session reload scheduler stopped")
			return
		case <-ticker.C:
			_ = s.RunOnce(ctx)
		}
	}
}

// RunOnce はセッションストアを1回再構築し、結果をメトリクスに記録する。
// 成功すると全ユーザーのトークンが再発行され、以前のトークンは無効になる。
// 失敗時は以前のストアが有効なまま残る。
func (s *Scheduler) RunOnce(ctx context.Context) error {
	start := time.Now()

	if err := s.reloader.Reload(ctx); err != nil {
		s.metrics.RecordSessionReload(false, 0)
		s.logger.Error("session reload failed",
			slog.String("error", err.Error()),
		)
		return err
	}

	count := s.sessions.Current().Len()
	s.metrics.RecordSessionReload(true, count)
	s.logger.Info("session reload completed",
		slog.Int("sessions", count),
		slog.Float64("duration_ms", float64(time.Since(start).Milliseconds())),
	)
	return nil
}
