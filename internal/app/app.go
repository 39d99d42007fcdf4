// Package app はゲートウェイの起動処理と依存関係のワイヤリングを提供する。
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/hitoshi/rpelgate/internal/auth"
	"github.com/hitoshi/rpelgate/internal/catalog"
	"github.com/hitoshi/rpelgate/internal/config"
	"github.com/hitoshi/rpelgate/internal/database"
	"github.com/hitoshi/rpelgate/internal/gateway"
	"github.com/hitoshi/rpelgate/internal/handler"
	"github.com/hitoshi/rpelgate/internal/logger"
	"github.com/hitoshi/rpelgate/internal/metrics"
	"github.com/hitoshi/rpelgate/internal/middleware"
	"github.com/hitoshi/rpelgate/internal/repository"
	"github.com/hitoshi/rpelgate/internal/security"
	"github.com/hitoshi/rpelgate/internal/session"
	"github.com/hitoshi/rpelgate/internal/worker/reload"
)

// Init はアプリケーションの初期化を行う。
// JSON構造化ログをセットアップし、環境変数からConfigを読み込んだ後、
// LOG_LEVELに従ってログレベルを設定し直す。
func Init(w io.Writer) (*config.Config, error) {
	// 1. ログの初期化（設定読み込み前にログを使えるようにする）
	logger.SetupDefault(w, slog.LevelInfo)

	// 2. 環境変数から設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger.SetupDefault(w, level)

	return cfg, nil
}

// Run はアプリケーションのメインエントリーポイント。
// argsにはos.Args[1:]を渡す。
func Run(w io.Writer, args []string) error {
	cmd := ParseCommand(args)

	// healthcheck は軽量サブコマンドのため、フル初期化をスキップする
	if cmd == CommandHealthcheck {
		port := os.Getenv("SERVER_PORT")
		if port == "" {
			port = "8080"
		}
		return runHealthcheck(port)
	}

	cfg, err := Init(w)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	slog.Info("starting application",
		slog.String("command", string(cmd)),
		slog.String("port", cfg.ServerPort),
	)

	switch cmd {
	case CommandMigrate:
		direction, ok := ParseMigrateDirection(args)
		if !ok {
			return fmt.Errorf("unknown migrate direction %q (want up or down)", args[1])
		}
		return runMigrate(cfg, direction)
	default:
		return runServe(cfg)
	}
}

// runServe はゲートウェイサーバーモードで起動する。
// 起動時にセッションストアを構築できなければエラーで終了する。
// SIGHUPでセッションストアを再構築し、SIGINTまたはSIGTERMでグレースフルシャットダウンを行う。
func runServe(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. DB接続
	db, err := database.Open(cfg.DatabaseURL, database.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Ping(ctx, db, 5*time.Second); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	slog.Info("database connection established")

	// 2. メトリクス
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry)

	// 3. リポジトリとカタログ
	stores := newStores(db)
	cat := catalog.New(stores, security.NewTextSanitizer())

	// 4. セッションストアの初期構築
	holder := session.NewHolder(nil)
	scheduler := reload.NewScheduler(
		session.NewLoader(stores.User, holder), holder, collector, slog.Default(),
	)
	if err := scheduler.RunOnce(ctx); err != nil {
		return fmt.Errorf("failed to build session store: %w", err)
	}

	// 5. ルーターの構築
	rateLimiter := middleware.NewRateLimiter(
		middleware.NewRateLimiterConfig(cfg.RateLimitGeneral, cfg.RateLimitLogin),
	)
	defer rateLimiter.Stop()

	router := handler.NewRouter(&handler.RouterDeps{
		Logger:            slog.Default(),
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
		MaxBodyBytes:      cfg.MaxBodyBytes,
		RateLimiter:       rateLimiter,

		HealthChecker: db,
		Metrics:       collector,
		Gatherer:      registry,

		AuthService: auth.NewService(holder),
		Executor:    gateway.NewRouter(holder, cat, collector),
	})

	// 6. セッションストアの再構築（SIGHUP・定期実行）
	go reloadOnHangup(ctx, scheduler)
	if cfg.SessionReloadInterval > 0 {
		go scheduler.Start(ctx, cfg.SessionReloadInterval)
	}

	// 7. HTTPサーバーの起動
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("gateway server starting",
			slog.String("addr", server.Addr),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server listen error: %w", err)
		}
	case <-ctx.Done():
	}

	slog.Info("shutting down gateway server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("gateway server stopped gracefully")
	return nil
}

// newStores はPostgreSQLのリポジトリ一式を生成する。
func newStores(db *sql.DB) catalog.Stores {
	return catalog.Stores{
		Certificate: repository.NewPostgresCertificateRepo(db),
		Company:     repository.NewPostgresCompanyRepo(db),
		Contact:     repository.NewPostgresContactRepo(db),
		Department:  repository.NewPostgresDepartmentRepo(db),
		Education:   repository.NewPostgresEducationRepo(db),
		Kind:        repository.NewPostgresKindRepo(db),
		Post:        repository.NewPostgresPostRepo(db),
		Practice:    repository.NewPostgresPracticeRepo(db),
		Rank:        repository.NewPostgresRankRepo(db),
		Scope:       repository.NewPostgresScopeRepo(db),
		Siren:       repository.NewPostgresSirenRepo(db),
		SirenType:   repository.NewPostgresSirenTypeRepo(db),
		User:        repository.NewPostgresUserRepo(db),

		Select:        repository.NewPostgresSelectRepo(db),
		EducationNear: repository.NewPostgresEducationNearRepo(db),
		PracticeNear:  repository.NewPostgresPracticeNearRepo(db),
	}
}

// reloadOnHangup はSIGHUPを受信するたびにセッションストアを再構築する。
func reloadOnHangup(ctx context.Context, scheduler *reload.Scheduler) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			slog.Info("SIGHUP received, reloading sessions")
			_ = scheduler.RunOnce(ctx)
		}
	}
}

// runMigrate はデータベースマイグレーションを実行する。
// upはすべての未適用マイグレーションを適用し、downは直近の1つを巻き戻す。
func runMigrate(cfg *config.Config, direction MigrateDirection) error {
	slog.Info("running database migrations",
		slog.String("direction", string(direction)),
		slog.String("database_url", maskDatabaseURL(cfg.DatabaseURL)),
	)

	var (
		version uint
		err     error
	)
	if direction == MigrateDown {
		version, err = database.RollbackMigration(cfg.DatabaseURL)
	} else {
		version, err = database.RunMigrations(cfg.DatabaseURL)
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	slog.Info("database migrations completed successfully",
		slog.Uint64("version", uint64(version)),
	)
	return nil
}

// runHealthcheck はヘルスチェックを実行する。
// distroless環境でのDockerヘルスチェック用サブコマンド。
// /health エンドポイントにHTTPリクエストを送り、結果を返す。
func runHealthcheck(port string) error {
	endpoint := fmt.Sprintf("http://localhost:%s/health", port)
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(endpoint)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}

	return nil
}

// maskDatabaseURL はデータベースURLのパスワードをマスクする。
// URLとして解析できない場合は全体を伏せる。
func maskDatabaseURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "***"
	}
	return u.Redacted()
}
