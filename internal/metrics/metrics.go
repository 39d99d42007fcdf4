// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// コマンド実行結果のラベル値。
const (
	OutcomeOK            = "ok"
	OutcomeNotAuth       = "not_auth"
	OutcomeNotPermission = "not_permission"
	OutcomeBadRequest    = "bad_request"
	OutcomePersistence   = "persistence_failure"
)

// MetricsCollector はメトリクス収集のインターフェース。
// コマンドルーター・HTTP層・セッション再構築から利用する。
type MetricsCollector interface {
	RecordCommand(command, name, outcome string)
	RecordCommandLatency(command string, duration time.Duration)
	RecordHTTPStatus(statusCode int)
	RecordSessionReload(success bool, sessions int)
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	commands       *prometheus.CounterVec
	commandLatency *prometheus.HistogramVec
	httpStatus     *prometheus.CounterVec
	reloads        *prometheus.CounterVec
	sessions       prometheus.Gauge
}

var _ MetricsCollector = (*Collector)(nil)

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rpelgate_commands_total",
			Help: "コマンド種類・対象・結果別の実行数",
		}, []string{"command", "name", "outcome"}),
		commandLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rpelgate_command_latency_seconds",
			Help:    "コマンド実行のレイテンシ（秒）",
			Buckets: prometheus.DefBuckets,
		}, []string{"command"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rpelgate_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
		reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rpelgate_session_reloads_total",
			Help: "セッションストア再構築の結果別の回数",
		}, []string{"result"}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rpelgate_sessions",
			Help: "現在のセッションストアに登録されたトークン数",
		}),
	}

	reg.MustRegister(
		c.commands,
		c.commandLatency,
		c.httpStatus,
		c.reloads,
		c.sessions,
	)

	return c
}

// RecordCommand はコマンドの実行結果を記録する。
func (c *Collector) RecordCommand(command, name, outcome string) {
	c.commands.WithLabelValues(command, name, outcome).Inc()
}

// RecordCommandLatency はコマンドのレイテンシを記録する。
func (c *Collector) RecordCommandLatency(command string, duration time.Duration) {
	c.commandLatency.WithLabelValues(command).Observe(duration.Seconds())
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordSessionReload はセッションストア再構築の結果を記録する。
// 失敗時は直前のストアが有効なままなので、トークン数のゲージは更新しない。
func (c *Collector) RecordSessionReload(success bool, sessions int) {
	if !success {
		c.reloads.WithLabelValues("failure").Inc()
		return
	}
	c.reloads.WithLabelValues("success").Inc()
	c.sessions.Set(float64(sessions))
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// SetupMetricsRoute は/metricsエンドポイントを提供するHTTPハンドラーを返す。
func SetupMetricsRoute(gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(gatherer))
	return mux
}

// Nop は何も記録しないMetricsCollector。メトリクスを使わない構成とテストで使う。
type Nop struct{}

func (Nop) RecordCommand(string, string, string)       {}
func (Nop) RecordCommandLatency(string, time.Duration) {}
func (Nop) RecordHTTPStatus(int)                       {}
func (Nop) RecordSessionReload(bool, int)              {}
