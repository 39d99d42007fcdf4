package reload

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hitoshi/rpelgate/internal/metrics"
	"github.com/hitoshi/rpelgate/internal/model"
	"github.com/hitoshi/rpelgate/internal/session"
)

// --- モック定義 ---

// mockLister はCredentialListerのテスト用モック。
type mockLister struct {
	mu    sync.Mutex
	users []model.User
	err   error
	calls int32
}

func (m *mockLister) ListCredentials(ctx context.Context) ([]model.User, error) {
	atomic.AddInt32(&m.calls, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users, m.err
}

func (m *mockLister) set(users []model.User, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = users
	m.err = err
}

// reloadRecord はRecordSessionReloadの呼び出し1回分。
type reloadRecord struct {
	success  bool
	sessions int
}

// mockRecorder はセッション再構築のメトリクスを記録する。
type mockRecorder struct {
	metrics.Nop
	mu      sync.Mutex
	reloads []reloadRecord
}

func (m *mockRecorder) RecordSessionReload(success bool, sessions int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reloads = append(m.reloads, reloadRecord{success: success, sessions: sessions})
}

func (m *mockRecorder) snapshot() []reloadRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]reloadRecord(nil), m.reloads...)
}

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

func testUsers() []model.User {
	return []model.User{
		{ID: 1, Name: "admin", Key: "root", Role: 1023},
		{ID: 2, Name: "reader", Key: "read", Role: 4},
	}
}

func newScheduler(t *testing.T, lister *mockLister, buf *bytes.Buffer) (*Scheduler, *session.Holder, *mockRecorder) {
	t.Helper()
	holder := session.NewHolder(nil)
	recorder := &mockRecorder{}
	s := NewScheduler(session.NewLoader(lister, holder), holder, recorder, newTestLogger(buf))
	return s, holder, recorder
}

// --- テスト ---

func TestScheduler_RunOnce_SwapsStore(t *testing.T) {
	var buf bytes.Buffer
	lister := &mockLister{users: testUsers()}
	s, holder, recorder := newScheduler(t, lister, &buf)

	if err := s.RunOnce(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if holder.Current().Len() != 2 {
		t.Errorf("sessions = %d, want 2", holder.Current().Len())
	}
	if _, _, ok := holder.Current().FindByCredentials("reader", "read"); !ok {
		t.Error("reader should be able to log in after reload")
	}

	got := recorder.snapshot()
	if len(got) != 1 || !got[0].success || got[0].sessions != 2 {
		t.Errorf("reload metrics = %+v, want one success with 2 sessions", got)
	}

	var entry map[string]interface{}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &entry); err != nil {
		t.Fatalf("failed to parse log: %v", err)
	}
	if entry["msg"] != "session reload completed" {
		t.Errorf("msg = %q, want %q", entry["msg"], "session reload completed")
	}
	if entry["sessions"] != float64(2) {
		t.Errorf("sessions = %v, want 2", entry["sessions"])
	}
}

func TestScheduler_RunOnce_RotatesTokens(t *testing.T) {
	var buf bytes.Buffer
	lister := &mockLister{users: testUsers()}
	s, holder, _ := newScheduler(t, lister, &buf)
	ctx := context.Background()

	if err := s.RunOnce(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before, _, ok := holder.Current().FindByCredentials("admin", "root")
	if !ok {
		t.Fatal("admin should be able to log in")
	}

	// ユーザーが変わらなくても再構築でトークンは再発行される
	if err := s.RunOnce(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after, _, ok := holder.Current().FindByCredentials("admin", "root")
	if !ok {
		t.Fatal("admin should still be able to log in after reload")
	}
	if after == before {
		t.Error("reload should issue a new token")
	}
	if _, ok := holder.Current().Lookup(before); ok {
		t.Error("token from the previous store must be rejected")
	}
}

func TestScheduler_RunOnce_FailureKeepsPreviousStore(t *testing.T) {
	var buf bytes.Buffer
	lister := &mockLister{users: testUsers()}
	s, holder, recorder := newScheduler(t, lister, &buf)

	if err := s.RunOnce(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := holder.Current()

	lister.set(nil, errors.New("connection refused"))
	err := s.RunOnce(context.Background())
	if err == nil {
		t.Fatal("expected error when listing credentials fails")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("error should wrap the cause, got %v", err)
	}

	if holder.Current() != before {
		t.Error("store must not change when reload fails")
	}

	got := recorder.snapshot()
	if len(got) != 2 || got[1].success {
		t.Errorf("reload metrics = %+v, want second entry to be a failure", got)
	}
	if !strings.Contains(buf.String(), "session reload failed") {
		t.Errorf("expected failure log, got %s", buf.String())
	}
}

func TestScheduler_RunOnce_DuplicateUserIDRejected(t *testing.T) {
	var buf bytes.Buffer
	lister := &mockLister{users: []model.User{
		{ID: 1, Name: "first", Key: "a", Role: 1},
		{ID: 1, Name: "second", Key: "b", Role: 2},
	}}
	s, holder, _ := newScheduler(t, lister, &buf)

	if err := s.RunOnce(context.Background()); err == nil {
		t.Fatal("expected error for duplicate credentials")
	}
	if holder.Current().Len() != 0 {
		t.Errorf("sessions = %d, want 0", holder.Current().Len())
	}
}

func TestScheduler_Start_StopsOnCancel(t *testing.T) {
	var buf bytes.Buffer
	lister := &mockLister{users: testUsers()}
	holder := session.NewHolder(nil)
	logger := slog.New(slog.NewJSONHandler(&syncBuffer{buf: &buf}, nil))
	s := NewScheduler(session.NewLoader(lister, holder), holder, nil, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx, 5*time.Millisecond)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for atomic.LoadInt32(&lister.calls) < 2 {
		select {
		case <-deadline:
			t.Fatal("scheduler did not run on ticks")
		case <-time.After(time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after context cancel")
	}

	if holder.Current().Len() != 2 {
		t.Errorf("sessions = %d, want 2", holder.Current().Len())
	}
	if !strings.Contains(buf.String(), "session reload scheduler stopped") {
		t.Errorf("expected stop log, got %s", buf.String())
	}
}

// syncBuffer はゴルーチンから並行に書き込まれるログ用のバッファ。
type syncBuffer struct {
	mu  sync.Mutex
	buf *bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}
