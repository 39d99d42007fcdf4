package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/hitoshi/rpelgate/internal/model"
)

type mockCredentialLister struct {
	listFn func(ctx context.Context) ([]model.User, error)
}

func (m *mockCredentialLister) ListCredentials(ctx context.Context) ([]model.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func TestHolder_NilInitialIsEmpty(t *testing.T) {
	h := NewHolder(nil)
	if h.Current() == nil {
		t.Fatal("Current() must never be nil")
	}
	if h.Current().Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Current().Len())
	}
}

func TestLoader_ReloadSwapsStore(t *testing.T) {
	initial, err := Build([]model.User{{ID: 1, Name: "admin", Key: "k", Role: 2}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	oldToken, _, _ := initial.FindByCredentials("admin", "k")

	h := NewHolder(initial)
	lister := &mockCredentialLister{
		listFn: func(_ context.Context) ([]model.User, error) {
			return []model.User{
				{ID: 1, Name: "admin", Key: "k", Role: 2},
				{ID: 2, Name: "new", Key: "n", Role: 4},
			}, nil
		},
	}

	if err := NewLoader(lister, h).Reload(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if h.Current().Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.Current().Len())
	}
	if _, _, ok := h.Current().FindByCredentials("new", "n"); !ok {
		t.Error("new user should be able to log in after reload")
	}
	if _, ok := h.Current().Lookup(oldToken); ok {
		t.Error("tokens issued before reload must be invalidated")
	}
}

func TestLoader_ReloadFailureKeepsPrevious(t *testing.T) {
	initial, err := Build([]model.User{{ID: 1, Name: "admin", Key: "k", Role: 2}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h := NewHolder(initial)
	lister := &mockCredentialLister{
		listFn: func(_ context.Context) ([]model.User, error) {
			return nil, errors.New("db down")
		},
	}

	if err := NewLoader(lister, h).Reload(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if h.Current() != initial {
		t.Error("previous store must stay active after a failed reload")
	}
}

func TestHolder_ConcurrentReadsDuringSwap(t *testing.T) {
	users := []model.User{{ID: 1, Name: "admin", Key: "k", Role: 2}}
	initial, err := Build(users)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h := NewHolder(initial)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				s := h.Current()
				token, _, ok := s.FindByCredentials("admin", "k")
				if !ok {
					t.Error("snapshot lost its user")
					return
				}
				// 同じスナップショット内ではトークンは必ず解決できる
				if _, ok := s.Lookup(token); !ok {
					t.Error("token did not resolve within its own snapshot")
					return
				}
			}
		}()
	}

	for i := 0; i < 50; i++ {
		next, err := Build(users)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		h.Swap(next)
	}
	wg.Wait()
}
