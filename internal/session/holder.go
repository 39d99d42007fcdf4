package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/hitoshi/rpelgate/internal/model"
)

// Holder は現在有効なStoreを保持する。
// 差し替えはポインタの置き換えのみで、処理中のリクエストは新旧どちらか一方の完全なStoreを見る。
type Holder struct {
	current atomic.Pointer[Store]
}

// NewHolder は初期Storeを持つHolderを生成する。
func NewHolder(initial *Store) *Holder {
	h := &Holder{}
	if initial == nil {
		initial = &Store{}
	}
	h.current.Store(initial)
	return h
}

// Current は現在のStoreを返す。
func (h *Holder) Current() *Store {
	return h.current.Load()
}

// Swap はStoreを差し替え、以前のStoreを返す。
func (h *Holder) Swap(next *Store) *Store {
	return h.current.Swap(next)
}

// CredentialLister はセッション構築用に全ユーザーの資格情報を返す。
type CredentialLister interface {
	ListCredentials(ctx context.Context) ([]model.User, error)
}

// Loader は永続化層からStoreを再構築してHolderに反映する。
type Loader struct {
	source CredentialLister
	holder *Holder
}

// NewLoader はLoaderを生成する。
func NewLoader(source CredentialLister, holder *Holder) *Loader {
	return &Loader{source: source, holder: holder}
}

// Reload は資格情報を読み直して新しいStoreに差し替える。
// 失敗した場合は以前のStoreが有効なまま残る。
func (l *Loader) Reload(ctx context.Context) error {
	users, err := l.source.ListCredentials(ctx)
	if err != nil {
		return fmt.Errorf("failed to list credentials: %w", err)
	}

	store, err := Build(users)
	if err != nil {
		return fmt.Errorf("failed to build session store: %w", err)
	}

	prev := l.holder.Swap(store)
	slog.Info("session store reloaded",
		slog.Int("sessions", store.Len()),
		slog.Int("previous_sessions", prev.Len()),
	)
	return nil
}
