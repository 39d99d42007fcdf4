// Package session はトークンからユーザーを引くセッションストアを提供する。
//
// ストアは構築時に全ユーザーへトークンを1つずつ発行し、以後は読み取り専用になる。
// トークンは永続化されず、ストアを再構築すると全て失効する。
package session

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"

	"github.com/hitoshi/rpelgate/internal/model"
)

// TokenLength はトークンの文字数。
const TokenLength = 20

const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Store はトークンとユーザーの対応を保持する不変のスナップショット。
type Store struct {
	byToken map[string]model.User
	tokens  map[int64]string
	users   []model.User
}

// Build はusersそれぞれに新しいトークンを発行してStoreを構築する。
func Build(users []model.User) (*Store, error) {
	return buildWith(rand.Reader, users)
}

func buildWith(r io.Reader, users []model.User) (*Store, error) {
	s := &Store{
		byToken: make(map[string]model.User, len(users)),
		tokens:  make(map[int64]string, len(users)),
		users:   make([]model.User, 0, len(users)),
	}
	for _, u := range users {
		if _, dup := s.tokens[u.ID]; dup {
			return nil, fmt.Errorf("duplicate user id %d", u.ID)
		}
		var token string
		for {
			t, err := generateToken(r)
			if err != nil {
				return nil, fmt.Errorf("failed to generate token: %w", err)
			}
			if _, taken := s.byToken[t]; !taken {
				token = t
				break
			}
		}
		s.byToken[token] = u
		s.tokens[u.ID] = token
		s.users = append(s.users, u)
	}
	return s, nil
}

// generateToken は英数字TokenLength文字のトークンを生成する。
// 62で割り切れない上位のバイト値は捨てて偏りをなくす。
func generateToken(r io.Reader) (string, error) {
	const limit = 256 - 256%len(tokenAlphabet)

	out := make([]byte, 0, TokenLength)
	buf := make([]byte, TokenLength)
	for len(out) < TokenLength {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, tokenAlphabet[int(b)%len(tokenAlphabet)])
			if len(out) == TokenLength {
				break
			}
		}
	}
	return string(out), nil
}

// Lookup はトークンに対応するユーザーを返す。
func (s *Store) Lookup(token string) (model.User, bool) {
	if s == nil || token == "" {
		return model.User{}, false
	}
	u, ok := s.byToken[token]
	return u, ok
}

// FindByCredentials は名前とシークレットが一致するユーザーのトークンとロールを返す。
// 名前もシークレットも完全一致で照合する。
func (s *Store) FindByCredentials(name, secret string) (string, int64, bool) {
	if s == nil {
		return "", 0, false
	}
	for _, u := range s.users {
		if u.Name != name {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(u.Key), []byte(secret)) != 1 {
			continue
		}
		return s.tokens[u.ID], u.Role, true
	}
	return "", 0, false
}

// Len は登録されているセッション数を返す。
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.byToken)
}
