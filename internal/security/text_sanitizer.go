// Package security はアプリケーションのセキュリティ機能を提供する。
//
// TextSanitizer はレコードの文字列フィールドからマークアップを取り除く。
// bluemondayのStrictPolicyで全てのタグを除去し、エンティティを元の文字に戻した
// プレーンテキストとして保存させる。
package security

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// maxPasses はエンティティでエスケープされたマークアップを剥がす最大回数。
const maxPasses = 3

// TextSanitizer は文字列フィールドのサニタイズ機能のインターフェースを定義する。
type TextSanitizer interface {
	// Clean はタグを除去し、前後の空白を落としたプレーンテキストを返す。
	// 同一入力に対して常に同一出力を返す（冪等）。
	Clean(s string) string
}

// textSanitizer はTextSanitizerの実装。
// bluemondayのポリシーはスレッドセーフに共有できる。
type textSanitizer struct {
	policy *bluemonday.Policy
}

// NewTextSanitizer はTextSanitizerの新しいインスタンスを生成する。
func NewTextSanitizer() *textSanitizer {
	return &textSanitizer{policy: bluemonday.StrictPolicy()}
}

// Clean はタグを除去したプレーンテキストを返す。
func (s *textSanitizer) Clean(text string) string {
	if text == "" {
		return ""
	}
	if !strings.ContainsAny(text, "<>&") {
		return strings.TrimSpace(text)
	}

	out := text
	for i := 0; i < maxPasses; i++ {
		next := s.pass(out)
		if next == out {
			return strings.TrimSpace(out)
		}
		out = next
	}
	// 規定回数で安定しなかった場合のみ山括弧を落とす
	if s.pass(out) != out {
		out = strings.NewReplacer("<", "", ">", "").Replace(out)
	}
	return strings.TrimSpace(out)
}

// pass はタグを1回除去し、エンティティを元の文字に戻す。
func (s *textSanitizer) pass(text string) string {
	return html.UnescapeString(s.policy.Sanitize(text))
}
