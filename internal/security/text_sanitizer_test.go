package security

import (
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	sanitizer := NewTextSanitizer()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"空文字列", "", ""},
		{"プレーンテキストはそのまま", "Acme Corp", "Acme Corp"},
		{"前後の空白を除去", "  Acme  ", "Acme"},
		{"アンパサンドを保持", "Smith & Sons", "Smith & Sons"},
		{"アポストロフィを保持", "O'Neil", "O'Neil"},
		{"タグを除去", "<b>Bold</b> name", "Bold name"},
		{"scriptを除去", `<script>alert("x")</script>Safe`, "Safe"},
		{"イベント属性ごと除去", `<img src=x onerror="alert(1)">Ivan`, "Ivan"},
		{"エスケープされたタグも除去", "&lt;script&gt;alert(1)&lt;/script&gt;ok", "ok"},
		{"日本語", "<p>東京都千代田区</p>", "東京都千代田区"},
		{"不等号を保持", "radius > 5 km", "radius > 5 km"},
		{"比較式を保持", "a < b", "a < b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizer.Clean(tt.input); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	sanitizer := NewTextSanitizer()

	inputs := []string{
		"Smith & Sons",
		"<div>nested <span>markup</span></div>",
		"&amp;lt;b&amp;gt;double&amp;lt;/b&amp;gt;",
		"radius > 5 km",
	}
	for _, in := range inputs {
		once := sanitizer.Clean(in)
		twice := sanitizer.Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: %q then %q", in, once, twice)
		}
		if strings.Contains(once, "<b>") || strings.Contains(once, "<span>") {
			t.Errorf("Clean(%q) = %q still contains markup", in, once)
		}
	}
}

func TestTextSanitizer_ImplementsInterface(t *testing.T) {
	var _ TextSanitizer = NewTextSanitizer()
}
