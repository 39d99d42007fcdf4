package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestRecoveryMiddleware_PanicReturns500 はpanicが500の統一レスポンスになることを検証する。
func TestRecoveryMiddleware_PanicReturns500(t *testing.T) {
	handler := NewRecoveryMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/go/json", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
}

// TestSecurityHeadersMiddleware はセキュリティヘッダーが付与されることを検証する。
func TestSecurityHeadersMiddleware(t *testing.T) {
	handler := NewSecurityHeadersMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	for header, want := range map[string]string{
		"X-Content-Type-Options":  "nosniff",
		"X-Frame-Options":         "DENY",
		"Referrer-Policy":         "no-referrer",
		"Content-Security-Policy": "default-src 'none'; frame-ancestors 'none'",
		"Cache-Control":           "no-store",
	} {
		if got := w.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
}

// TestMiddlewareChain_PanicInsideLogging はログ・リカバリー・CORSを組み合わせた順序で動作することを検証する。
func TestMiddlewareChain_PanicInsideLogging(t *testing.T) {
	var buf bytes.Buffer
	logging := NewLoggingMiddleware(newTestLogger(&buf), nil)
	recovery := NewRecoveryMiddleware()
	cors := NewCORSMiddleware(testOrigin)

	handler := logging(recovery(cors(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))))

	req := httptest.NewRequest(http.MethodPost, "/api/go/json", nil)
	req.Header.Set("Origin", testOrigin)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	entry := decodeLogEntry(t, &buf)
	if status, _ := entry["status"].(float64); status != 500 {
		t.Errorf("logged status = %v, want 500", entry["status"])
	}
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("request id header should be set")
	}
}
