package middleware

import "net/http"

// NewBodyLimitMiddleware はリクエストボディをmaxBytesに制限するミドルウェアを返す。
// 超過分を読もうとしたハンドラーは*http.MaxBytesErrorを受け取る。
// Content-Lengthが上限を超えている場合は読み込み前に413を返す。
func NewBodyLimitMiddleware(maxBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				WriteRequestTooLarge(w, maxBytes)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
