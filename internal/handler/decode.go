package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hitoshi/rpelgate/internal/middleware"
	"github.com/hitoshi/rpelgate/internal/model"
)

// decodeBody はリクエストボディをvにデコードする。
// 失敗した場合はエラーレスポンス（上限超過は413、それ以外は400）を書き込みfalseを返す。
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			middleware.WriteRequestTooLarge(w, maxErr.Limit)
			return false
		}
		middleware.WriteErrorResponse(w, http.StatusBadRequest, model.NewProtocolError(err.Error()))
		return false
	}
	return true
}

// writeJSON はvをJSONで書き込む。
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		middleware.WriteInternalServerError(w)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(data)
}
