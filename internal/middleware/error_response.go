package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/hitoshi/rpelgate/internal/model"
)

// ErrorResponseBody はAPIエラーレスポンスの統一フォーマット。
// 原因カテゴリと対処方法を含む。
type ErrorResponseBody struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Category string `json:"category"`
	Action   string `json:"action"`
}

// errCodeInternal はServiceErrorとして分類できない内部エラーのコード。
const errCodeInternal model.ErrorCode = "INTERNAL_ERROR"

// actions はエラーコードごとの対処方法。
var actions = map[model.ErrorCode]string{
	model.ErrCodeNotAuth:       "再度ログインしてください。",
	model.ErrCodeNotPermission: "管理者に権限の付与を依頼してください。",
	model.ErrCodeBadRequest:    "リクエスト内容を確認してください。",
	model.ErrCodeProtocol:      "リクエストの形式を確認してください。",
	model.ErrCodePersistence:   "しばらく待ってから再度お試しください。",
	errCodeInternal:            "しばらく待ってから再度お試しください。",
}

// StatusCode はServiceErrorに対応するHTTPステータスコードを返す。
func StatusCode(err *model.ServiceError) int {
	switch err.Code {
	case model.ErrCodeNotAuth:
		return http.StatusUnauthorized
	case model.ErrCodeNotPermission:
		return http.StatusForbidden
	case model.ErrCodeBadRequest, model.ErrCodeProtocol:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WriteErrorResponse は統一エラーフォーマットでHTTPエラーレスポンスを書き込む。
func WriteErrorResponse(w http.ResponseWriter, statusCode int, svcErr *model.ServiceError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponseBody{
		Code:     string(svcErr.Code),
		Message:  svcErr.Error(),
		Category: svcErr.Category(),
		Action:   actions[svcErr.Code],
	})
}

// WriteServiceError はエラーを統一フォーマットで書き込む。
// ServiceError以外のエラーは内部エラーとして扱う。
func WriteServiceError(w http.ResponseWriter, err error) {
	var svcErr *model.ServiceError
	if !errors.As(err, &svcErr) {
		WriteInternalServerError(w)
		return
	}
	WriteErrorResponse(w, StatusCode(svcErr), svcErr)
}

// WriteRequestTooLarge はボディサイズ超過の413レスポンスを書き込む。
func WriteRequestTooLarge(w http.ResponseWriter, maxBytes int64) {
	WriteErrorResponse(w, http.StatusRequestEntityTooLarge,
		model.NewProtocolError(fmt.Sprintf("request body exceeds %d bytes", maxBytes)))
}

// WriteInternalServerError は内部サーバーエラーの統一レスポンスを書き込む。
// 詳細はログのみに記録し、ユーザーには一般的なメッセージを返す。
func WriteInternalServerError(w http.ResponseWriter) {
	WriteErrorResponse(w, http.StatusInternalServerError, &model.ServiceError{
		Code:   errCodeInternal,
		Detail: "内部エラーが発生しました。",
	})
}
