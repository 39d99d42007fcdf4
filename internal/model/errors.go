// Package model はドメインモデルを定義する。
package model

import (
	"errors"
	"fmt"
)

// ErrorCode はServiceErrorの分類を表す。
type ErrorCode string

// 定義済みエラーコード
const (
	ErrCodeNotAuth       ErrorCode = "NOT_AUTH"
	ErrCodeNotPermission ErrorCode = "NOT_PERMISSION"
	ErrCodeBadRequest    ErrorCode = "BAD_REQUEST"
	ErrCodePersistence   ErrorCode = "PERSISTENCE_FAILURE"
	ErrCodeProtocol      ErrorCode = "PROTOCOL_FAILURE"
)

// ServiceError はゲートウェイのドメインエラーを表す。
// Error()の文字列はそのままエンベロープのerrorフィールドに格納される。
type ServiceError struct {
	Code   ErrorCode
	Detail string
}

// Error はerrorインターフェースを実装する。
func (e *ServiceError) Error() string {
	switch e.Code {
	case ErrCodeNotAuth:
		return "Not auth"
	case ErrCodeNotPermission:
		return "Not permission"
	case ErrCodeBadRequest:
		return "Bad request: " + e.Detail
	case ErrCodeProtocol:
		return "Protocol: " + e.Detail
	default:
		// 永続化層のメッセージはそのまま中継する
		return e.Detail
	}
}

// Category はUI向けの原因カテゴリを返す。
func (e *ServiceError) Category() string {
	switch e.Code {
	case ErrCodeNotAuth, ErrCodeNotPermission:
		return "auth"
	case ErrCodeBadRequest, ErrCodeProtocol:
		return "validation"
	default:
		return "system"
	}
}

// NewNotAuthError はトークン未登録または資格情報不一致のエラーを生成する。
func NewNotAuthError() *ServiceError {
	return &ServiceError{Code: ErrCodeNotAuth}
}

// NewNotPermissionError は権限ビット不足のエラーを生成する。
func NewNotPermissionError() *ServiceError {
	return &ServiceError{Code: ErrCodeNotPermission}
}

// NewBadRequestError は不明な種別タグや操作に適さないペイロードのエラーを生成する。
func NewBadRequestError(format string, args ...any) *ServiceError {
	return &ServiceError{Code: ErrCodeBadRequest, Detail: fmt.Sprintf(format, args...)}
}

// NewPersistenceError は永続化層の失敗を表すエラーを生成する。
func NewPersistenceError(err error) *ServiceError {
	return &ServiceError{Code: ErrCodePersistence, Detail: err.Error()}
}

// NewNotFoundError はレコードが存在しない場合の永続化エラーを生成する。
func NewNotFoundError(kind EntityKind, id int64) *ServiceError {
	return &ServiceError{Code: ErrCodePersistence, Detail: fmt.Sprintf("%s %d not found", kind, id)}
}

// NewProtocolError はリクエストボディの不正を表すエラーを生成する。
func NewProtocolError(detail string) *ServiceError {
	return &ServiceError{Code: ErrCodeProtocol, Detail: detail}
}

// HasCode はerrがServiceErrorであり、指定コードを持つかを判定する。
func HasCode(err error, code ErrorCode) bool {
	var se *ServiceError
	return errors.As(err, &se) && se.Code == code
}
