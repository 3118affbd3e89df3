// internal/model/error.go
package model

import (
	"errors"
	"fmt"
)

// アプリケーション共通のセンチネルエラー
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInternalServer  = errors.New("internal server error")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("resource conflict") // 重複エラー用
	ErrLearnerNotFound = errors.New("learner not found or invalid")
)

// スケジューラ固有のエラー
var (
	// ErrInvalidQuality は定義外の品質グレードが渡された場合のエラー（呼び出し側のバグ）
	ErrInvalidQuality = errors.New("invalid quality grade")
	// ErrInvalidCardState はカードが不変条件を満たしていない場合のエラー。
	// 上流でデータが壊れている兆候なので、黙って補正せず呼び出し側に返す。
	ErrInvalidCardState = errors.New("invalid card state")
	// ErrPersistenceFailed はストアへの書き込み失敗。セッションは同じカードを再提示する。
	ErrPersistenceFailed = errors.New("persistence failed")
	// ErrSessionCompleted は完了済みセッションへのグレード送信
	ErrSessionCompleted = errors.New("session already completed")
)

// ErrorDetail はAPIエラーレスポンスに含める詳細情報
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はエラーコードとユーザー向けメッセージを持つアプリケーションエラーです。
// Unwrap でラップ元のセンチネルエラーを返すため、errors.Is での判定が可能です。
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		Err:    err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Detail.Code, e.Detail.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Detail.Code, e.Detail.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
