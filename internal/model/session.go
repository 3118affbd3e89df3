// internal/model/session.go
package model

import "github.com/google/uuid"

// セッション開始リクエストDTO。Cap が 0 のときは設定値のデフォルトを使います。
type StartSessionRequest struct {
	Cap int `json:"cap" validate:"min=0,max=500"`
}

// グレード送信リクエストDTO。提示中のカードに対するグレードのみ受け付けるため、
// カードIDは含みません。
type GradeRequest struct {
	Quality string `json:"quality" validate:"required,oneof=again hard good easy"`
}

// SessionResponse はセッションの現在状態のレスポンスDTO
type SessionResponse struct {
	SessionID  uuid.UUID   `json:"session_id"`
	State      string      `json:"state"`
	Current    *ReviewCard `json:"current,omitempty"` // 提示中のカード（完了時はnull）
	Remaining  int         `json:"remaining"`
	Reviewed   int         `json:"reviewed"`
	Lapsed     int         `json:"lapsed"`
	DurationMS int64       `json:"duration_ms,omitempty"`
}
