// internal/model/learner.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Learner はカードの所有者となる学習者の基本情報です。
// 認証・認可はこのサービスの責務外で、ここではカードの帰属先と
// リマインダー通知の宛先を持つだけです。
type Learner struct {
	LearnerID uuid.UUID      `gorm:"type:uuid;primaryKey" json:"learner_id"`
	Name      string         `gorm:"not null" json:"name"`
	Email     string         `gorm:"unique;not null" json:"email"`
	// ゼロ値(false)を保存できるようdefaultタグは付けない。登録時にサービス側でtrueを設定する。
	IsActive  bool           `json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Learner) TableName() string {
	return "learners"
}

type ContextKey string

const (
	LearnerIDKey ContextKey = "learnerID"
)

// 学習者登録リクエストDTO
type RegisterLearnerRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email"`
}

// LearnerResponse はクライアントに返す学習者情報の構造体
type LearnerResponse struct {
	LearnerID uuid.UUID `json:"learner_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
