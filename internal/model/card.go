// internal/model/card.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EaseFactor の既定値と下限。下限を割ると復習間隔が縮み続けるため、
// スケジューラは更新のたびに下限を強制します。
const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
)

// ReviewCard は学習者1人とコンテンツ1件の復習状態を表します。
// ContentRef は外部のコンテンツストアへの不透明な参照で、本体の中身は読みません。
// Stage は導出値のコピーで、クエリでの絞り込み用に保持しています。
type ReviewCard struct {
	CardID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"card_id"`
	LearnerID      uuid.UUID      `gorm:"type:uuid;not null;index:idx_learner_content,unique" json:"-"`
	ContentRef     string         `gorm:"not null;index:idx_learner_content,unique" json:"content_ref"`
	Repetitions    int            `gorm:"not null;default:0" json:"repetitions"`
	IntervalDays   int            `gorm:"not null;default:0" json:"interval_days"`
	EaseFactor     float64        `gorm:"not null;default:2.5" json:"ease_factor"`
	Stage          Stage          `gorm:"not null;default:new;index" json:"stage"`
	LastReviewedAt *time.Time     `json:"last_reviewed_at"`
	NextReviewAt   time.Time      `gorm:"not null;index" json:"next_review_at"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"` // 削除はコンテンツ側の都合で外部から行われる
}

func (ReviewCard) TableName() string {
	return "review_cards"
}

// NewReviewCard は初回登録時のカードを作成します。未レビューなので即時レビュー対象です。
func NewReviewCard(learnerID uuid.UUID, contentRef string, now time.Time) *ReviewCard {
	return &ReviewCard{
		CardID:       uuid.New(),
		LearnerID:    learnerID,
		ContentRef:   contentRef,
		Repetitions:  0,
		IntervalDays: 0,
		EaseFactor:   DefaultEaseFactor,
		Stage:        StageNew,
		NextReviewAt: now,
	}
}

// カード登録リクエストDTO
type RegisterCardRequest struct {
	ContentRef string `json:"content_ref" validate:"required,min=1,max=255"`
}

// レビュー対象件数レスポンスDTO
type DueCountResponse struct {
	Count int64 `json:"count"`
}

// 学習段階ごとの件数レスポンスDTO
type StageStatsResponse struct {
	New      int64 `json:"new"`
	Learning int64 `json:"learning"`
	Review   int64 `json:"review"`
	Mastered int64 `json:"mastered"`
}
