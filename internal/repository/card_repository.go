// internal/repository/card_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"go_5_flash_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CardRepository は復習カードの永続化境界です。
// DB接続（またはトランザクション）はService層から渡される想定です。
type CardRepository interface {
	Create(ctx context.Context, tx *gorm.DB, card *model.ReviewCard) error
	FindByID(ctx context.Context, db *gorm.DB, learnerID, cardID uuid.UUID) (*model.ReviewCard, error)
	FindByContentRef(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, contentRef string) (*model.ReviewCard, error)
	FindByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) ([]model.ReviewCard, error)
	CountDueByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, now time.Time) (int64, error)
	Upsert(ctx context.Context, tx *gorm.DB, card *model.ReviewCard) error
}

type gormCardRepository struct{}

func NewGormCardRepository() CardRepository {
	return &gormCardRepository{}
}

func (r *gormCardRepository) Create(ctx context.Context, tx *gorm.DB, card *model.ReviewCard) error {
	// UUIDはService層で設定済み想定
	result := tx.WithContext(ctx).Create(card)
	return result.Error
}

func (r *gormCardRepository) FindByID(ctx context.Context, db *gorm.DB, learnerID, cardID uuid.UUID) (*model.ReviewCard, error) {
	var card model.ReviewCard
	result := db.WithContext(ctx).
		Where("learner_id = ? AND card_id = ?", learnerID, cardID).
		First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &card, nil
}

func (r *gormCardRepository) FindByContentRef(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, contentRef string) (*model.ReviewCard, error) {
	var card model.ReviewCard
	result := db.WithContext(ctx).
		Where("learner_id = ? AND content_ref = ?", learnerID, contentRef).
		First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &card, nil
}

func (r *gormCardRepository) FindByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) ([]model.ReviewCard, error) {
	var cards []model.ReviewCard
	// レビュー対象の絞り込みと並び替えはセレクタ（srs.SelectDue）の責務なので、
	// ここでは学習者の全カードをそのまま返す
	result := db.WithContext(ctx).
		Where("learner_id = ?", learnerID).
		Find(&cards)
	if result.Error != nil {
		return nil, result.Error
	}
	return cards, nil
}

func (r *gormCardRepository) CountDueByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, now time.Time) (int64, error) {
	var count int64
	result := db.WithContext(ctx).
		Model(&model.ReviewCard{}).
		Where("learner_id = ? AND next_review_at <= ?", learnerID, now).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (r *gormCardRepository) Upsert(ctx context.Context, tx *gorm.DB, card *model.ReviewCard) error {
	// Saveは主キーに基づいてUpdate or Insertを行う。冪等な単件書き込み。
	result := tx.WithContext(ctx).Save(card)
	return result.Error
}
