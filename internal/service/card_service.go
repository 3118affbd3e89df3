// internal/service/card_service.go
package service

import (
	"context"
	"errors"
	"time"

	"go_5_flash_keep/internal/config"
	"go_5_flash_keep/internal/middleware"
	"go_5_flash_keep/internal/model"
	"go_5_flash_keep/internal/repository"
	"go_5_flash_keep/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CardService interface {
	RegisterCard(ctx context.Context, learnerID uuid.UUID, req *model.RegisterCardRequest) (*model.ReviewCard, error)
	GetDueCards(ctx context.Context, learnerID uuid.UUID) ([]model.ReviewCard, error)
	GetDueCount(ctx context.Context, learnerID uuid.UUID) (int64, error)
	GetStageStats(ctx context.Context, learnerID uuid.UUID) (*model.StageStatsResponse, error)
}

type cardService struct {
	db       *gorm.DB
	cardRepo repository.CardRepository
	cfg      *config.Config
}

func NewCardService(db *gorm.DB, cardRepo repository.CardRepository, cfg *config.Config) CardService {
	return &cardService{
		db:       db,
		cardRepo: cardRepo,
		cfg:      cfg,
	}
}

// RegisterCard は学習者がコンテンツに初めて取り組んだときのカード登録です。
// 同じコンテンツ参照のカードが既にあれば Conflict を返します。
func (s *cardService) RegisterCard(ctx context.Context, learnerID uuid.UUID, req *model.RegisterCardRequest) (*model.ReviewCard, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)

	var created *model.ReviewCard

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.cardRepo.FindByContentRef(ctx, tx, learnerID, req.ContentRef)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error checking card existence in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "カードの確認中にエラーが発生しました。", "", err)
		}
		if existing != nil {
			return model.NewAppError("CONFLICT", "このコンテンツは既に登録されています。", "content_ref", model.ErrConflict)
		}

		card := model.NewReviewCard(learnerID, req.ContentRef, time.Now())
		if err := s.cardRepo.Create(ctx, tx, card); err != nil {
			logger.Error("Error creating review card", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "カードの作成に失敗しました。", "", err)
		}

		created = card
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Review card registered", "card_id", created.CardID, "content_ref", created.ContentRef)
	return created, nil
}

// GetDueCards は現時点のレビュー対象カードを緊急度順に返します。
func (s *cardService) GetDueCards(ctx context.Context, learnerID uuid.UUID) ([]model.ReviewCard, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)

	cards, err := s.cardRepo.FindByLearner(ctx, s.db, learnerID)
	if err != nil {
		logger.Error("Failed to load cards from repository", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "レビュー対象カードの取得に失敗しました。", "", err)
	}

	due := srs.SelectDue(cards, time.Now(), s.cfg.App.ReviewLimit)
	logger.Info("Successfully selected due cards", "count", len(due))
	return due, nil
}

func (s *cardService) GetDueCount(ctx context.Context, learnerID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)

	count, err := s.cardRepo.CountDueByLearner(ctx, s.db, learnerID, time.Now())
	if err != nil {
		logger.Error("Failed to count due cards", "error", err)
		return 0, model.NewAppError("INTERNAL_SERVER_ERROR", "レビュー対象件数の取得に失敗しました。", "", err)
	}
	return count, nil
}

// GetStageStats は学習段階ごとの件数を返します。保存済みのStageではなく
// 導出値で数えるので、分類ロジック変更後も再集計が不要です。
func (s *cardService) GetStageStats(ctx context.Context, learnerID uuid.UUID) (*model.StageStatsResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)

	cards, err := s.cardRepo.FindByLearner(ctx, s.db, learnerID)
	if err != nil {
		logger.Error("Failed to load cards for stats", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学習状況の取得に失敗しました。", "", err)
	}

	stats := &model.StageStatsResponse{}
	for _, c := range cards {
		switch srs.Classify(c.Repetitions, c.IntervalDays) {
		case model.StageNew:
			stats.New++
		case model.StageLearning:
			stats.Learning++
		case model.StageReview:
			stats.Review++
		case model.StageMastered:
			stats.Mastered++
		}
	}
	return stats, nil
}
