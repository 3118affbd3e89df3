// internal/service/learner_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"go_5_flash_keep/internal/config"
	"go_5_flash_keep/internal/middleware"
	"go_5_flash_keep/internal/model"
	"go_5_flash_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LearnerService interface {
	RegisterLearner(ctx context.Context, req *model.RegisterLearnerRequest) (*model.LearnerResponse, error)
	GetLearner(ctx context.Context, learnerID uuid.UUID) (*model.Learner, error)
	// Authenticate は middleware.LearnerAuthenticator を満たします。
	Authenticate(ctx context.Context, learnerID uuid.UUID) error
}

type learnerService struct {
	db          *gorm.DB
	learnerRepo repository.LearnerRepository
	mailer      Mailer
	cfg         *config.Config
}

func NewLearnerService(db *gorm.DB, learnerRepo repository.LearnerRepository, mailer Mailer, cfg *config.Config) LearnerService {
	return &learnerService{
		db:          db,
		learnerRepo: learnerRepo,
		mailer:      mailer,
		cfg:         cfg,
	}
}

func (s *learnerService) RegisterLearner(ctx context.Context, req *model.RegisterLearnerRequest) (*model.LearnerResponse, error) {
	logger := middleware.GetLogger(ctx)

	var created *model.Learner

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.learnerRepo.FindByEmail(ctx, tx, req.Email)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error checking learner existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "学習者の確認中にエラーが発生しました。", "", err)
		}
		if existing != nil {
			return model.NewAppError("CONFLICT", "このメールアドレスは既に登録されています。", "email", model.ErrConflict)
		}

		learner := &model.Learner{
			LearnerID: uuid.New(),
			Name:      req.Name,
			Email:     req.Email,
			IsActive:  true,
		}
		if err := s.learnerRepo.Create(ctx, tx, learner); err != nil {
			logger.Error("Error creating learner", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "学習者の登録に失敗しました。", "", err)
		}

		created = learner
		return nil
	})
	if err != nil {
		return nil, err
	}

	// ウェルカムメールの失敗で登録自体は巻き戻さない
	subject := fmt.Sprintf("%s へようこそ", config.AppName)
	body := fmt.Sprintf("%s さん\n\n登録が完了しました。学習者ID: %s\nこのIDを X-Learner-ID ヘッダーに設定してAPIを利用してください。\n", created.Name, created.LearnerID)
	if err := s.mailer.Send(ctx, created.Email, subject, body); err != nil {
		logger.Warn("Failed to send welcome mail", "error", err, "email", created.Email)
	}

	logger.Info("Learner registered", "learner_id", created.LearnerID)
	return &model.LearnerResponse{
		LearnerID: created.LearnerID,
		Name:      created.Name,
		Email:     created.Email,
		IsActive:  created.IsActive,
		CreatedAt: created.CreatedAt,
	}, nil
}

func (s *learnerService) GetLearner(ctx context.Context, learnerID uuid.UUID) (*model.Learner, error) {
	learner, err := s.learnerRepo.FindByID(ctx, s.db, learnerID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrLearnerNotFound
		}
		return nil, err
	}
	return learner, nil
}

func (s *learnerService) Authenticate(ctx context.Context, learnerID uuid.UUID) error {
	learner, err := s.GetLearner(ctx, learnerID)
	if err != nil {
		return err
	}
	if !learner.IsActive {
		return model.ErrLearnerNotFound
	}
	return nil
}
