// cmd/seed/main.go
// デモ用の学習者とカードを投入するコマンド。
// 使い方: go run ./cmd/seed
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"go_5_flash_keep/internal/config"
	"go_5_flash_keep/internal/model"
	"go_5_flash_keep/internal/repository"
	"go_5_flash_keep/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}

	if err := db.AutoMigrate(&model.Learner{}, &model.ReviewCard{}); err != nil {
		slog.Error("Error running migrations", slog.Any("error", err))
		os.Exit(1)
	}

	ctx := context.Background()
	learnerRepo := repository.NewGormLearnerRepository()
	cardRepo := repository.NewGormCardRepository()
	now := time.Now()

	learner := &model.Learner{
		LearnerID: uuid.New(),
		Name:      "デモ学習者",
		Email:     "demo@example.com",
		IsActive:  true,
	}
	if existing, err := learnerRepo.FindByEmail(ctx, db, learner.Email); err == nil {
		slog.Info("Demo learner already exists, reusing", slog.String("learner_id", existing.LearnerID.String()))
		learner = existing
	} else {
		if err := learnerRepo.Create(ctx, db, learner); err != nil {
			slog.Error("Error creating demo learner", slog.Any("error", err))
			os.Exit(1)
		}
		slog.Info("Created demo learner", slog.String("learner_id", learner.LearnerID.String()))
	}

	// 新規カード (未学習、即 due)
	newRefs := []string{"word:apple", "word:run", "word:beautiful"}
	for _, ref := range newRefs {
		seedCard(ctx, db, cardRepo, model.NewReviewCard(learner.LearnerID, ref, now))
	}

	// 復習中カード (昨日 due になっている)
	reviewed := model.NewReviewCard(learner.LearnerID, "word:library", now.AddDate(0, 0, -8))
	for _, q := range []model.Quality{model.QualityGood, model.QualityGood} {
		updated, err := srs.Update(*reviewed, q, reviewed.NextReviewAt)
		if err != nil {
			slog.Error("Error advancing seed card", slog.Any("error", err))
			os.Exit(1)
		}
		*reviewed = updated
	}
	seedCard(ctx, db, cardRepo, reviewed)

	// 習得済みカード (しばらく出題されない)
	mastered := model.NewReviewCard(learner.LearnerID, "word:hello", now.AddDate(0, 0, -40))
	for _, q := range []model.Quality{model.QualityGood, model.QualityGood, model.QualityEasy} {
		updated, err := srs.Update(*mastered, q, mastered.NextReviewAt)
		if err != nil {
			slog.Error("Error advancing seed card", slog.Any("error", err))
			os.Exit(1)
		}
		*mastered = updated
	}
	seedCard(ctx, db, cardRepo, mastered)

	slog.Info("Seeding completed",
		slog.String("learner_id", learner.LearnerID.String()),
		slog.Int("cards", len(newRefs)+2))
}

func seedCard(ctx context.Context, db *gorm.DB, repo repository.CardRepository, card *model.ReviewCard) {
	if _, err := repo.FindByContentRef(ctx, db, card.LearnerID, card.ContentRef); err == nil {
		slog.Info("Card already exists, skipping", slog.String("content_ref", card.ContentRef))
		return
	}
	if err := repo.Create(ctx, db, card); err != nil {
		slog.Error("Error creating seed card", slog.String("content_ref", card.ContentRef), slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Created card",
		slog.String("content_ref", card.ContentRef),
		slog.String("stage", string(card.Stage)))
}
