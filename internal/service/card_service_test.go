// internal/service/card_service_test.go
package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go_5_flash_keep/internal/config"
	"go_5_flash_keep/internal/model"
	"go_5_flash_keep/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 ---
// トランザクション用のインメモリDB
func setupTestDBCard(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to connect database for testing")
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			ReviewLimit: 20,
			SessionCap:  20,
		},
	}
}

func Test_cardService_RegisterCard(t *testing.T) {
	ctx := context.Background()
	learnerID := uuid.New()
	testRef := "word:register"

	tests := []struct {
		name      string
		req       *model.RegisterCardRequest
		setupMock func(cardRepo *mocks.CardRepository)
		wantErr   error
		wantCard  bool
	}{
		{
			name: "正常系: 新規カードを登録できる",
			req:  &model.RegisterCardRequest{ContentRef: testRef},
			setupMock: func(cardRepo *mocks.CardRepository) {
				cardRepo.On("FindByContentRef", ctx, mock.AnythingOfType("*gorm.DB"), learnerID, testRef).
					Return(nil, model.ErrNotFound).Once()
				cardRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.ReviewCard")).
					Run(func(args mock.Arguments) {
						card := args.Get(2).(*model.ReviewCard)
						assert.Equal(t, learnerID, card.LearnerID)
						assert.Equal(t, testRef, card.ContentRef)
						assert.Equal(t, 0, card.Repetitions)
						assert.Equal(t, model.DefaultEaseFactor, card.EaseFactor)
						assert.Equal(t, model.StageNew, card.Stage)
						assert.NotEqual(t, uuid.Nil, card.CardID)
						// 未レビューなので即時レビュー対象になっていること
						assert.False(t, card.NextReviewAt.After(time.Now()))
					}).Return(nil).Once()
			},
			wantErr:  nil,
			wantCard: true,
		},
		{
			name: "異常系: 同じコンテンツ参照が既にあればConflict",
			req:  &model.RegisterCardRequest{ContentRef: testRef},
			setupMock: func(cardRepo *mocks.CardRepository) {
				existing := model.NewReviewCard(learnerID, testRef, time.Now())
				cardRepo.On("FindByContentRef", ctx, mock.AnythingOfType("*gorm.DB"), learnerID, testRef).
					Return(existing, nil).Once()
			},
			wantErr:  model.ErrConflict,
			wantCard: false,
		},
		{
			name: "異常系: 存在確認でDBエラー",
			req:  &model.RegisterCardRequest{ContentRef: testRef},
			setupMock: func(cardRepo *mocks.CardRepository) {
				cardRepo.On("FindByContentRef", ctx, mock.AnythingOfType("*gorm.DB"), learnerID, testRef).
					Return(nil, errors.New("db error")).Once()
			},
			wantErr:  nil, // AppErrorで返る
			wantCard: false,
		},
		{
			name: "異常系: Create失敗",
			req:  &model.RegisterCardRequest{ContentRef: testRef},
			setupMock: func(cardRepo *mocks.CardRepository) {
				cardRepo.On("FindByContentRef", ctx, mock.AnythingOfType("*gorm.DB"), learnerID, testRef).
					Return(nil, model.ErrNotFound).Once()
				cardRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.ReviewCard")).
					Return(errors.New("insert failed")).Once()
			},
			wantErr:  nil,
			wantCard: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDBCard(t)
			mockCardRepo := new(mocks.CardRepository)
			tt.setupMock(mockCardRepo)
			svc := NewCardService(db, mockCardRepo, testConfig())

			card, err := svc.RegisterCard(ctx, learnerID, tt.req)

			if tt.wantCard {
				require.NoError(t, err)
				require.NotNil(t, card)
			} else {
				require.Error(t, err)
				assert.Nil(t, card)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				var appErr *model.AppError
				assert.ErrorAs(t, err, &appErr)
			}
			mockCardRepo.AssertExpectations(t)
		})
	}
}

func Test_cardService_GetDueCards(t *testing.T) {
	ctx := context.Background()
	learnerID := uuid.New()
	now := time.Now()

	t.Run("正常系: 期限の来たカードだけを返す", func(t *testing.T) {
		db := setupTestDBCard(t)
		mockCardRepo := new(mocks.CardRepository)

		due := *model.NewReviewCard(learnerID, "word:due", now.AddDate(0, 0, -1))
		future := *model.NewReviewCard(learnerID, "word:future", now.AddDate(0, 0, 3))
		mockCardRepo.On("FindByLearner", ctx, mock.AnythingOfType("*gorm.DB"), learnerID).
			Return([]model.ReviewCard{future, due}, nil).Once()

		svc := NewCardService(db, mockCardRepo, testConfig())
		got, err := svc.GetDueCards(ctx, learnerID)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, due.CardID, got[0].CardID)
		mockCardRepo.AssertExpectations(t)
	})

	t.Run("正常系: ReviewLimitで件数が制限される", func(t *testing.T) {
		db := setupTestDBCard(t)
		mockCardRepo := new(mocks.CardRepository)

		var cards []model.ReviewCard
		for i := 0; i < 5; i++ {
			cards = append(cards, *model.NewReviewCard(learnerID, fmt.Sprintf("word:%d", i), now.AddDate(0, 0, -i)))
		}
		mockCardRepo.On("FindByLearner", ctx, mock.AnythingOfType("*gorm.DB"), learnerID).
			Return(cards, nil).Once()

		cfg := testConfig()
		cfg.App.ReviewLimit = 3
		svc := NewCardService(db, mockCardRepo, cfg)

		got, err := svc.GetDueCards(ctx, learnerID)

		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("異常系: リポジトリエラー", func(t *testing.T) {
		db := setupTestDBCard(t)
		mockCardRepo := new(mocks.CardRepository)
		mockCardRepo.On("FindByLearner", ctx, mock.AnythingOfType("*gorm.DB"), learnerID).
			Return(nil, errors.New("db error")).Once()

		svc := NewCardService(db, mockCardRepo, testConfig())
		_, err := svc.GetDueCards(ctx, learnerID)

		require.Error(t, err)
		var appErr *model.AppError
		assert.ErrorAs(t, err, &appErr)
	})
}

func Test_cardService_GetDueCount(t *testing.T) {
	ctx := context.Background()
	learnerID := uuid.New()
	db := setupTestDBCard(t)
	mockCardRepo := new(mocks.CardRepository)

	mockCardRepo.On("CountDueByLearner", ctx, mock.AnythingOfType("*gorm.DB"), learnerID, mock.AnythingOfType("time.Time")).
		Return(int64(7), nil).Once()

	svc := NewCardService(db, mockCardRepo, testConfig())
	count, err := svc.GetDueCount(ctx, learnerID)

	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
	mockCardRepo.AssertExpectations(t)
}

func Test_cardService_GetStageStats(t *testing.T) {
	ctx := context.Background()
	learnerID := uuid.New()
	db := setupTestDBCard(t)
	mockCardRepo := new(mocks.CardRepository)
	now := time.Now()

	mkCard := func(reps, interval int) model.ReviewCard {
		c := *model.NewReviewCard(learnerID, fmt.Sprintf("word:%d-%d", reps, interval), now)
		c.Repetitions = reps
		c.IntervalDays = interval
		return c
	}

	mockCardRepo.On("FindByLearner", ctx, mock.AnythingOfType("*gorm.DB"), learnerID).
		Return([]model.ReviewCard{
			mkCard(0, 0),  // new
			mkCard(0, 1),  // new (ラプス直後)
			mkCard(1, 1),  // learning
			mkCard(2, 6),  // learning
			mkCard(3, 16), // review
			mkCard(4, 42), // mastered
		}, nil).Once()

	svc := NewCardService(db, mockCardRepo, testConfig())
	stats, err := svc.GetStageStats(ctx, learnerID)

	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.New)
	assert.Equal(t, int64(2), stats.Learning)
	assert.Equal(t, int64(1), stats.Review)
	assert.Equal(t, int64(1), stats.Mastered)
	mockCardRepo.AssertExpectations(t)
}
