// internal/service/session_service_test.go
package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go_5_flash_keep/internal/config"
	"go_5_flash_keep/internal/model"
	"go_5_flash_keep/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// セッションはスケジューラ・コントローラ・リポジトリを貫通するので、
// モックではなくインメモリDB+実リポジトリで通しのテストをする。
func setupSessionTest(t *testing.T) (*gorm.DB, SessionService, uuid.UUID) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to connect database for testing")
	require.NoError(t, db.AutoMigrate(&model.Learner{}, &model.ReviewCard{}))

	cfg := &config.Config{
		App: config.AppConfig{ReviewLimit: 20, SessionCap: 20},
	}
	svc := NewSessionService(db, repository.NewGormCardRepository(), cfg)
	return db, svc, uuid.New()
}

func seedSessionCard(t *testing.T, db *gorm.DB, learnerID uuid.UUID, contentRef string, nextReviewAt time.Time) *model.ReviewCard {
	t.Helper()
	card := model.NewReviewCard(learnerID, contentRef, nextReviewAt)
	require.NoError(t, db.Create(card).Error)
	return card
}

func Test_sessionService_StartSession(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: レビュー対象ありで最初のカードを提示", func(t *testing.T) {
		db, svc, learnerID := setupSessionTest(t)
		seedSessionCard(t, db, learnerID, "word:one", time.Now().AddDate(0, 0, -1))
		seedSessionCard(t, db, learnerID, "word:two", time.Now().AddDate(0, 0, -2))

		resp, err := svc.StartSession(ctx, learnerID, nil)

		require.NoError(t, err)
		assert.Equal(t, "presenting", resp.State)
		require.NotNil(t, resp.Current)
		assert.Equal(t, "word:two", resp.Current.ContentRef) // 延滞が長い方が先
		assert.Equal(t, 2, resp.Remaining)
		assert.Equal(t, 0, resp.Reviewed)
	})

	t.Run("正常系: 対象なしは即completedで返る", func(t *testing.T) {
		_, svc, learnerID := setupSessionTest(t)

		resp, err := svc.StartSession(ctx, learnerID, nil)

		require.NoError(t, err)
		assert.Equal(t, "completed", resp.State)
		assert.Nil(t, resp.Current)
		assert.Equal(t, 0, resp.Remaining)
	})

	t.Run("正常系: リクエストのCapがデフォルトを上書きする", func(t *testing.T) {
		db, svc, learnerID := setupSessionTest(t)
		for i := 0; i < 5; i++ {
			seedSessionCard(t, db, learnerID, fmt.Sprintf("word:%d", i), time.Now().AddDate(0, 0, -1))
		}

		resp, err := svc.StartSession(ctx, learnerID, &model.StartSessionRequest{Cap: 2})

		require.NoError(t, err)
		assert.Equal(t, 2, resp.Remaining)
	})

	t.Run("正常系: 他の学習者のカードはセッションに含まれない", func(t *testing.T) {
		db, svc, learnerID := setupSessionTest(t)
		seedSessionCard(t, db, uuid.New(), "word:other", time.Now().AddDate(0, 0, -1))

		resp, err := svc.StartSession(ctx, learnerID, nil)

		require.NoError(t, err)
		assert.Equal(t, "completed", resp.State)
	})
}

func Test_sessionService_SubmitGrade(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 全カードを消化してセッション完了、スケジュールが保存される", func(t *testing.T) {
		db, svc, learnerID := setupSessionTest(t)
		card := seedSessionCard(t, db, learnerID, "word:only", time.Now().AddDate(0, 0, -1))

		started, err := svc.StartSession(ctx, learnerID, nil)
		require.NoError(t, err)

		resp, err := svc.SubmitGrade(ctx, learnerID, started.SessionID, &model.GradeRequest{Quality: "good"})

		require.NoError(t, err)
		assert.Equal(t, "completed", resp.State)
		assert.Nil(t, resp.Current)
		assert.Equal(t, 1, resp.Reviewed)
		assert.Equal(t, 0, resp.Lapsed)

		// DBにスケジュール更新が反映されていること
		var saved model.ReviewCard
		require.NoError(t, db.First(&saved, "card_id = ?", card.CardID).Error)
		assert.Equal(t, 1, saved.Repetitions)
		assert.Equal(t, 1, saved.IntervalDays)
		assert.Equal(t, model.StageLearning, saved.Stage)
		assert.True(t, saved.NextReviewAt.After(time.Now()))
	})

	t.Run("正常系: Againはラプスとして集計される", func(t *testing.T) {
		db, svc, learnerID := setupSessionTest(t)
		seedSessionCard(t, db, learnerID, "word:a", time.Now().AddDate(0, 0, -1))
		seedSessionCard(t, db, learnerID, "word:b", time.Now().AddDate(0, 0, -2))

		started, err := svc.StartSession(ctx, learnerID, nil)
		require.NoError(t, err)

		resp, err := svc.SubmitGrade(ctx, learnerID, started.SessionID, &model.GradeRequest{Quality: "again"})
		require.NoError(t, err)
		assert.Equal(t, "presenting", resp.State)
		require.NotNil(t, resp.Current)
		assert.Equal(t, 1, resp.Lapsed)

		resp, err = svc.SubmitGrade(ctx, learnerID, started.SessionID, &model.GradeRequest{Quality: "easy"})
		require.NoError(t, err)
		assert.Equal(t, "completed", resp.State)
		assert.Equal(t, 2, resp.Reviewed)
		assert.Equal(t, 1, resp.Lapsed)
	})

	t.Run("異常系: 不正なqualityはINVALID_QUALITY", func(t *testing.T) {
		db, svc, learnerID := setupSessionTest(t)
		seedSessionCard(t, db, learnerID, "word:x", time.Now().AddDate(0, 0, -1))
		started, err := svc.StartSession(ctx, learnerID, nil)
		require.NoError(t, err)

		_, err = svc.SubmitGrade(ctx, learnerID, started.SessionID, &model.GradeRequest{Quality: "perfect"})

		require.Error(t, err)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_QUALITY", appErr.Detail.Code)
	})

	t.Run("異常系: 完了済みセッションへのグレードはSESSION_COMPLETED", func(t *testing.T) {
		db, svc, learnerID := setupSessionTest(t)
		seedSessionCard(t, db, learnerID, "word:done", time.Now().AddDate(0, 0, -1))
		started, err := svc.StartSession(ctx, learnerID, nil)
		require.NoError(t, err)
		_, err = svc.SubmitGrade(ctx, learnerID, started.SessionID, &model.GradeRequest{Quality: "good"})
		require.NoError(t, err)

		_, err = svc.SubmitGrade(ctx, learnerID, started.SessionID, &model.GradeRequest{Quality: "good"})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrSessionCompleted)
	})

	t.Run("異常系: 存在しないセッションはNotFound", func(t *testing.T) {
		_, svc, learnerID := setupSessionTest(t)

		_, err := svc.SubmitGrade(ctx, learnerID, uuid.New(), &model.GradeRequest{Quality: "good"})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("異常系: 他の学習者のセッションはForbidden", func(t *testing.T) {
		db, svc, learnerID := setupSessionTest(t)
		seedSessionCard(t, db, learnerID, "word:mine", time.Now().AddDate(0, 0, -1))
		started, err := svc.StartSession(ctx, learnerID, nil)
		require.NoError(t, err)

		_, err = svc.SubmitGrade(ctx, uuid.New(), started.SessionID, &model.GradeRequest{Quality: "good"})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrForbidden)
	})
}

func Test_sessionService_GetSession(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 進行中セッションの状態を照会できる", func(t *testing.T) {
		db, svc, learnerID := setupSessionTest(t)
		seedSessionCard(t, db, learnerID, "word:q", time.Now().AddDate(0, 0, -1))
		started, err := svc.StartSession(ctx, learnerID, nil)
		require.NoError(t, err)

		resp, err := svc.GetSession(ctx, learnerID, started.SessionID)

		require.NoError(t, err)
		assert.Equal(t, started.SessionID, resp.SessionID)
		assert.Equal(t, "presenting", resp.State)
		require.NotNil(t, resp.Current)
	})

	t.Run("異常系: 存在しないセッションはNotFound", func(t *testing.T) {
		_, svc, learnerID := setupSessionTest(t)

		_, err := svc.GetSession(ctx, learnerID, uuid.New())

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("正常系: 完了セッションは保持期限内なら照会でき、期限を過ぎると破棄される", func(t *testing.T) {
		db, svc, learnerID := setupSessionTest(t)
		seedSessionCard(t, db, learnerID, "word:ttl", time.Now().AddDate(0, 0, -1))
		started, err := svc.StartSession(ctx, learnerID, nil)
		require.NoError(t, err)
		_, err = svc.SubmitGrade(ctx, learnerID, started.SessionID, &model.GradeRequest{Quality: "good"})
		require.NoError(t, err)

		resp, err := svc.GetSession(ctx, learnerID, started.SessionID)
		require.NoError(t, err)
		assert.Equal(t, "completed", resp.State)

		// 保持期限を過ぎた時刻まで時計を進める
		impl := svc.(*sessionService)
		impl.now = func() time.Time { return time.Now().Add(completedSessionTTL + time.Minute) }

		_, err = svc.GetSession(ctx, learnerID, started.SessionID)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)

		impl.mu.Lock()
		assert.Empty(t, impl.sessions)
		impl.mu.Unlock()
	})
}
