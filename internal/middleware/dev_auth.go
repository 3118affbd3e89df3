// internal/middleware/dev_auth.go
package middleware

import (
	"context"
	"net/http"

	"go_5_flash_keep/internal/model"
	"go_5_flash_keep/internal/webutil"

	"github.com/google/uuid"
)

// DevLearnerContextMiddleware は開発時用ミドルウェアです。
// X-Learner-ID ヘッダーからUUIDを抽出し、DBでの実在確認をせずにコンテキストへ設定します。
func DevLearnerContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		learnerIDStr := r.Header.Get("X-Learner-ID")
		if learnerIDStr == "" {
			// 開発時でも学習者IDは必須（カードの帰属先が決まらないため）
			logger.Warn("[DEV AUTH] X-Learner-ID header missing")
			appErr := model.NewAppError("UNAUTHORIZED", "[DEV] X-Learner-IDヘッダーが必要です。", "", model.ErrForbidden)
			webutil.HandleError(w, logger, appErr)
			return
		}

		learnerID, err := uuid.Parse(learnerIDStr)
		if err != nil {
			logger.Warn("[DEV AUTH] invalid X-Learner-ID format", "learner_id", learnerIDStr)
			appErr := model.NewAppError("UNAUTHORIZED", "[DEV] X-Learner-IDの形式が正しくありません。", "", model.ErrForbidden)
			webutil.HandleError(w, logger, appErr)
			return
		}

		ctx := context.WithValue(r.Context(), model.LearnerIDKey, learnerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
