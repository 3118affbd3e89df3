// internal/middleware/auth.go
package middleware

import (
	"context"
	"net/http"

	"go_5_flash_keep/internal/model"
	"go_5_flash_keep/internal/webutil"

	"github.com/google/uuid"
)

// LearnerAuthenticator は学習者IDの実在確認を行うインターフェースです。
// 実装はService層（LearnerService）が提供し、main で注入されます。
// ここは「この学習者IDは有効か」の確認のみで、credential認証は扱いません。
type LearnerAuthenticator interface {
	Authenticate(ctx context.Context, learnerID uuid.UUID) error
}

// LearnerAuthMiddleware は X-Learner-ID ヘッダーから学習者を解決し、
// 実在確認のうえコンテキストに設定するミドルウェアです。
func LearnerAuthMiddleware(authenticator LearnerAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			learnerIDStr := r.Header.Get("X-Learner-ID")
			if learnerIDStr == "" {
				logger.Warn("Learner auth failed: X-Learner-ID header missing")
				appErr := model.NewAppError("UNAUTHORIZED", "X-Learner-IDヘッダーが必要です。", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			learnerID, err := uuid.Parse(learnerIDStr)
			if err != nil {
				logger.Warn("Learner auth failed: invalid X-Learner-ID format", "learner_id", learnerIDStr)
				appErr := model.NewAppError("UNAUTHORIZED", "X-Learner-IDの形式が正しくありません。", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			if err := authenticator.Authenticate(r.Context(), learnerID); err != nil {
				logger.Warn("Learner auth failed: unknown learner", "learner_id", learnerID.String(), "error", err)
				appErr := model.NewAppError("UNAUTHORIZED", "学習者が見つかりません。", "", model.ErrLearnerNotFound)
				webutil.HandleError(w, logger, appErr)
				return
			}

			ctx := context.WithValue(r.Context(), model.LearnerIDKey, learnerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetLearnerIDFromContext はコンテキストから学習者IDを取得します。
func GetLearnerIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.LearnerIDKey).(uuid.UUID)
	if !ok {
		// ミドルウェアが正しく適用されていない場合の内部エラー
		return uuid.Nil, model.NewAppError("INTERNAL_SERVER_ERROR", "コンテキストから学習者情報を取得できませんでした。", "", model.ErrInternalServer)
	}
	return value, nil
}
