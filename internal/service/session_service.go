// internal/service/session_service.go
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go_5_flash_keep/internal/config"
	"go_5_flash_keep/internal/middleware"
	"go_5_flash_keep/internal/model"
	"go_5_flash_keep/internal/repository"
	"go_5_flash_keep/internal/session"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionService interface {
	StartSession(ctx context.Context, learnerID uuid.UUID, req *model.StartSessionRequest) (*model.SessionResponse, error)
	SubmitGrade(ctx context.Context, learnerID, sessionID uuid.UUID, req *model.GradeRequest) (*model.SessionResponse, error)
	GetSession(ctx context.Context, learnerID, sessionID uuid.UUID) (*model.SessionResponse, error)
}

// activeSession はレジストリに登録された進行中（または完了済み）のセッションです。
// コントローラ自体は並行呼び出しに対応しないため、セッション単位のミューテックスで
// 直列化します。別セッション同士は独立して並行実行できます。
type activeSession struct {
	mu         sync.Mutex
	learnerID  uuid.UUID
	controller *session.Controller
	// 完了時刻。sessionServiceのミューテックス保護下で読み書きする。
	// ゼロ値は進行中を意味する。
	completedAt time.Time
}

// 完了済みセッションを照会可能なまま残しておく期間。
// これを過ぎたセッションはlookup時に破棄され、NOT_FOUNDになる。
const completedSessionTTL = time.Hour

type sessionService struct {
	db       *gorm.DB
	cardRepo repository.CardRepository
	cfg      *config.Config

	mu sync.Mutex
	// 完了済みセッションも、照会とSESSION_COMPLETED応答のためにしばらく残す。
	// completedSessionTTLを過ぎたものはlookup時に掃除される。
	sessions map[uuid.UUID]*activeSession

	now func() time.Time // テストで差し替える
}

func NewSessionService(db *gorm.DB, cardRepo repository.CardRepository, cfg *config.Config) SessionService {
	return &sessionService{
		db:       db,
		cardRepo: cardRepo,
		cfg:      cfg,
		sessions: make(map[uuid.UUID]*activeSession),
		now:      time.Now,
	}
}

// gormCardStore はコントローラのStore境界をGORMリポジトリにつなぐアダプタです。
type gormCardStore struct {
	db   *gorm.DB
	repo repository.CardRepository
}

func (s *gormCardStore) FindByLearner(ctx context.Context, learnerID uuid.UUID) ([]model.ReviewCard, error) {
	return s.repo.FindByLearner(ctx, s.db, learnerID)
}

func (s *gormCardStore) Upsert(ctx context.Context, card *model.ReviewCard) error {
	return s.repo.Upsert(ctx, s.db, card)
}

// StartSession は新しい復習セッションを開始し、最初のカード（または完了状態）を返します。
// レビュー対象が1枚もない場合はセッションを登録せず、完了済みのレスポンスだけ返します。
func (s *sessionService) StartSession(ctx context.Context, learnerID uuid.UUID, req *model.StartSessionRequest) (*model.SessionResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)

	sessionCap := s.cfg.App.SessionCap
	if req != nil && req.Cap > 0 {
		sessionCap = req.Cap
	}

	ctrl := session.NewController(
		&gormCardStore{db: s.db, repo: s.cardRepo},
		session.Config{LearnerID: learnerID, Cap: sessionCap},
	)

	first, err := ctrl.Start(ctx)
	if err != nil {
		logger.Error("Failed to start review session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの開始に失敗しました。", "", err)
	}

	sessionID := uuid.New()
	if first == nil {
		// 今レビューすべきカードがない。これはエラーではなく正常な完了。
		logger.Info("Session completed immediately: nothing due")
		return buildSessionResponse(sessionID, ctrl), nil
	}

	s.mu.Lock()
	s.sessions[sessionID] = &activeSession{learnerID: learnerID, controller: ctrl}
	s.mu.Unlock()

	logger.Info("Review session started", "session_id", sessionID, "queued", ctrl.Remaining(), "cap", sessionCap)
	return buildSessionResponse(sessionID, ctrl), nil
}

// SubmitGrade は提示中のカードへのグレードを適用し、次のカード（または完了）を返します。
// 保存失敗時はキューが進まないので、同じリクエストを再送すれば同じカードに再挑戦できます。
func (s *sessionService) SubmitGrade(ctx context.Context, learnerID, sessionID uuid.UUID, req *model.GradeRequest) (*model.SessionResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "session_id", sessionID)

	quality, err := model.ParseQuality(req.Quality)
	if err != nil {
		return nil, model.NewAppError("INVALID_QUALITY", "品質グレードが不正です。", "quality", model.ErrInvalidInput)
	}

	active, err := s.lookup(learnerID, sessionID)
	if err != nil {
		return nil, err
	}

	active.mu.Lock()
	defer active.mu.Unlock()

	if _, err := active.controller.SubmitGrade(ctx, quality); err != nil {
		switch {
		case errors.Is(err, model.ErrSessionCompleted):
			return nil, model.NewAppError("SESSION_COMPLETED", "このセッションは既に完了しています。", "", model.ErrSessionCompleted)
		case errors.Is(err, model.ErrPersistenceFailed):
			logger.Warn("Card update could not be persisted, same card will be re-presented", "error", err)
			return nil, model.NewAppError("PERSISTENCE_FAILED", "回答を保存できませんでした。もう一度お試しください。", "", model.ErrPersistenceFailed)
		case errors.Is(err, model.ErrInvalidCardState):
			// データ破損。黙って直さずに調査用のログを残して返す。
			logger.Error("Card state violates invariants", "error", err)
			return nil, model.NewAppError("INVALID_CARD_STATE", "カードの状態が不正です。", "", err)
		default:
			logger.Error("Failed to apply grade", "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "グレードの適用に失敗しました。", "", err)
		}
	}

	if active.controller.State() == session.StateCompleted {
		s.mu.Lock()
		active.completedAt = s.now()
		s.mu.Unlock()
	}

	logger.Info("Grade applied", "quality", quality.String(), "remaining", active.controller.Remaining())
	return buildSessionResponse(sessionID, active.controller), nil
}

func (s *sessionService) GetSession(ctx context.Context, learnerID, sessionID uuid.UUID) (*model.SessionResponse, error) {
	active, err := s.lookup(learnerID, sessionID)
	if err != nil {
		return nil, err
	}

	active.mu.Lock()
	defer active.mu.Unlock()
	return buildSessionResponse(sessionID, active.controller), nil
}

func (s *sessionService) lookup(learnerID, sessionID uuid.UUID) (*activeSession, error) {
	s.mu.Lock()
	s.evictExpiredLocked()
	active, ok := s.sessions[sessionID]
	s.mu.Unlock()

	if !ok {
		return nil, model.NewAppError("NOT_FOUND", "セッションが見つかりません。", "", model.ErrNotFound)
	}
	if active.learnerID != learnerID {
		// 他の学習者のセッションには触らせない
		return nil, model.NewAppError("FORBIDDEN", "このセッションへのアクセス権がありません。", "", model.ErrForbidden)
	}
	return active, nil
}

// evictExpiredLocked は保持期限を過ぎた完了済みセッションをレジストリから外します。
// 呼び出し側がs.muを保持していること。
func (s *sessionService) evictExpiredLocked() {
	deadline := s.now().Add(-completedSessionTTL)
	for id, active := range s.sessions {
		if !active.completedAt.IsZero() && active.completedAt.Before(deadline) {
			delete(s.sessions, id)
		}
	}
}

func buildSessionResponse(sessionID uuid.UUID, ctrl *session.Controller) *model.SessionResponse {
	resp := &model.SessionResponse{
		SessionID: sessionID,
		State:     ctrl.State().String(),
		Current:   ctrl.Current(),
		Remaining: ctrl.Remaining(),
	}

	summary := ctrl.Summary()
	resp.Reviewed = summary.Reviewed
	resp.Lapsed = summary.Lapsed
	if ctrl.State() == session.StateCompleted {
		resp.DurationMS = summary.Duration.Milliseconds()
	}
	return resp
}
