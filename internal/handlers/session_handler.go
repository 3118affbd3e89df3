// internal/handlers/session_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_flash_keep/internal/middleware"
	"go_5_flash_keep/internal/model"
	"go_5_flash_keep/internal/service"
	"go_5_flash_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type SessionHandler struct {
	service service.SessionService
	logger  *slog.Logger
}

func NewSessionHandler(s service.SessionService, logger *slog.Logger) *SessionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionHandler{service: s, logger: logger}
}

// StartSession は復習セッションを開始するハンドラ。
// 最初のレビュー対象カード、または「対象なし」の完了状態を返します。
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "StartSession"))

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("learner_id", learnerID.String()))

	// ボディは省略可能（capのデフォルトは設定値）
	req := model.StartSessionRequest{}
	if r.ContentLength > 0 {
		if err := webutil.DecodeAndValidate(r, &req); err != nil {
			logger.Warn("Invalid session start request", slog.String("error", err.Error()))
			webutil.HandleError(w, logger, err)
			return
		}
	}

	resp, err := h.service.StartSession(r.Context(), learnerID, &req)
	if err != nil {
		logger.Error("Error starting session in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Session started", slog.String("session_id", resp.SessionID.String()), slog.String("state", resp.State))
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}

// SubmitGrade は提示中のカードへ品質グレードを送信するハンドラ。
// 次のカード、または完了サマリを返します。
func (h *SessionHandler) SubmitGrade(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SubmitGrade"))

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("learner_id", learnerID.String()))

	sessionID, err := uuid.Parse(chi.URLParam(r, "session_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_SESSION_ID", "セッションIDの形式が正しくありません。", "session_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.GradeRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid grade request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.SubmitGrade(r.Context(), learnerID, sessionID, &req)
	if err != nil {
		logger.Error("Error submitting grade in service", slog.Any("error", err), slog.String("session_id", sessionID.String()))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetSession はセッションの現在状態を返すハンドラ
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSession"))

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	sessionID, err := uuid.Parse(chi.URLParam(r, "session_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_SESSION_ID", "セッションIDの形式が正しくありません。", "session_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	resp, err := h.service.GetSession(r.Context(), learnerID, sessionID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
