// internal/handlers/learner_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_flash_keep/internal/model"
	"go_5_flash_keep/internal/service"
	"go_5_flash_keep/internal/webutil"
)

type LearnerHandler struct {
	service service.LearnerService
	logger  *slog.Logger
}

func NewLearnerHandler(s service.LearnerService, logger *slog.Logger) *LearnerHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LearnerHandler{service: s, logger: logger}
}

// RegisterLearner は学習者を新規登録するハンドラ（認証不要）
func (h *LearnerHandler) RegisterLearner(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "RegisterLearner"))

	var req model.RegisterLearnerRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid register request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	learner, err := h.service.RegisterLearner(r.Context(), &req)
	if err != nil {
		logger.Error("Error registering learner in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Learner registered successfully", slog.String("learner_id", learner.LearnerID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, learner, logger)
}
