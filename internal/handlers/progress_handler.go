// internal/handlers/progress_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"wordify/internal/middleware"
	"wordify/internal/model"
	"wordify/internal/service"
	"wordify/internal/webutil"

	"github.com/google/uuid"
)

type ProgressHandler struct {
	service service.ProgressService
	logger  *slog.Logger
}

func NewProgressHandler(s service.ProgressService, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{
		service: s,
		logger:  logger.With("handler", "ProgressHandler"),
	}
}

// GetProgress は GET /api/v1/progress に対応します。
// クエリパラメータ topic_id で絞り込める
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var topicID *uuid.UUID
	if raw := r.URL.Query().Get("topic_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			webutil.HandleError(w, logger, model.NewAppError("INVALID_QUERY_PARAM", "topic_idの形式が正しくありません。", "topic_id", model.ErrInvalidInput))
			return
		}
		topicID = &parsed
	}

	progresses, err := h.service.ListProgress(r.Context(), userID, topicID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, progresses, logger)
}

// PutProgress は PUT /api/v1/progress/{vocabularyID} に対応します。
// 1単語分の回答結果を進捗に反映する
func (h *ProgressHandler) PutProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	vocabularyID, err := parseUUIDParam(r, "vocabularyID")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.UpdateProgressRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode progress request body", "error", err)
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput))
		return
	}

	if err := webutil.ValidateStruct(&req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	progress, err := h.service.UpdateProgress(r.Context(), userID, vocabularyID, *req.IsCorrect)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}

// GetTopicSummary は GET /api/v1/progress/topics/{topicID} に対応します
func (h *ProgressHandler) GetTopicSummary(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	topicID, err := parseUUIDParam(r, "topicID")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	summary, err := h.service.GetTopicSummary(r.Context(), userID, topicID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, summary, logger)
}
