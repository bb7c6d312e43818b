// internal/handlers/topic_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"wordify/internal/middleware"
	"wordify/internal/model"
	"wordify/internal/service"
	"wordify/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type TopicHandler struct {
	service service.TopicService
	logger  *slog.Logger
}

func NewTopicHandler(s service.TopicService, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{
		service: s,
		logger:  logger.With("handler", "TopicHandler"),
	}
}

// PostTopic は POST /api/v1/topics に対応します（管理者のみ）
func (h *TopicHandler) PostTopic(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.PostTopicRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode topic request body", "error", err)
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput))
		return
	}

	if err := webutil.ValidateStruct(&req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	topic, err := h.service.CreateTopic(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, topic, logger)
}

// GetTopics は GET /api/v1/topics に対応します
func (h *TopicHandler) GetTopics(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	topics, err := h.service.ListTopics(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, topics, logger)
}

// GetTopic は GET /api/v1/topics/{topicID} に対応します
func (h *TopicHandler) GetTopic(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	topicID, err := parseUUIDParam(r, "topicID")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	topic, err := h.service.GetTopic(r.Context(), topicID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, topic, logger)
}

// PatchTopic は PATCH /api/v1/topics/{topicID} に対応します（管理者のみ）
func (h *TopicHandler) PatchTopic(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	topicID, err := parseUUIDParam(r, "topicID")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PatchTopicRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode topic request body", "error", err)
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput))
		return
	}

	if err := webutil.ValidateStruct(&req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	topic, err := h.service.UpdateTopic(r.Context(), topicID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, topic, logger)
}

// DeleteTopic は DELETE /api/v1/topics/{topicID} に対応します（管理者のみ）
func (h *TopicHandler) DeleteTopic(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	topicID, err := parseUUIDParam(r, "topicID")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteTopic(r.Context(), topicID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseUUIDParam はURLパスパラメータをUUIDとして取り出します
func parseUUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_PATH_PARAM", "URLのIDの形式が正しくありません。", name, model.ErrInvalidInput)
	}
	return id, nil
}
