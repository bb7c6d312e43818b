// internal/handlers/vocabulary_handler.go
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

type VocabularyHandler struct {
	service service.VocabularyService
	logger  *slog.Logger
}

func NewVocabularyHandler(s service.VocabularyService, logger *slog.Logger) *VocabularyHandler {
	return &VocabularyHandler{
		service: s,
		logger:  logger.With("handler", "VocabularyHandler"),
	}
}

// PostVocabulary は POST /api/v1/vocabulary に対応します（管理者のみ）
func (h *VocabularyHandler) PostVocabulary(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.PostVocabularyRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode vocabulary request body", "error", err)
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput))
		return
	}

	if err := webutil.ValidateStruct(&req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	vocab, err := h.service.CreateVocabulary(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, vocab, logger)
}

// GetVocabularies は GET /api/v1/vocabulary に対応します。
// クエリパラメータ topic_id / difficulty で絞り込める
func (h *VocabularyHandler) GetVocabularies(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var filter model.VocabularyFilter
	if raw := r.URL.Query().Get("topic_id"); raw != "" {
		topicID, err := uuid.Parse(raw)
		if err != nil {
			webutil.HandleError(w, logger, model.NewAppError("INVALID_QUERY_PARAM", "topic_idの形式が正しくありません。", "topic_id", model.ErrInvalidInput))
			return
		}
		filter.TopicID = &topicID
	}
	if raw := r.URL.Query().Get("difficulty"); raw != "" {
		difficulty := model.Difficulty(raw)
		switch difficulty {
		case model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard:
			filter.Difficulty = &difficulty
		default:
			webutil.HandleError(w, logger, model.NewAppError("INVALID_QUERY_PARAM", "difficultyに指定できない値が設定されています。", "difficulty", model.ErrInvalidInput))
			return
		}
	}

	vocabs, err := h.service.ListVocabularies(r.Context(), filter)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, vocabs, logger)
}

// GetVocabulary は GET /api/v1/vocabulary/{vocabularyID} に対応します
func (h *VocabularyHandler) GetVocabulary(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	vocabularyID, err := parseUUIDParam(r, "vocabularyID")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	vocab, err := h.service.GetVocabulary(r.Context(), vocabularyID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, vocab, logger)
}

// PatchVocabulary は PATCH /api/v1/vocabulary/{vocabularyID} に対応します（管理者のみ）
func (h *VocabularyHandler) PatchVocabulary(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	vocabularyID, err := parseUUIDParam(r, "vocabularyID")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PatchVocabularyRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode vocabulary request body", "error", err)
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput))
		return
	}

	if err := webutil.ValidateStruct(&req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	vocab, err := h.service.UpdateVocabulary(r.Context(), vocabularyID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, vocab, logger)
}

// DeleteVocabulary は DELETE /api/v1/vocabulary/{vocabularyID} に対応します（管理者のみ）
func (h *VocabularyHandler) DeleteVocabulary(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	vocabularyID, err := parseUUIDParam(r, "vocabularyID")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteVocabulary(r.Context(), vocabularyID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
