// internal/handlers/user_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"wordify/internal/middleware"
	"wordify/internal/model"
	"wordify/internal/service"
	"wordify/internal/webutil"
)

// UserHandler は管理者向けのユーザー管理エンドポイントを提供します
type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

func NewUserHandler(s service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service: s,
		logger:  logger.With("handler", "UserHandler"),
	}
}

// GetUsers は GET /api/v1/users に対応します。
// クエリパラメータ role / status で絞り込める
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var role *model.Role
	if raw := r.URL.Query().Get("role"); raw != "" {
		parsed := model.Role(raw)
		switch parsed {
		case model.RoleAdmin, model.RoleUser:
			role = &parsed
		default:
			webutil.HandleError(w, logger, model.NewAppError("INVALID_QUERY_PARAM", "roleに指定できない値が設定されています。", "role", model.ErrInvalidInput))
			return
		}
	}

	var status *model.UserStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed := model.UserStatus(raw)
		switch parsed {
		case model.UserStatusActive, model.UserStatusSuspended, model.UserStatusBanned:
			status = &parsed
		default:
			webutil.HandleError(w, logger, model.NewAppError("INVALID_QUERY_PARAM", "statusに指定できない値が設定されています。", "status", model.ErrInvalidInput))
			return
		}
	}

	users, err := h.service.ListUsers(r.Context(), role, status)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, users, logger)
}

// GetUser は GET /api/v1/users/{userID} に対応します
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := parseUUIDParam(r, "userID")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, user, logger)
}

// PostUserStatus は POST /api/v1/users/{userID}/status に対応します。
// action (activate / suspend / ban) に応じてアカウント状態を変更する
func (h *UserHandler) PostUserStatus(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	actorID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	targetID, err := parseUUIDParam(r, "userID")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.UpdateUserStatusRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode user status request body", "error", err)
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput))
		return
	}

	if err := webutil.ValidateStruct(&req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	user, err := h.service.UpdateUserStatus(r.Context(), actorID, targetID, req.Action)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, user, logger)
}

// DeleteUser は DELETE /api/v1/users/{userID} に対応します
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	actorID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	targetID, err := parseUUIDParam(r, "userID")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteUser(r.Context(), actorID, targetID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetUserStats は GET /api/v1/users/stats に対応します
func (h *UserHandler) GetUserStats(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	stats, err := h.service.GetUserStats(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}
