// internal/handlers/user_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wordify/internal/handlers"
	"wordify/internal/middleware"
	"wordify/internal/model"
	"wordify/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupUserRouter(t *testing.T, actorID uuid.UUID, role model.Role) (*mocks.UserService, *chi.Mux) {
	t.Helper()

	mockService := mocks.NewUserService(t)
	handler := handlers.NewUserHandler(mockService, testLogger())

	router := chi.NewRouter()
	router.Use(withTestUser(actorID, role))
	router.Route("/api/v1/users", func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/", handler.GetUsers)
		r.Get("/stats", handler.GetUserStats)
		r.Get("/{userID}", handler.GetUser)
		r.Post("/{userID}/status", handler.PostUserStatus)
		r.Delete("/{userID}", handler.DeleteUser)
	})
	return mockService, router
}

func TestUserHandler_GetUsers(t *testing.T) {
	actorID := uuid.New()

	t.Run("正常系: 全ユーザーの取得", func(t *testing.T) {
		mockService, router := setupUserRouter(t, actorID, model.RoleAdmin)
		mockService.On("ListUsers", mock.Anything, (*model.Role)(nil), (*model.UserStatus)(nil)).
			Return([]*model.User{
				{UserID: uuid.New(), Username: "taro", Role: model.RoleUser, Status: model.UserStatusActive},
				{UserID: uuid.New(), Username: "admin", Role: model.RoleAdmin, Status: model.UserStatusActive},
			}, nil).Once()

		req := createRequest(t, http.MethodGet, "/api/v1/users/", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var got []*model.User
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Len(t, got, 2)
	})

	t.Run("正常系: roleとstatusで絞り込み", func(t *testing.T) {
		mockService, router := setupUserRouter(t, actorID, model.RoleAdmin)
		role := model.RoleUser
		status := model.UserStatusSuspended
		mockService.On("ListUsers", mock.Anything, &role, &status).
			Return([]*model.User{}, nil).Once()

		req := createRequest(t, http.MethodGet, "/api/v1/users/?role=user&status=suspended", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("異常系: roleに不正な値", func(t *testing.T) {
		_, router := setupUserRouter(t, actorID, model.RoleAdmin)

		req := createRequest(t, http.MethodGet, "/api/v1/users/?role=superuser", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		errResp := decodeErrorResponse(t, rr)
		assert.Equal(t, "INVALID_QUERY_PARAM", errResp.Error.Code)
	})

	t.Run("異常系: statusに不正な値", func(t *testing.T) {
		_, router := setupUserRouter(t, actorID, model.RoleAdmin)

		req := createRequest(t, http.MethodGet, "/api/v1/users/?status=deleted", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("異常系: 一般ユーザーは403", func(t *testing.T) {
		_, router := setupUserRouter(t, actorID, model.RoleUser)

		req := createRequest(t, http.MethodGet, "/api/v1/users/", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestUserHandler_PostUserStatus(t *testing.T) {
	actorID := uuid.New()
	targetID := uuid.New()

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *mocks.UserService)
		expectedStatus int
	}{
		{
			name: "正常系: 凍結成功",
			body: model.UpdateUserStatusRequest{Action: "suspend"},
			setupMock: func(m *mocks.UserService) {
				m.On("UpdateUserStatus", mock.Anything, actorID, targetID, "suspend").
					Return(&model.User{UserID: targetID, Status: model.UserStatusSuspended}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: actionに不正な値",
			body:           model.UpdateUserStatusRequest{Action: "freeze"},
			setupMock:      func(m *mocks.UserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "異常系: actionが無い",
			body:           map[string]interface{}{},
			setupMock:      func(m *mocks.UserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "異常系: 自分自身の状態変更は400",
			body: model.UpdateUserStatusRequest{Action: "ban"},
			setupMock: func(m *mocks.UserService) {
				m.On("UpdateUserStatus", mock.Anything, actorID, targetID, "ban").
					Return(nil, model.NewAppError("SELF_STATUS_CHANGE", "自分自身の状態は変更できません。", "user_id", model.ErrInvalidInput)).Once()
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "異常系: 管理者アカウントへの操作は403",
			body: model.UpdateUserStatusRequest{Action: "ban"},
			setupMock: func(m *mocks.UserService) {
				m.On("UpdateUserStatus", mock.Anything, actorID, targetID, "ban").
					Return(nil, model.NewAppError("ADMIN_STATUS_CHANGE", "管理者アカウントの状態は変更できません。", "user_id", model.ErrForbidden)).Once()
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService, router := setupUserRouter(t, actorID, model.RoleAdmin)
			tc.setupMock(mockService)

			req := createRequest(t, http.MethodPost, "/api/v1/users/"+targetID.String()+"/status", tc.body)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

func TestUserHandler_DeleteUser(t *testing.T) {
	actorID := uuid.New()
	targetID := uuid.New()

	t.Run("正常系: 削除成功で204", func(t *testing.T) {
		mockService, router := setupUserRouter(t, actorID, model.RoleAdmin)
		mockService.On("DeleteUser", mock.Anything, actorID, targetID).Return(nil).Once()

		req := createRequest(t, http.MethodDelete, "/api/v1/users/"+targetID.String(), nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("異常系: 存在しないユーザーは404", func(t *testing.T) {
		mockService, router := setupUserRouter(t, actorID, model.RoleAdmin)
		mockService.On("DeleteUser", mock.Anything, actorID, targetID).
			Return(model.NewAppError("NOT_FOUND", "指定されたユーザーが見つかりません。", "user_id", model.ErrNotFound)).Once()

		req := createRequest(t, http.MethodDelete, "/api/v1/users/"+targetID.String(), nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestUserHandler_GetUserStats(t *testing.T) {
	actorID := uuid.New()

	mockService, router := setupUserRouter(t, actorID, model.RoleAdmin)
	mockService.On("GetUserStats", mock.Anything).
		Return(&model.UserStatsResponse{
			TotalUsers:     10,
			ActiveUsers:    7,
			SuspendedUsers: 2,
			BannedUsers:    1,
			AdminUsers:     2,
			RegularUsers:   8,
		}, nil).Once()

	req := createRequest(t, http.MethodGet, "/api/v1/users/stats", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var got model.UserStatsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, int64(10), got.TotalUsers)
	assert.Equal(t, int64(8), got.RegularUsers)
}
