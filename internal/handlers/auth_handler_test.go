// internal/handlers/auth_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wordify/internal/handlers"
	"wordify/internal/model"
	"wordify/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	validReq := model.RegisterRequest{
		Email:           "taro@example.com",
		Username:        "taro",
		FirstName:       "Taro",
		LastName:        "Yamada",
		Password:        "password123",
		PasswordConfirm: "password123",
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *mocks.AuthService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "正常系: 登録成功で201とトークンを返す",
			body: validReq,
			setupMock: func(m *mocks.AuthService) {
				m.On("Register", mock.Anything, &validReq).
					Return(&model.AuthResponse{
						User:  &model.User{UserID: uuid.New(), Email: validReq.Email, Username: validReq.Username},
						Token: "dummy-token",
					}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "異常系: メールアドレスの形式が不正",
			body: model.RegisterRequest{
				Email:           "not-an-email",
				Username:        "taro",
				FirstName:       "Taro",
				LastName:        "Yamada",
				Password:        "password123",
				PasswordConfirm: "password123",
			},
			setupMock:      func(m *mocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name: "異常系: 確認用パスワードが不一致",
			body: model.RegisterRequest{
				Email:           "taro@example.com",
				Username:        "taro",
				FirstName:       "Taro",
				LastName:        "Yamada",
				Password:        "password123",
				PasswordConfirm: "different123",
			},
			setupMock:      func(m *mocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name: "異常系: メールアドレスの重複で409",
			body: validReq,
			setupMock: func(m *mocks.AuthService) {
				m.On("Register", mock.Anything, &validReq).
					Return(nil, model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "DUPLICATE_EMAIL",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mocks.NewAuthService(t)
			handler := handlers.NewAuthHandler(mockService, testLogger())
			router := chi.NewRouter()
			router.Post("/api/v1/auth/register", handler.Register)
			tc.setupMock(mockService)

			req := createRequest(t, http.MethodPost, "/api/v1/auth/register", tc.body)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedCode != "" {
				errResp := decodeErrorResponse(t, rr)
				assert.Equal(t, tc.expectedCode, errResp.Error.Code)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	validReq := model.LoginRequest{Email: "taro@example.com", Password: "password123"}

	t.Run("正常系: ログイン成功", func(t *testing.T) {
		mockService := mocks.NewAuthService(t)
		handler := handlers.NewAuthHandler(mockService, testLogger())
		router := chi.NewRouter()
		router.Post("/api/v1/auth/login", handler.Login)

		mockService.On("Login", mock.Anything, &validReq).
			Return(&model.AuthResponse{
				User:  &model.User{UserID: uuid.New(), Email: validReq.Email},
				Token: "dummy-token",
			}, nil).Once()

		req := createRequest(t, http.MethodPost, "/api/v1/auth/login", validReq)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp model.AuthResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "dummy-token", resp.Token)
		assert.Equal(t, validReq.Email, resp.User.Email)
	})

	t.Run("異常系: 認証失敗は400と共通メッセージ", func(t *testing.T) {
		mockService := mocks.NewAuthService(t)
		handler := handlers.NewAuthHandler(mockService, testLogger())
		router := chi.NewRouter()
		router.Post("/api/v1/auth/login", handler.Login)

		mockService.On("Login", mock.Anything, &validReq).
			Return(nil, model.NewAppError("INVALID_CREDENTIALS", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrInvalidInput)).Once()

		req := createRequest(t, http.MethodPost, "/api/v1/auth/login", validReq)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		errResp := decodeErrorResponse(t, rr)
		assert.Equal(t, "INVALID_CREDENTIALS", errResp.Error.Code)
	})

	t.Run("異常系: 凍結済みアカウントは403", func(t *testing.T) {
		mockService := mocks.NewAuthService(t)
		handler := handlers.NewAuthHandler(mockService, testLogger())
		router := chi.NewRouter()
		router.Post("/api/v1/auth/login", handler.Login)

		mockService.On("Login", mock.Anything, &validReq).
			Return(nil, model.NewAppError("ACCOUNT_NOT_ACTIVE", "このアカウントは現在利用できません。", "", model.ErrForbidden)).Once()

		req := createRequest(t, http.MethodPost, "/api/v1/auth/login", validReq)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestAuthHandler_GetProfile(t *testing.T) {
	userID := uuid.New()

	mockService := mocks.NewAuthService(t)
	handler := handlers.NewAuthHandler(mockService, testLogger())
	router := chi.NewRouter()
	router.Use(withTestUser(userID, model.RoleUser))
	router.Get("/api/v1/auth/me", handler.GetProfile)

	mockService.On("GetProfile", mock.Anything, userID).
		Return(&model.User{UserID: userID, Username: "taro", Email: "taro@example.com"}, nil).Once()

	req := createRequest(t, http.MethodGet, "/api/v1/auth/me", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var user model.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	assert.Equal(t, userID, user.UserID)
	// パスワードハッシュはレスポンスに含まれない
	assert.NotContains(t, rr.Body.String(), "password_hash")
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	userID := uuid.New()
	validReq := model.ChangePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "new-password-1",
		ConfirmPassword: "new-password-1",
	}

	t.Run("正常系: 変更成功で204", func(t *testing.T) {
		mockService := mocks.NewAuthService(t)
		handler := handlers.NewAuthHandler(mockService, testLogger())
		router := chi.NewRouter()
		router.Use(withTestUser(userID, model.RoleUser))
		router.Post("/api/v1/auth/me/password", handler.ChangePassword)

		mockService.On("ChangePassword", mock.Anything, userID, &validReq).Return(nil).Once()

		req := createRequest(t, http.MethodPost, "/api/v1/auth/me/password", validReq)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("異常系: 確認用パスワードが不一致", func(t *testing.T) {
		mockService := mocks.NewAuthService(t)
		handler := handlers.NewAuthHandler(mockService, testLogger())
		router := chi.NewRouter()
		router.Use(withTestUser(userID, model.RoleUser))
		router.Post("/api/v1/auth/me/password", handler.ChangePassword)

		req := createRequest(t, http.MethodPost, "/api/v1/auth/me/password", model.ChangePasswordRequest{
			CurrentPassword: "old-password",
			NewPassword:     "new-password-1",
			ConfirmPassword: "mismatch",
		})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
