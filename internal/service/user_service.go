// internal/service/user_service.go
package service

import (
	"context"
	"errors"

	"wordify/internal/middleware"
	"wordify/internal/model"
	"wordify/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService は管理者向けのユーザー管理機能を提供します
type UserService interface {
	ListUsers(ctx context.Context, role *model.Role, status *model.UserStatus) ([]*model.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
	UpdateUserStatus(ctx context.Context, actorID, targetID uuid.UUID, action string) (*model.User, error)
	DeleteUser(ctx context.Context, actorID, targetID uuid.UUID) error
	GetUserStats(ctx context.Context) (*model.UserStatsResponse, error)
}

type userService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
}

func NewUserService(db *gorm.DB, userRepo repository.UserRepository) UserService {
	return &userService{
		db:       db,
		userRepo: userRepo,
	}
}

func (s *userService) ListUsers(ctx context.Context, role *model.Role, status *model.UserStatus) ([]*model.User, error) {
	users, err := s.userRepo.List(ctx, s.db, role, status)
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing users", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザー一覧の取得に失敗しました。", "", err)
	}
	return users, nil
}

func (s *userService) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "指定されたユーザーが見つかりません。", "user_id", model.ErrNotFound)
		}
		middleware.GetLogger(ctx).Error("Error finding user", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	return user, nil
}

// UpdateUserStatus はアカウント状態を変更します。
// 自分自身と管理者アカウントは対象にできない
func (s *userService) UpdateUserStatus(ctx context.Context, actorID, targetID uuid.UUID, action string) (*model.User, error) {
	logger := middleware.GetLogger(ctx).With("actor_id", actorID, "target_id", targetID, "action", action)

	if actorID == targetID {
		return nil, model.NewAppError("SELF_STATUS_CHANGE", "自分自身のアカウント状態は変更できません。", "user_id", model.ErrInvalidInput)
	}

	newStatus, ok := statusForAction(action)
	if !ok {
		return nil, model.NewAppError("INVALID_ACTION", "不正な操作が指定されました。", "action", model.ErrInvalidInput)
	}

	var updatedUser *model.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		target, err := s.userRepo.FindByID(ctx, tx, targetID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "指定されたユーザーが見つかりません。", "user_id", model.ErrNotFound)
			}
			logger.Error("Error finding target user in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		if target.Role == model.RoleAdmin && newStatus != model.UserStatusActive {
			return model.NewAppError("ADMIN_STATUS_CHANGE", "管理者アカウントの状態は変更できません。", "user_id", model.ErrForbidden)
		}

		if err := s.userRepo.Update(ctx, tx, targetID, map[string]interface{}{
			"status": newStatus,
		}); err != nil {
			logger.Error("Error updating user status in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "アカウント状態の更新に失敗しました。", "", err)
		}

		updatedUser, err = s.userRepo.FindByID(ctx, tx, targetID)
		if err != nil {
			logger.Error("Error fetching updated user in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("User status updated", "new_status", string(updatedUser.Status))
	return updatedUser, nil
}

func statusForAction(action string) (model.UserStatus, bool) {
	switch action {
	case "activate":
		return model.UserStatusActive, true
	case "suspend":
		return model.UserStatusSuspended, true
	case "ban":
		return model.UserStatusBanned, true
	default:
		return "", false
	}
}

// DeleteUser はユーザーを削除します。自分自身と管理者アカウントは削除できない。
// 進捗・セッションはDBのカスケードで消える
func (s *userService) DeleteUser(ctx context.Context, actorID, targetID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("actor_id", actorID, "target_id", targetID)

	if actorID == targetID {
		return model.NewAppError("SELF_DELETE", "自分自身のアカウントは削除できません。", "user_id", model.ErrInvalidInput)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		target, err := s.userRepo.FindByID(ctx, tx, targetID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "指定されたユーザーが見つかりません。", "user_id", model.ErrNotFound)
			}
			logger.Error("Error finding target user in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		if target.Role == model.RoleAdmin {
			return model.NewAppError("ADMIN_DELETE", "管理者アカウントは削除できません。", "user_id", model.ErrForbidden)
		}

		if err := s.userRepo.Delete(ctx, tx, targetID); err != nil {
			logger.Error("Error deleting user in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザーの削除に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("User deleted")
	return nil
}

func (s *userService) GetUserStats(ctx context.Context) (*model.UserStatsResponse, error) {
	logger := middleware.GetLogger(ctx)

	total, err := s.userRepo.Count(ctx, s.db)
	if err != nil {
		logger.Error("Error counting users", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "統計の取得に失敗しました。", "", err)
	}

	active, err := s.userRepo.CountByStatus(ctx, s.db, model.UserStatusActive)
	if err != nil {
		logger.Error("Error counting active users", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "統計の取得に失敗しました。", "", err)
	}

	suspended, err := s.userRepo.CountByStatus(ctx, s.db, model.UserStatusSuspended)
	if err != nil {
		logger.Error("Error counting suspended users", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "統計の取得に失敗しました。", "", err)
	}

	banned, err := s.userRepo.CountByStatus(ctx, s.db, model.UserStatusBanned)
	if err != nil {
		logger.Error("Error counting banned users", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "統計の取得に失敗しました。", "", err)
	}

	admins, err := s.userRepo.CountByRole(ctx, s.db, model.RoleAdmin)
	if err != nil {
		logger.Error("Error counting admin users", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "統計の取得に失敗しました。", "", err)
	}

	return &model.UserStatsResponse{
		TotalUsers:     total,
		ActiveUsers:    active,
		SuspendedUsers: suspended,
		BannedUsers:    banned,
		AdminUsers:     admins,
		RegularUsers:   total - admins,
	}, nil
}
