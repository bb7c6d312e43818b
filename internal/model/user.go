// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"
)

// User はアカウントとプロフィール、学習統計のキャッシュを表します
type User struct {
	UserID       uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	Email        string     `gorm:"unique;not null" json:"email"`
	Username     string     `gorm:"unique;not null" json:"username"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         Role       `gorm:"type:varchar(10);not null;default:user" json:"role"`
	Status       UserStatus `gorm:"type:varchar(10);not null;default:active" json:"status"`
	Bio          string     `json:"bio"`
	Location     string     `json:"location"`
	Website      string     `json:"website"`
	Language     string     `gorm:"default:english" json:"language"`
	Timezone     string     `gorm:"default:UTC+0" json:"timezone"`

	// 学習統計のキャッシュ。常に QuizSession / UserProgress から再計算される
	TotalQuizzes int     `gorm:"not null;default:0" json:"total_quizzes"`
	WordsLearned int     `gorm:"not null;default:0" json:"words_learned"`
	AverageScore float64 `gorm:"not null;default:0" json:"average_score"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Name はフルネーム（空ならユーザー名）を返します
func (u *User) Name() string {
	full := u.FirstName
	if u.LastName != "" {
		if full != "" {
			full += " "
		}
		full += u.LastName
	}
	if full == "" {
		return u.Username
	}
	return full
}

type ContextKey string

const (
	UserIDKey   ContextKey = "userID"
	UserRoleKey ContextKey = "userRole"
)

// RegisterRequest は新規登録APIのリクエストボディ (DTO)
type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Username        string `json:"username" validate:"required,min=1,max=100"`
	FirstName       string `json:"first_name" validate:"required,max=100"`
	LastName        string `json:"last_name" validate:"required,max=100"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

// LoginRequest はログインAPIのリクエストボディ
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse は登録・ログイン成功時のレスポンス
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// PatchProfileRequest はプロフィール更新リクエストのDTO。
// 更新可能なのはプロフィール項目のみ（email / role / status / 統計は対象外）
type PatchProfileRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Bio       *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	Location  *string `json:"location,omitempty" validate:"omitempty,max=100"`
	Website   *string `json:"website,omitempty" validate:"omitempty,url"`
	Language  *string `json:"language,omitempty" validate:"omitempty,max=20"`
	Timezone  *string `json:"timezone,omitempty" validate:"omitempty,max=20"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

// UpdateUserStatusRequest は管理者によるアカウント状態変更のDTO
type UpdateUserStatusRequest struct {
	Action string `json:"action" validate:"required,oneof=activate suspend ban"`
}

// UserStatsResponse は管理者向けのユーザー集計レスポンス
type UserStatsResponse struct {
	TotalUsers     int64 `json:"total_users"`
	ActiveUsers    int64 `json:"active_users"`
	SuspendedUsers int64 `json:"suspended_users"`
	BannedUsers    int64 `json:"banned_users"`
	AdminUsers     int64 `json:"admin_users"`
	RegularUsers   int64 `json:"regular_users"`
}
