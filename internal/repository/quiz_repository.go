//go:generate mockery --name QuizRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"wordify/internal/middleware"
	"wordify/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuizAggregates はユーザー1人分のセッション集計値
type QuizAggregates struct {
	TotalQuizzes   int64
	AverageScore   float64
	BestScore      int
	TotalTimeSpent int64
	TopicsStudied  int64
}

type QuizRepository interface {
	Create(ctx context.Context, tx *gorm.DB, session *model.QuizSession) error
	FindByID(ctx context.Context, db *gorm.DB, userID, sessionID uuid.UUID) (*model.QuizSession, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.QuizSession, error)
	CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
	AverageScoreByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (float64, error)
	AggregateByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*QuizAggregates, error)
}

type gormQuizRepository struct{}

func NewGormQuizRepository() QuizRepository {
	return &gormQuizRepository{}
}

func (r *gormQuizRepository) Create(ctx context.Context, tx *gorm.DB, session *model.QuizSession) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(session)
	if result.Error != nil {
		logger.Error("Error creating quiz session in DB",
			"error", result.Error,
			"topic_id", session.TopicID.String(),
		)
		return fmt.Errorf("gormQuizRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormQuizRepository) FindByID(ctx context.Context, db *gorm.DB, userID, sessionID uuid.UUID) (*model.QuizSession, error) {
	var session model.QuizSession
	// 他ユーザーのセッションは存在しないのと同じ扱いにする
	result := db.WithContext(ctx).
		Preload("Topic").
		Where("user_id = ? AND session_id = ?", userID, sessionID).
		First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormQuizRepository.FindByID: %w", result.Error)
	}
	return &session, nil
}

func (r *gormQuizRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.QuizSession, error) {
	logger := middleware.GetLogger(ctx)
	var sessions []*model.QuizSession
	result := db.WithContext(ctx).
		Preload("Topic").
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&sessions)
	if result.Error != nil {
		logger.Error("Error finding quiz sessions by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormQuizRepository.FindByUser: %w", result.Error)
	}
	return sessions, nil
}

func (r *gormQuizRepository) CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.QuizSession{}).Where("user_id = ?", userID).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormQuizRepository.CountByUser: %w", result.Error)
	}
	return count, nil
}

func (r *gormQuizRepository) AverageScoreByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (float64, error) {
	var avg float64
	result := db.WithContext(ctx).Model(&model.QuizSession{}).
		Select("COALESCE(AVG(score), 0)").
		Where("user_id = ?", userID).
		Scan(&avg)
	if result.Error != nil {
		return 0, fmt.Errorf("gormQuizRepository.AverageScoreByUser: %w", result.Error)
	}
	return avg, nil
}

func (r *gormQuizRepository) AggregateByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*QuizAggregates, error) {
	var agg QuizAggregates
	result := db.WithContext(ctx).Model(&model.QuizSession{}).
		Select(
			"COUNT(*) AS total_quizzes, " +
				"COALESCE(AVG(score), 0) AS average_score, " +
				"COALESCE(MAX(score), 0) AS best_score, " +
				"COALESCE(SUM(time_spent), 0) AS total_time_spent, " +
				"COUNT(DISTINCT topic_id) AS topics_studied",
		).
		Where("user_id = ?", userID).
		Scan(&agg)
	if result.Error != nil {
		return nil, fmt.Errorf("gormQuizRepository.AggregateByUser: %w", result.Error)
	}
	return &agg, nil
}
