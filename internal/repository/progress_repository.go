//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
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

type ProgressRepository interface {
	Create(ctx context.Context, tx *gorm.DB, progress *model.UserProgress) error
	FindByUserAndVocabulary(ctx context.Context, db *gorm.DB, userID, vocabularyID uuid.UUID) (*model.UserProgress, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, topicID *uuid.UUID) ([]*model.UserProgress, error)
	Update(ctx context.Context, tx *gorm.DB, progress *model.UserProgress) error
	CountByUserAndStatus(ctx context.Context, db *gorm.DB, userID uuid.UUID, status model.ProgressStatus) (int64, error)
	CountByUserTopicAndStatus(ctx context.Context, db *gorm.DB, userID, topicID uuid.UUID, status model.ProgressStatus) (int64, error)
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) Create(ctx context.Context, tx *gorm.DB, progress *model.UserProgress) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(progress)
	if result.Error != nil {
		// (user, vocabulary) の複合ユニーク制約違反は競合として返す
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		logger.Error("Error creating progress in DB",
			"error", result.Error,
			"vocabulary_id", progress.VocabularyID.String(),
		)
		return fmt.Errorf("gormProgressRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) FindByUserAndVocabulary(ctx context.Context, db *gorm.DB, userID, vocabularyID uuid.UUID) (*model.UserProgress, error) {
	var progress model.UserProgress
	result := db.WithContext(ctx).
		Preload("Vocabulary").
		Where("user_id = ? AND vocabulary_id = ?", userID, vocabularyID).
		First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormProgressRepository.FindByUserAndVocabulary: %w", result.Error)
	}
	return &progress, nil
}

func (r *gormProgressRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, topicID *uuid.UUID) ([]*model.UserProgress, error) {
	logger := middleware.GetLogger(ctx)
	var progresses []*model.UserProgress
	query := db.WithContext(ctx).
		Preload("Vocabulary").
		Preload("Topic").
		Where("user_id = ?", userID).
		Order("last_studied DESC")
	if topicID != nil {
		query = query.Where("topic_id = ?", *topicID)
	}
	result := query.Find(&progresses)
	if result.Error != nil {
		logger.Error("Error finding progresses by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormProgressRepository.FindByUser: %w", result.Error)
	}
	return progresses, nil
}

func (r *gormProgressRepository) Update(ctx context.Context, tx *gorm.DB, progress *model.UserProgress) error {
	// progress オブジェクト全体を渡して更新。呼び出し元で存在確認している想定
	result := tx.WithContext(ctx).Save(progress)
	if result.Error != nil {
		return fmt.Errorf("gormProgressRepository.Update: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) CountByUserAndStatus(ctx context.Context, db *gorm.DB, userID uuid.UUID, status model.ProgressStatus) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.UserProgress{}).
		Where("user_id = ? AND status = ?", userID, status).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormProgressRepository.CountByUserAndStatus: %w", result.Error)
	}
	return count, nil
}

func (r *gormProgressRepository) CountByUserTopicAndStatus(ctx context.Context, db *gorm.DB, userID, topicID uuid.UUID, status model.ProgressStatus) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.UserProgress{}).
		Where("user_id = ? AND topic_id = ? AND status = ?", userID, topicID, status).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormProgressRepository.CountByUserTopicAndStatus: %w", result.Error)
	}
	return count, nil
}
