//go:generate mockery --name TopicRepository --output ./mocks --outpkg mocks --case=underscore
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

type TopicRepository interface {
	Create(ctx context.Context, tx *gorm.DB, topic *model.Topic) error
	FindByID(ctx context.Context, db *gorm.DB, topicID uuid.UUID) (*model.Topic, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Topic, error)
	Update(ctx context.Context, tx *gorm.DB, topicID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, topicID uuid.UUID) error
	CheckNameExists(ctx context.Context, db *gorm.DB, name string, excludeTopicID *uuid.UUID) (bool, error)
}

type gormTopicRepository struct{}

func NewGormTopicRepository() TopicRepository {
	return &gormTopicRepository{}
}

func (r *gormTopicRepository) Create(ctx context.Context, tx *gorm.DB, topic *model.Topic) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(topic)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		logger.Error("Error creating topic in DB",
			"error", result.Error,
			"name", topic.Name,
		)
		return fmt.Errorf("gormTopicRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormTopicRepository) FindByID(ctx context.Context, db *gorm.DB, topicID uuid.UUID) (*model.Topic, error) {
	var topic model.Topic
	result := db.WithContext(ctx).Where("topic_id = ?", topicID).First(&topic)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormTopicRepository.FindByID: %w", result.Error)
	}
	return &topic, nil
}

func (r *gormTopicRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Topic, error) {
	logger := middleware.GetLogger(ctx)
	var topics []*model.Topic
	result := db.WithContext(ctx).Order("name ASC").Find(&topics)
	if result.Error != nil {
		logger.Error("Error finding topics in DB", "error", result.Error)
		return nil, fmt.Errorf("gormTopicRepository.FindAll: %w", result.Error)
	}
	return topics, nil
}

func (r *gormTopicRepository) Update(ctx context.Context, tx *gorm.DB, topicID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Topic{}).Where("topic_id = ?", topicID).Updates(updates)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		logger.Error("Error updating topic in DB",
			"error", result.Error,
			"topic_id", topicID.String(),
		)
		return fmt.Errorf("gormTopicRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormTopicRepository) Delete(ctx context.Context, tx *gorm.DB, topicID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("topic_id = ?", topicID).Delete(&model.Topic{})
	if result.Error != nil {
		logger.Error("Error deleting topic in DB",
			"error", result.Error,
			"topic_id", topicID.String(),
		)
		return fmt.Errorf("gormTopicRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormTopicRepository) CheckNameExists(ctx context.Context, db *gorm.DB, name string, excludeTopicID *uuid.UUID) (bool, error) {
	var count int64
	query := db.WithContext(ctx).Model(&model.Topic{}).Where("name = ?", name)
	if excludeTopicID != nil {
		query = query.Where("topic_id != ?", *excludeTopicID)
	}
	result := query.Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("gormTopicRepository.CheckNameExists: %w", result.Error)
	}
	return count > 0, nil
}
