//go:generate mockery --name VocabularyRepository --output ./mocks --outpkg mocks --case=underscore
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

type VocabularyRepository interface {
	Create(ctx context.Context, tx *gorm.DB, vocab *model.Vocabulary) error
	FindByID(ctx context.Context, db *gorm.DB, vocabularyID uuid.UUID) (*model.Vocabulary, error)
	Find(ctx context.Context, db *gorm.DB, filter model.VocabularyFilter) ([]*model.Vocabulary, error)
	FindByTopic(ctx context.Context, db *gorm.DB, topicID uuid.UUID) ([]*model.Vocabulary, error)
	Update(ctx context.Context, tx *gorm.DB, vocabularyID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, vocabularyID uuid.UUID) error
	CheckWordExists(ctx context.Context, db *gorm.DB, topicID uuid.UUID, word string, excludeVocabularyID *uuid.UUID) (bool, error)
	CountByTopic(ctx context.Context, db *gorm.DB, topicID uuid.UUID) (int64, error)
}

type gormVocabularyRepository struct{}

func NewGormVocabularyRepository() VocabularyRepository {
	return &gormVocabularyRepository{}
}

func (r *gormVocabularyRepository) Create(ctx context.Context, tx *gorm.DB, vocab *model.Vocabulary) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(vocab)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		logger.Error("Error creating vocabulary in DB",
			"error", result.Error,
			"topic_id", vocab.TopicID.String(),
			"word", vocab.Word,
		)
		return fmt.Errorf("gormVocabularyRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormVocabularyRepository) FindByID(ctx context.Context, db *gorm.DB, vocabularyID uuid.UUID) (*model.Vocabulary, error) {
	var vocab model.Vocabulary
	result := db.WithContext(ctx).Preload("Topic").Where("vocabulary_id = ?", vocabularyID).First(&vocab)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormVocabularyRepository.FindByID: %w", result.Error)
	}
	return &vocab, nil
}

func (r *gormVocabularyRepository) Find(ctx context.Context, db *gorm.DB, filter model.VocabularyFilter) ([]*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx)
	var vocabs []*model.Vocabulary
	query := db.WithContext(ctx).Preload("Topic").Order("word ASC")
	if filter.TopicID != nil {
		query = query.Where("topic_id = ?", *filter.TopicID)
	}
	if filter.Difficulty != nil {
		query = query.Where("difficulty = ?", *filter.Difficulty)
	}
	result := query.Find(&vocabs)
	if result.Error != nil {
		logger.Error("Error finding vocabularies in DB", "error", result.Error)
		return nil, fmt.Errorf("gormVocabularyRepository.Find: %w", result.Error)
	}
	return vocabs, nil
}

func (r *gormVocabularyRepository) FindByTopic(ctx context.Context, db *gorm.DB, topicID uuid.UUID) ([]*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx)
	var vocabs []*model.Vocabulary
	result := db.WithContext(ctx).Where("topic_id = ?", topicID).Order("word ASC").Find(&vocabs)
	if result.Error != nil {
		logger.Error("Error finding vocabularies by topic in DB",
			"error", result.Error,
			"topic_id", topicID.String(),
		)
		return nil, fmt.Errorf("gormVocabularyRepository.FindByTopic: %w", result.Error)
	}
	return vocabs, nil
}

func (r *gormVocabularyRepository) Update(ctx context.Context, tx *gorm.DB, vocabularyID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Vocabulary{}).Where("vocabulary_id = ?", vocabularyID).Updates(updates)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		logger.Error("Error updating vocabulary in DB",
			"error", result.Error,
			"vocabulary_id", vocabularyID.String(),
		)
		return fmt.Errorf("gormVocabularyRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormVocabularyRepository) Delete(ctx context.Context, tx *gorm.DB, vocabularyID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("vocabulary_id = ?", vocabularyID).Delete(&model.Vocabulary{})
	if result.Error != nil {
		logger.Error("Error deleting vocabulary in DB",
			"error", result.Error,
			"vocabulary_id", vocabularyID.String(),
		)
		return fmt.Errorf("gormVocabularyRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormVocabularyRepository) CheckWordExists(ctx context.Context, db *gorm.DB, topicID uuid.UUID, word string, excludeVocabularyID *uuid.UUID) (bool, error) {
	var count int64
	query := db.WithContext(ctx).Model(&model.Vocabulary{}).Where("topic_id = ? AND word = ?", topicID, word)
	if excludeVocabularyID != nil {
		query = query.Where("vocabulary_id != ?", *excludeVocabularyID)
	}
	result := query.Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("gormVocabularyRepository.CheckWordExists: %w", result.Error)
	}
	return count > 0, nil
}

func (r *gormVocabularyRepository) CountByTopic(ctx context.Context, db *gorm.DB, topicID uuid.UUID) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.Vocabulary{}).Where("topic_id = ?", topicID).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormVocabularyRepository.CountByTopic: %w", result.Error)
	}
	return count, nil
}
