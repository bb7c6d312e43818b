// internal/service/vocabulary_service.go
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

type VocabularyService interface {
	CreateVocabulary(ctx context.Context, req *model.PostVocabularyRequest) (*model.Vocabulary, error)
	GetVocabulary(ctx context.Context, vocabularyID uuid.UUID) (*model.Vocabulary, error)
	ListVocabularies(ctx context.Context, filter model.VocabularyFilter) ([]*model.Vocabulary, error)
	UpdateVocabulary(ctx context.Context, vocabularyID uuid.UUID, req *model.PatchVocabularyRequest) (*model.Vocabulary, error)
	DeleteVocabulary(ctx context.Context, vocabularyID uuid.UUID) error
}

type vocabularyService struct {
	db        *gorm.DB
	vocabRepo repository.VocabularyRepository
	topicRepo repository.TopicRepository
}

func NewVocabularyService(db *gorm.DB, vocabRepo repository.VocabularyRepository, topicRepo repository.TopicRepository) VocabularyService {
	return &vocabularyService{
		db:        db,
		vocabRepo: vocabRepo,
		topicRepo: topicRepo,
	}
}

// CreateVocabulary は単語を作成し、所属トピックの件数キャッシュを更新します
func (s *vocabularyService) CreateVocabulary(ctx context.Context, req *model.PostVocabularyRequest) (*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx).With("topic_id", req.TopicID, "word", req.Word)
	var newVocab *model.Vocabulary

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.topicRepo.FindByID(ctx, tx, req.TopicID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "指定されたトピックが見つかりません。", "topic_id", model.ErrNotFound)
			}
			logger.Error("Error finding topic in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		exists, err := s.vocabRepo.CheckWordExists(ctx, tx, req.TopicID, req.Word, nil)
		if err != nil {
			logger.Error("Failed to check word existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}
		if exists {
			logger.Warn("Word already exists in topic")
			return model.NewAppError("DUPLICATE_WORD", "この単語は同じトピックに既に登録されています。", "word", model.ErrConflict)
		}

		vocab := &model.Vocabulary{
			VocabularyID:  uuid.New(),
			TopicID:       req.TopicID,
			Word:          req.Word,
			Pronunciation: req.Pronunciation,
			Meaning:       req.Meaning,
			Example:       req.Example,
			Difficulty:    req.Difficulty,
		}
		if vocab.Difficulty == "" {
			vocab.Difficulty = model.DifficultyMedium
		}

		if err := s.vocabRepo.Create(ctx, tx, vocab); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("DUPLICATE_WORD", "この単語は同じトピックに既に登録されています。", "word", model.ErrConflict)
			}
			logger.Error("Failed to create vocabulary in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の作成に失敗しました。", "", err)
		}

		if err := s.refreshTopicVocabularyCount(ctx, tx, req.TopicID); err != nil {
			return err
		}
		newVocab = vocab
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Vocabulary created", "vocabulary_id", newVocab.VocabularyID)
	return s.vocabRepo.FindByID(ctx, s.db, newVocab.VocabularyID)
}

func (s *vocabularyService) GetVocabulary(ctx context.Context, vocabularyID uuid.UUID) (*model.Vocabulary, error) {
	vocab, err := s.vocabRepo.FindByID(ctx, s.db, vocabularyID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "指定された単語が見つかりません。", "vocabulary_id", model.ErrNotFound)
		}
		middleware.GetLogger(ctx).Error("Error finding vocabulary", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	return vocab, nil
}

func (s *vocabularyService) ListVocabularies(ctx context.Context, filter model.VocabularyFilter) ([]*model.Vocabulary, error) {
	vocabs, err := s.vocabRepo.Find(ctx, s.db, filter)
	if err != nil {
		middleware.GetLogger(ctx).Error("Error finding vocabularies", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語一覧の取得に失敗しました。", "", err)
	}
	return vocabs, nil
}

// UpdateVocabulary は単語を部分更新します。
// トピックを移動した場合は移動元・移動先の両方の件数キャッシュを更新する
func (s *vocabularyService) UpdateVocabulary(ctx context.Context, vocabularyID uuid.UUID, req *model.PatchVocabularyRequest) (*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx).With("vocabulary_id", vocabularyID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.vocabRepo.FindByID(ctx, tx, vocabularyID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "指定された単語が見つかりません。", "vocabulary_id", model.ErrNotFound)
			}
			logger.Error("Error finding vocabulary in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		targetTopicID := current.TopicID
		if req.TopicID != nil && *req.TopicID != current.TopicID {
			if _, err := s.topicRepo.FindByID(ctx, tx, *req.TopicID); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return model.NewAppError("NOT_FOUND", "移動先のトピックが見つかりません。", "topic_id", model.ErrNotFound)
				}
				logger.Error("Error finding target topic in transaction", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
			}
			targetTopicID = *req.TopicID
		}

		targetWord := current.Word
		if req.Word != nil {
			targetWord = *req.Word
		}

		// (topic, word) の組み合わせが変わる場合のみ重複を確認する
		if targetTopicID != current.TopicID || targetWord != current.Word {
			exists, err := s.vocabRepo.CheckWordExists(ctx, tx, targetTopicID, targetWord, &vocabularyID)
			if err != nil {
				logger.Error("Failed to check word existence", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
			}
			if exists {
				return model.NewAppError("DUPLICATE_WORD", "この単語は同じトピックに既に登録されています。", "word", model.ErrConflict)
			}
		}

		updates := make(map[string]interface{})
		if req.TopicID != nil {
			updates["topic_id"] = *req.TopicID
		}
		if req.Word != nil {
			updates["word"] = *req.Word
		}
		if req.Pronunciation != nil {
			updates["pronunciation"] = *req.Pronunciation
		}
		if req.Meaning != nil {
			updates["meaning"] = *req.Meaning
		}
		if req.Example != nil {
			updates["example"] = *req.Example
		}
		if req.Difficulty != nil {
			updates["difficulty"] = *req.Difficulty
		}

		if err := s.vocabRepo.Update(ctx, tx, vocabularyID, updates); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("DUPLICATE_WORD", "この単語は同じトピックに既に登録されています。", "word", model.ErrConflict)
			}
			logger.Error("Error updating vocabulary in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の更新に失敗しました。", "", err)
		}

		if targetTopicID != current.TopicID {
			if err := s.refreshTopicVocabularyCount(ctx, tx, current.TopicID); err != nil {
				return err
			}
			if err := s.refreshTopicVocabularyCount(ctx, tx, targetTopicID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Vocabulary updated")
	return s.vocabRepo.FindByID(ctx, s.db, vocabularyID)
}

// DeleteVocabulary は単語を削除し、所属トピックの件数キャッシュを更新します
func (s *vocabularyService) DeleteVocabulary(ctx context.Context, vocabularyID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("vocabulary_id", vocabularyID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		vocab, err := s.vocabRepo.FindByID(ctx, tx, vocabularyID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "指定された単語が見つかりません。", "vocabulary_id", model.ErrNotFound)
			}
			logger.Error("Error finding vocabulary in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		if err := s.vocabRepo.Delete(ctx, tx, vocabularyID); err != nil {
			logger.Error("Error deleting vocabulary in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の削除に失敗しました。", "", err)
		}

		return s.refreshTopicVocabularyCount(ctx, tx, vocab.TopicID)
	})
	if err != nil {
		return err
	}

	logger.Info("Vocabulary deleted")
	return nil
}

// refreshTopicVocabularyCount はトピックの vocabulary_count を実件数から再計算して保存します。
// 差分加算はしない
func (s *vocabularyService) refreshTopicVocabularyCount(ctx context.Context, tx *gorm.DB, topicID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	count, err := s.vocabRepo.CountByTopic(ctx, tx, topicID)
	if err != nil {
		logger.Error("Failed to count vocabularies for topic cache", "error", err, "topic_id", topicID)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	if err := s.topicRepo.Update(ctx, tx, topicID, map[string]interface{}{
		"vocabulary_count": count,
	}); err != nil {
		logger.Error("Failed to update topic vocabulary count", "error", err, "topic_id", topicID)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	return nil
}
