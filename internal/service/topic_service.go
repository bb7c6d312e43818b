// internal/service/topic_service.go
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

type TopicService interface {
	CreateTopic(ctx context.Context, req *model.PostTopicRequest) (*model.Topic, error)
	GetTopic(ctx context.Context, topicID uuid.UUID) (*model.Topic, error)
	ListTopics(ctx context.Context) ([]*model.Topic, error)
	UpdateTopic(ctx context.Context, topicID uuid.UUID, req *model.PatchTopicRequest) (*model.Topic, error)
	DeleteTopic(ctx context.Context, topicID uuid.UUID) error
}

type topicService struct {
	db        *gorm.DB
	topicRepo repository.TopicRepository
}

func NewTopicService(db *gorm.DB, topicRepo repository.TopicRepository) TopicService {
	return &topicService{
		db:        db,
		topicRepo: topicRepo,
	}
}

// CreateTopic は新しいトピックを作成します。名前は全体で一意
func (s *topicService) CreateTopic(ctx context.Context, req *model.PostTopicRequest) (*model.Topic, error) {
	logger := middleware.GetLogger(ctx)
	var newTopic *model.Topic

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.topicRepo.CheckNameExists(ctx, tx, req.Name, nil)
		if err != nil {
			logger.Error("Failed to check topic name existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}
		if exists {
			logger.Warn("Topic name already exists", "name", req.Name)
			return model.NewAppError("DUPLICATE_TOPIC_NAME", "同じ名前のトピックが既に存在します。", "name", model.ErrConflict)
		}

		topic := &model.Topic{
			TopicID:     uuid.New(),
			Name:        req.Name,
			Description: req.Description,
		}
		if req.Color != "" {
			topic.Color = req.Color
		}

		if err := s.topicRepo.Create(ctx, tx, topic); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("DUPLICATE_TOPIC_NAME", "同じ名前のトピックが既に存在します。", "name", model.ErrConflict)
			}
			logger.Error("Failed to create topic in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "トピックの作成に失敗しました。", "", err)
		}
		newTopic = topic
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Topic created", "topic_id", newTopic.TopicID, "name", newTopic.Name)
	return s.topicRepo.FindByID(ctx, s.db, newTopic.TopicID)
}

func (s *topicService) GetTopic(ctx context.Context, topicID uuid.UUID) (*model.Topic, error) {
	topic, err := s.topicRepo.FindByID(ctx, s.db, topicID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "指定されたトピックが見つかりません。", "topic_id", model.ErrNotFound)
		}
		middleware.GetLogger(ctx).Error("Error finding topic", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	return topic, nil
}

func (s *topicService) ListTopics(ctx context.Context) ([]*model.Topic, error) {
	topics, err := s.topicRepo.FindAll(ctx, s.db)
	if err != nil {
		middleware.GetLogger(ctx).Error("Error finding topics", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トピック一覧の取得に失敗しました。", "", err)
	}
	return topics, nil
}

// UpdateTopic はトピックの属性を部分更新します
func (s *topicService) UpdateTopic(ctx context.Context, topicID uuid.UUID, req *model.PatchTopicRequest) (*model.Topic, error) {
	logger := middleware.GetLogger(ctx).With("topic_id", topicID)
	var updatedTopic *model.Topic

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.topicRepo.FindByID(ctx, tx, topicID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "指定されたトピックが見つかりません。", "topic_id", model.ErrNotFound)
			}
			logger.Error("Error finding topic in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		updates := make(map[string]interface{})
		if req.Name != nil {
			exists, err := s.topicRepo.CheckNameExists(ctx, tx, *req.Name, &topicID)
			if err != nil {
				logger.Error("Failed to check topic name existence", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
			}
			if exists {
				return model.NewAppError("DUPLICATE_TOPIC_NAME", "同じ名前のトピックが既に存在します。", "name", model.ErrConflict)
			}
			updates["name"] = *req.Name
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.Color != nil {
			updates["color"] = *req.Color
		}

		if err := s.topicRepo.Update(ctx, tx, topicID, updates); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("DUPLICATE_TOPIC_NAME", "同じ名前のトピックが既に存在します。", "name", model.ErrConflict)
			}
			logger.Error("Error updating topic in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "トピックの更新に失敗しました。", "", err)
		}

		var err error
		updatedTopic, err = s.topicRepo.FindByID(ctx, tx, topicID)
		if err != nil {
			logger.Error("Error fetching updated topic in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Topic updated")
	return updatedTopic, nil
}

// DeleteTopic はトピックを削除します。所属する単語・進捗・セッションはDBのカスケードで消える
func (s *topicService) DeleteTopic(ctx context.Context, topicID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("topic_id", topicID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.topicRepo.Delete(ctx, tx, topicID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("NOT_FOUND", "指定されたトピックが見つかりません。", "topic_id", model.ErrNotFound)
		}
		logger.Error("Error deleting topic", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "トピックの削除に失敗しました。", "", err)
	}

	logger.Info("Topic deleted")
	return nil
}
