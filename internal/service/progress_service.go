// internal/service/progress_service.go
package service

import (
	"context"
	"errors"

	"wordify/internal/config"
	"wordify/internal/middleware"
	"wordify/internal/model"
	"wordify/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressService interface {
	ListProgress(ctx context.Context, userID uuid.UUID, topicID *uuid.UUID) ([]*model.ProgressResponse, error)
	UpdateProgress(ctx context.Context, userID, vocabularyID uuid.UUID, isCorrect bool) (*model.ProgressResponse, error)
	GetTopicSummary(ctx context.Context, userID, topicID uuid.UUID) (*model.TopicProgressSummaryResponse, error)
}

type progressService struct {
	db        *gorm.DB
	progRepo  repository.ProgressRepository
	vocabRepo repository.VocabularyRepository
	topicRepo repository.TopicRepository
	userRepo  repository.UserRepository
	quizRepo  repository.QuizRepository
	cfg       *config.Config
}

func NewProgressService(
	db *gorm.DB,
	progRepo repository.ProgressRepository,
	vocabRepo repository.VocabularyRepository,
	topicRepo repository.TopicRepository,
	userRepo repository.UserRepository,
	quizRepo repository.QuizRepository,
	cfg *config.Config,
) ProgressService {
	return &progressService{
		db:        db,
		progRepo:  progRepo,
		vocabRepo: vocabRepo,
		topicRepo: topicRepo,
		userRepo:  userRepo,
		quizRepo:  quizRepo,
		cfg:       cfg,
	}
}

func (s *progressService) ListProgress(ctx context.Context, userID uuid.UUID, topicID *uuid.UUID) ([]*model.ProgressResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	progresses, err := s.progRepo.FindByUser(ctx, s.db, userID, topicID)
	if err != nil {
		logger.Error("Failed to find progresses from repository", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学習進捗の取得に失敗しました。", "", err)
	}

	responses := make([]*model.ProgressResponse, 0, len(progresses))
	for _, p := range progresses {
		if p.Vocabulary == nil || p.Topic == nil {
			logger.Warn("Found progress with missing relations, skipping", "progress_id", p.ProgressID)
			continue
		}
		responses = append(responses, toProgressResponse(p, p.Vocabulary, p.Topic))
	}
	return responses, nil
}

// UpdateProgress は1単語分の回答結果を進捗に反映し、ユーザー統計を再計算します
func (s *progressService) UpdateProgress(ctx context.Context, userID, vocabularyID uuid.UUID, isCorrect bool) (*model.ProgressResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "vocabulary_id", vocabularyID)

	vocab, err := s.vocabRepo.FindByID(ctx, s.db, vocabularyID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "指定された単語が見つかりません。", "vocabulary_id", model.ErrNotFound)
		}
		logger.Error("Error finding vocabulary", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	var updated *model.UserProgress
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		progress, err := s.applyAnswer(ctx, tx, userID, vocab, isCorrect)
		if err != nil {
			return err
		}
		updated = progress

		return recalculateUserStats(ctx, tx, s.userRepo, s.quizRepo, s.progRepo, userID)
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Transaction failed for UpdateProgress", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学習進捗の更新に失敗しました。", "", err)
	}

	topic := vocab.Topic
	if topic == nil {
		// Preload漏れ時のフォールバック
		topic, err = s.topicRepo.FindByID(ctx, s.db, vocab.TopicID)
		if err != nil {
			logger.Error("Error finding topic for progress response", "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}
	}

	logger.Info("Progress updated",
		"status", string(updated.Status),
		"correct_count", updated.CorrectCount,
		"total_attempts", updated.TotalAttempts,
	)
	return toProgressResponse(updated, vocab, topic), nil
}

// applyAnswer は (user, vocabulary) の進捗レコードを取得または作成し、
// 回答結果を反映して保存します。トランザクション内で呼び出すこと
func (s *progressService) applyAnswer(ctx context.Context, tx *gorm.DB, userID uuid.UUID, vocab *model.Vocabulary, isCorrect bool) (*model.UserProgress, error) {
	logger := middleware.GetLogger(ctx)

	progress, err := s.progRepo.FindByUserAndVocabulary(ctx, tx, userID, vocab.VocabularyID)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		logger.Error("Error finding progress in transaction", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学習進捗の確認中にエラーが発生しました。", "", err)
	}

	if errors.Is(err, model.ErrNotFound) {
		progress = &model.UserProgress{
			ProgressID:   uuid.New(),
			UserID:       userID,
			TopicID:      vocab.TopicID,
			VocabularyID: vocab.VocabularyID,
			Status:       model.StatusNotStarted,
		}
		applyMasteryRule(progress, isCorrect, s.cfg.App.MasteryAccuracy, s.cfg.App.MasteryMinAttempts)
		if createErr := s.progRepo.Create(ctx, tx, progress); createErr != nil {
			logger.Error("Error creating new progress", "error", createErr)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学習進捗の作成に失敗しました。", "", createErr)
		}
		return progress, nil
	}

	applyMasteryRule(progress, isCorrect, s.cfg.App.MasteryAccuracy, s.cfg.App.MasteryMinAttempts)
	if updateErr := s.progRepo.Update(ctx, tx, progress); updateErr != nil {
		logger.Error("Error updating existing progress", "error", updateErr)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学習進捗の更新に失敗しました。", "", updateErr)
	}
	return progress, nil
}

// applyMasteryRule は回答結果をカウンタに反映し、ステータスを判定し直します。
// 判定は毎回カウンタから導出する。一度でも回答があれば not_started には戻らない
func applyMasteryRule(p *model.UserProgress, isCorrect bool, accuracyThreshold float64, minAttempts int) {
	p.TotalAttempts++
	if isCorrect {
		p.CorrectCount++
	}

	switch {
	case p.Accuracy() >= accuracyThreshold && p.TotalAttempts >= minAttempts:
		p.Status = model.StatusMastered
	case p.TotalAttempts > 0:
		p.Status = model.StatusLearning
	}
}

// GetTopicSummary はトピック単位の習熟サマリを返します
func (s *progressService) GetTopicSummary(ctx context.Context, userID, topicID uuid.UUID) (*model.TopicProgressSummaryResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "topic_id", topicID)

	topic, err := s.topicRepo.FindByID(ctx, s.db, topicID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "指定されたトピックが見つかりません。", "topic_id", model.ErrNotFound)
		}
		logger.Error("Error finding topic", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	totalVocabulary, err := s.vocabRepo.CountByTopic(ctx, s.db, topicID)
	if err != nil {
		logger.Error("Error counting vocabulary", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	mastered, err := s.progRepo.CountByUserTopicAndStatus(ctx, s.db, userID, topicID, model.StatusMastered)
	if err != nil {
		logger.Error("Error counting mastered progress", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	learning, err := s.progRepo.CountByUserTopicAndStatus(ctx, s.db, userID, topicID, model.StatusLearning)
	if err != nil {
		logger.Error("Error counting learning progress", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	// 進捗レコードが無い（まだ一度も出題されていない）単語も not_started に含める
	notStarted := totalVocabulary - mastered - learning
	if notStarted < 0 {
		notStarted = 0
	}

	completion := 0.0
	if totalVocabulary > 0 {
		completion = float64(mastered) / float64(totalVocabulary) * 100
	}

	return &model.TopicProgressSummaryResponse{
		TopicID:              topicID,
		TopicName:            topic.Name,
		TotalVocabulary:      totalVocabulary,
		Mastered:             mastered,
		Learning:             learning,
		NotStarted:           notStarted,
		CompletionPercentage: completion,
	}, nil
}

func toProgressResponse(p *model.UserProgress, vocab *model.Vocabulary, topic *model.Topic) *model.ProgressResponse {
	return &model.ProgressResponse{
		ProgressID:              p.ProgressID,
		VocabularyID:            vocab.VocabularyID,
		VocabularyWord:          vocab.Word,
		VocabularyPronunciation: vocab.Pronunciation,
		VocabularyMeaning:       vocab.Meaning,
		VocabularyExample:       vocab.Example,
		VocabularyDifficulty:    vocab.Difficulty,
		TopicID:                 topic.TopicID,
		TopicName:               topic.Name,
		TopicColor:              topic.Color,
		Status:                  p.Status,
		CorrectCount:            p.CorrectCount,
		TotalAttempts:           p.TotalAttempts,
		Accuracy:                p.Accuracy(),
		LastStudied:             p.LastStudied,
	}
}
