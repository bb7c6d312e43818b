// internal/service/quiz_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"math/rand"
	"strconv"

	"wordify/internal/config"
	"wordify/internal/middleware"
	"wordify/internal/model"
	"wordify/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizService interface {
	GenerateQuiz(ctx context.Context, userID uuid.UUID, req *model.GenerateQuizRequest) (*model.GenerateQuizResponse, error)
	SubmitQuiz(ctx context.Context, userID uuid.UUID, req *model.SubmitQuizRequest) (*model.QuizSessionResponse, error)
	GetHistory(ctx context.Context, userID uuid.UUID) ([]*model.QuizSessionResponse, error)
	GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*model.QuizSessionResponse, error)
	GetStats(ctx context.Context, userID uuid.UUID) (*model.QuizStatsResponse, error)
}

type quizService struct {
	db        *gorm.DB
	quizRepo  repository.QuizRepository
	topicRepo repository.TopicRepository
	vocabRepo repository.VocabularyRepository
	progRepo  repository.ProgressRepository
	userRepo  repository.UserRepository
	cfg       *config.Config
}

func NewQuizService(
	db *gorm.DB,
	quizRepo repository.QuizRepository,
	topicRepo repository.TopicRepository,
	vocabRepo repository.VocabularyRepository,
	progRepo repository.ProgressRepository,
	userRepo repository.UserRepository,
	cfg *config.Config,
) QuizService {
	return &quizService{
		db:        db,
		quizRepo:  quizRepo,
		topicRepo: topicRepo,
		vocabRepo: vocabRepo,
		progRepo:  progRepo,
		userRepo:  userRepo,
		cfg:       cfg,
	}
}

// GenerateQuiz はトピック内の単語から4択クイズを生成します。
// 読み取り専用で、セッションや進捗はまだ作成しない
func (s *quizService) GenerateQuiz(ctx context.Context, userID uuid.UUID, req *model.GenerateQuizRequest) (*model.GenerateQuizResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "topic_id", req.TopicID)

	if _, err := s.topicRepo.FindByID(ctx, s.db, req.TopicID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "指定されたトピックが見つかりません。", "topic_id", model.ErrNotFound)
		}
		logger.Error("Error finding topic", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	vocabularies, err := s.vocabRepo.FindByTopic(ctx, s.db, req.TopicID)
	if err != nil {
		logger.Error("Error finding vocabularies for quiz", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	if len(vocabularies) == 0 {
		return nil, model.NewAppError("EMPTY_TOPIC", "このトピックには単語が登録されていません。", "topic_id", model.ErrInvalidInput)
	}

	// 出題数は登録単語数まで。重複出題はしない
	count := req.QuestionCount
	if count <= 0 {
		count = s.cfg.App.DefaultQuestionCount
	}
	if count > len(vocabularies) {
		count = len(vocabularies)
	}

	questions := buildQuestions(vocabularies, count, s.cfg.App.MaxDistractors)

	logger.Info("Quiz generated", "question_count", len(questions))
	return &model.GenerateQuizResponse{Questions: questions}, nil
}

// buildQuestions は単語一覧から count 問の4択を組み立てます。
// 出題単語は非復元抽出。誤答は同一トピックの他の単語から最大 maxDistractors 件選ぶ。
// 単語はトピック内で一意なので選択肢が重複することはない
func buildQuestions(vocabularies []*model.Vocabulary, count, maxDistractors int) []model.QuizQuestion {
	picked := rand.Perm(len(vocabularies))[:count]

	questions := make([]model.QuizQuestion, 0, count)
	for i, idx := range picked {
		v := vocabularies[idx]

		options := []string{v.Word}
		for _, j := range rand.Perm(len(vocabularies)) {
			if len(options) > maxDistractors {
				break
			}
			other := vocabularies[j]
			if other.VocabularyID == v.VocabularyID {
				continue
			}
			options = append(options, other.Word)
		}
		rand.Shuffle(len(options), func(a, b int) {
			options[a], options[b] = options[b], options[a]
		})

		questions = append(questions, model.QuizQuestion{
			ID: "q" + strconv.Itoa(i+1),
			Vocabulary: model.QuizVocabulary{
				VocabularyID:  v.VocabularyID,
				Word:          v.Word,
				Pronunciation: v.Pronunciation,
				Meaning:       v.Meaning,
				Example:       v.Example,
				Difficulty:    v.Difficulty,
			},
			Options:       options,
			CorrectAnswer: v.Word,
		})
	}
	return questions
}

// SubmitQuiz は回答済みクイズを採点・保存し、単語ごとの進捗とユーザー統計を更新します。
// 進捗更新は単語単位で独立しており、解決できない単語IDはスキップする
func (s *quizService) SubmitQuiz(ctx context.Context, userID uuid.UUID, req *model.SubmitQuizRequest) (*model.QuizSessionResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "topic_id", req.TopicID)

	topic, err := s.topicRepo.FindByID(ctx, s.db, req.TopicID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "指定されたトピックが見つかりません。", "topic_id", model.ErrNotFound)
		}
		logger.Error("Error finding topic", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	// 採点。各設問の正誤フラグを集計する（user_answer 無しの提出も許容する）
	correct := 0
	for i := range req.Questions {
		if req.Questions[i].IsCorrect {
			correct++
		}
	}
	total := len(req.Questions)
	accuracy := float64(correct) / float64(total) * 100
	score := int(math.Round(accuracy))

	questionsData, err := json.Marshal(req.Questions)
	if err != nil {
		logger.Error("Failed to marshal questions payload", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "クイズ結果の保存に失敗しました。", "", err)
	}

	session := &model.QuizSession{
		SessionID:      uuid.New(),
		UserID:         userID,
		TopicID:        req.TopicID,
		QuestionsData:  questionsData,
		Score:          score,
		TotalQuestions: total,
		TimeSpent:      req.TimeSpent,
		Accuracy:       accuracy,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.quizRepo.Create(ctx, tx, session)
	})
	if err != nil {
		logger.Error("Failed to save quiz session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "クイズ結果の保存に失敗しました。", "", err)
	}

	// セッション保存後に単語ごとの進捗を更新する。
	// 1単語の失敗で提出全体を無効にしないため、各単語を独立のトランザクションで処理する
	skipped := 0
	for i := range req.Questions {
		q := &req.Questions[i]
		if err := s.applyQuestionResult(ctx, userID, q); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				skipped++
				logger.Warn("Skipping progress update for unknown vocabulary",
					"vocabulary_id", q.Vocabulary.VocabularyID,
					"question_id", q.ID,
				)
				continue
			}
			logger.Error("Failed to update progress for question",
				"error", err,
				"vocabulary_id", q.Vocabulary.VocabularyID,
			)
		}
	}

	// 統計キャッシュは最後に一度だけ全件再計算する
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return recalculateUserStats(ctx, tx, s.userRepo, s.quizRepo, s.progRepo, userID)
	})
	if err != nil {
		logger.Error("Failed to recalculate user stats after submission", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "統計の更新に失敗しました。", "", err)
	}

	logger.Info("Quiz submitted",
		"session_id", session.SessionID,
		"score", score,
		"correct", correct,
		"total", total,
		"skipped", skipped,
	)

	session.Topic = topic
	return toQuizSessionResponse(session, req.Questions)
}

// applyQuestionResult は1問分の回答を進捗に反映します。単語が存在しなければ ErrNotFound
func (s *quizService) applyQuestionResult(ctx context.Context, userID uuid.UUID, q *model.QuizQuestion) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		vocab, err := s.vocabRepo.FindByID(ctx, tx, q.Vocabulary.VocabularyID)
		if err != nil {
			return err
		}

		progress, err := s.progRepo.FindByUserAndVocabulary(ctx, tx, userID, vocab.VocabularyID)
		if err != nil {
			if !errors.Is(err, model.ErrNotFound) {
				return err
			}
			progress = &model.UserProgress{
				ProgressID:   uuid.New(),
				UserID:       userID,
				TopicID:      vocab.TopicID,
				VocabularyID: vocab.VocabularyID,
				Status:       model.StatusNotStarted,
			}
			applyMasteryRule(progress, q.IsCorrect, s.cfg.App.MasteryAccuracy, s.cfg.App.MasteryMinAttempts)
			return s.progRepo.Create(ctx, tx, progress)
		}

		applyMasteryRule(progress, q.IsCorrect, s.cfg.App.MasteryAccuracy, s.cfg.App.MasteryMinAttempts)
		return s.progRepo.Update(ctx, tx, progress)
	})
}

func (s *quizService) GetHistory(ctx context.Context, userID uuid.UUID) ([]*model.QuizSessionResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	sessions, err := s.quizRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to find quiz sessions", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "クイズ履歴の取得に失敗しました。", "", err)
	}

	responses := make([]*model.QuizSessionResponse, 0, len(sessions))
	for _, session := range sessions {
		resp, err := toQuizSessionResponse(session, nil)
		if err != nil {
			logger.Warn("Skipping session with broken questions payload", "session_id", session.SessionID, "error", err)
			continue
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *quizService) GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*model.QuizSessionResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "session_id", sessionID)

	session, err := s.quizRepo.FindByID(ctx, s.db, userID, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "指定されたクイズセッションが見つかりません。", "session_id", model.ErrNotFound)
		}
		logger.Error("Failed to find quiz session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	resp, err := toQuizSessionResponse(session, nil)
	if err != nil {
		logger.Error("Failed to decode questions payload", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	return resp, nil
}

func (s *quizService) GetStats(ctx context.Context, userID uuid.UUID) (*model.QuizStatsResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	agg, err := s.quizRepo.AggregateByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to aggregate quiz stats", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "統計の取得に失敗しました。", "", err)
	}

	return &model.QuizStatsResponse{
		TotalQuizzes:   agg.TotalQuizzes,
		AverageScore:   math.Round(agg.AverageScore*10) / 10,
		BestScore:      agg.BestScore,
		TotalTimeSpent: agg.TotalTimeSpent,
		TopicsStudied:  agg.TopicsStudied,
	}, nil
}

// toQuizSessionResponse はセッションをレスポンスDTOへ変換します。
// questions が nil の場合は保存済みペイロードから復元する
func toQuizSessionResponse(session *model.QuizSession, questions []model.QuizQuestion) (*model.QuizSessionResponse, error) {
	if questions == nil {
		if err := json.Unmarshal(session.QuestionsData, &questions); err != nil {
			return nil, err
		}
	}

	correct := 0
	for _, q := range questions {
		if q.IsCorrect {
			correct++
		}
	}

	resp := &model.QuizSessionResponse{
		SessionID:        session.SessionID,
		TopicID:          session.TopicID,
		Questions:        questions,
		Score:            session.Score,
		TotalQuestions:   session.TotalQuestions,
		CorrectAnswers:   correct,
		IncorrectAnswers: session.TotalQuestions - correct,
		TimeSpent:        session.TimeSpent,
		Accuracy:         session.Accuracy,
		CompletedAt:      session.CompletedAt,
	}
	if session.Topic != nil {
		resp.TopicName = session.Topic.Name
		resp.TopicColor = session.Topic.Color
	}
	return resp, nil
}
