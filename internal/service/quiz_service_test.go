// internal/service/quiz_service_test.go
package service

import (
	"context"
	"testing"

	"wordify/internal/model"
	"wordify/internal/repository"
	"wordify/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makeVocabularies(topicID uuid.UUID, words ...string) []*model.Vocabulary {
	vocabs := make([]*model.Vocabulary, 0, len(words))
	for _, w := range words {
		vocabs = append(vocabs, &model.Vocabulary{
			VocabularyID: uuid.New(),
			TopicID:      topicID,
			Word:         w,
			Meaning:      w + "の意味",
			Difficulty:   model.DifficultyMedium,
		})
	}
	return vocabs
}

// --- Test buildQuestions ---
func Test_buildQuestions(t *testing.T) {
	topicID := uuid.New()

	t.Run("正常系: 指定数の問題が重複なく生成される", func(t *testing.T) {
		vocabs := makeVocabularies(topicID, "apple", "banana", "cherry", "date", "elderberry")

		questions := buildQuestions(vocabs, 3, 3)

		require.Len(t, questions, 3)
		seen := make(map[uuid.UUID]bool)
		for i, q := range questions {
			// 合成IDは q1, q2, ... の連番
			assert.Equal(t, "q"+string(rune('1'+i)), q.ID)

			// 同じ単語は2回出題されない
			assert.False(t, seen[q.Vocabulary.VocabularyID])
			seen[q.Vocabulary.VocabularyID] = true

			// 選択肢は最大4件・重複なしの単語で、正解を必ず含む
			assert.LessOrEqual(t, len(q.Options), 4)
			assert.Equal(t, q.Vocabulary.Word, q.CorrectAnswer)
			optSet := make(map[string]bool)
			correctIncluded := false
			for _, opt := range q.Options {
				assert.False(t, optSet[opt], "option duplicated: %s", opt)
				optSet[opt] = true
				if opt == q.CorrectAnswer {
					correctIncluded = true
				}
			}
			assert.True(t, correctIncluded)

			// 回答前は未採点
			assert.Empty(t, q.UserAnswer)
			assert.False(t, q.IsCorrect)
		}
	})

	t.Run("正常系: 意味が重複する単語同士でも選択肢は重複しない", func(t *testing.T) {
		shared := "やめる"
		vocabs := []*model.Vocabulary{
			{VocabularyID: uuid.New(), TopicID: topicID, Word: "stop", Meaning: shared},
			{VocabularyID: uuid.New(), TopicID: topicID, Word: "cease", Meaning: shared},
			{VocabularyID: uuid.New(), TopicID: topicID, Word: "quit", Meaning: shared},
			{VocabularyID: uuid.New(), TopicID: topicID, Word: "halt", Meaning: shared},
		}

		questions := buildQuestions(vocabs, 4, 3)

		require.Len(t, questions, 4)
		for _, q := range questions {
			// 正解・選択肢とも単語であり、意味の重複に影響されない
			assert.Equal(t, q.Vocabulary.Word, q.CorrectAnswer)
			assert.Len(t, q.Options, 4)
			optSet := make(map[string]bool)
			for _, opt := range q.Options {
				assert.False(t, optSet[opt], "option duplicated: %s", opt)
				optSet[opt] = true
			}
			assert.Contains(t, q.Options, q.CorrectAnswer)
		}
	})

	t.Run("正常系: 単語が2件しかないトピックでは選択肢も2件になる", func(t *testing.T) {
		vocabs := makeVocabularies(topicID, "apple", "banana")

		questions := buildQuestions(vocabs, 2, 3)

		require.Len(t, questions, 2)
		for _, q := range questions {
			assert.Len(t, q.Options, 2)
			assert.Contains(t, q.Options, q.CorrectAnswer)
		}
	})
}

// --- Test GenerateQuiz ---
func Test_quizService_GenerateQuiz(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	userID := uuid.New()
	topicID := uuid.New()
	topic := &model.Topic{TopicID: topicID, Name: "Fruits"}

	tests := []struct {
		name          string
		req           *model.GenerateQuizRequest
		setupMock     func(topicRepo *mocks.TopicRepository, vocabRepo *mocks.VocabularyRepository)
		wantErr       error
		wantQuestions int
	}{
		{
			name: "正常系: 登録単語数より多く要求すると登録数に丸められる",
			req:  &model.GenerateQuizRequest{TopicID: topicID, QuestionCount: 10},
			setupMock: func(topicRepo *mocks.TopicRepository, vocabRepo *mocks.VocabularyRepository) {
				topicRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), topicID).
					Return(topic, nil).Once()
				vocabRepo.On("FindByTopic", ctx, mock.AnythingOfType("*gorm.DB"), topicID).
					Return(makeVocabularies(topicID, "apple", "banana", "cherry", "date"), nil).Once()
			},
			wantErr:       nil,
			wantQuestions: 4,
		},
		{
			name: "正常系: 出題数省略時はデフォルト値が使われる",
			req:  &model.GenerateQuizRequest{TopicID: topicID},
			setupMock: func(topicRepo *mocks.TopicRepository, vocabRepo *mocks.VocabularyRepository) {
				topicRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), topicID).
					Return(topic, nil).Once()
				vocabRepo.On("FindByTopic", ctx, mock.AnythingOfType("*gorm.DB"), topicID).
					Return(makeVocabularies(topicID, "a", "b", "c"), nil).Once()
			},
			wantErr:       nil,
			wantQuestions: 3,
		},
		{
			name: "異常系: トピックが存在しない",
			req:  &model.GenerateQuizRequest{TopicID: topicID, QuestionCount: 5},
			setupMock: func(topicRepo *mocks.TopicRepository, vocabRepo *mocks.VocabularyRepository) {
				topicRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), topicID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "異常系: 単語が1件も登録されていない",
			req:  &model.GenerateQuizRequest{TopicID: topicID, QuestionCount: 5},
			setupMock: func(topicRepo *mocks.TopicRepository, vocabRepo *mocks.VocabularyRepository) {
				topicRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), topicID).
					Return(topic, nil).Once()
				vocabRepo.On("FindByTopic", ctx, mock.AnythingOfType("*gorm.DB"), topicID).
					Return([]*model.Vocabulary{}, nil).Once()
			},
			wantErr: model.ErrInvalidInput,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			topicRepo := new(mocks.TopicRepository)
			vocabRepo := new(mocks.VocabularyRepository)
			svc := NewQuizService(db, new(mocks.QuizRepository), topicRepo, vocabRepo, new(mocks.ProgressRepository), new(mocks.UserRepository), testConfig())
			tc.setupMock(topicRepo, vocabRepo)

			resp, err := svc.GenerateQuiz(ctx, userID, tc.req)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				require.NotNil(t, resp)
				assert.Len(t, resp.Questions, tc.wantQuestions)
			}
			topicRepo.AssertExpectations(t)
			vocabRepo.AssertExpectations(t)
		})
	}
}

// --- Test SubmitQuiz ---
func Test_quizService_SubmitQuiz(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	userID := uuid.New()
	topicID := uuid.New()
	topic := &model.Topic{TopicID: topicID, Name: "Fruits", Color: "#3B82F6"}

	newQuestion := func(id string, vocab *model.Vocabulary, isCorrect bool) model.QuizQuestion {
		userAnswer := vocab.Word
		if !isCorrect {
			userAnswer = "wrong"
		}
		return model.QuizQuestion{
			ID:            id,
			Vocabulary:    model.QuizVocabulary{VocabularyID: vocab.VocabularyID, Word: vocab.Word, Meaning: vocab.Meaning},
			Options:       []string{vocab.Word, "wrong"},
			CorrectAnswer: vocab.Word,
			UserAnswer:    userAnswer,
			IsCorrect:     isCorrect,
		}
	}

	t.Run("正常系: 4問中3問正解でスコア75になる", func(t *testing.T) {
		vocabs := makeVocabularies(topicID, "apple", "banana", "cherry", "date")
		questions := []model.QuizQuestion{
			newQuestion("q1", vocabs[0], true),
			newQuestion("q2", vocabs[1], true),
			newQuestion("q3", vocabs[2], true),
			newQuestion("q4", vocabs[3], false),
		}

		quizRepo := new(mocks.QuizRepository)
		topicRepo := new(mocks.TopicRepository)
		vocabRepo := new(mocks.VocabularyRepository)
		progRepo := new(mocks.ProgressRepository)
		userRepo := new(mocks.UserRepository)
		svc := NewQuizService(db, quizRepo, topicRepo, vocabRepo, progRepo, userRepo, testConfig())

		topicRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), topicID).
			Return(topic, nil).Once()

		var savedSession *model.QuizSession
		quizRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.QuizSession")).
			Run(func(args mock.Arguments) {
				savedSession = args.Get(2).(*model.QuizSession)
			}).Return(nil).Once()

		// 各設問の進捗更新: 初回回答なので全件新規作成になる
		for _, v := range vocabs {
			vocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), v.VocabularyID).
				Return(v, nil).Once()
			progRepo.On("FindByUserAndVocabulary", ctx, mock.AnythingOfType("*gorm.DB"), userID, v.VocabularyID).
				Return(nil, model.ErrNotFound).Once()
		}
		progRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserProgress")).
			Return(nil).Times(4)

		// 統計の再計算
		quizRepo.On("CountByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(int64(1), nil).Once()
		progRepo.On("CountByUserAndStatus", ctx, mock.AnythingOfType("*gorm.DB"), userID, model.StatusMastered).
			Return(int64(0), nil).Once()
		quizRepo.On("AverageScoreByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(75.0, nil).Once()
		userRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), userID, mock.AnythingOfType("map[string]interface {}")).
			Return(nil).Once()

		resp, err := svc.SubmitQuiz(ctx, userID, &model.SubmitQuizRequest{
			TopicID:   topicID,
			Questions: questions,
			TimeSpent: 120,
		})

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, 75, resp.Score)
		assert.InDelta(t, 75.0, resp.Accuracy, 0.001)
		assert.Equal(t, 4, resp.TotalQuestions)
		assert.Equal(t, 3, resp.CorrectAnswers)
		assert.Equal(t, 1, resp.IncorrectAnswers)
		assert.Equal(t, 120, resp.TimeSpent)
		assert.Equal(t, "Fruits", resp.TopicName)

		require.NotNil(t, savedSession)
		assert.Equal(t, 75, savedSession.Score)
		assert.Equal(t, userID, savedSession.UserID)
		assert.NotEmpty(t, savedSession.QuestionsData)

		quizRepo.AssertExpectations(t)
		progRepo.AssertExpectations(t)
		userRepo.AssertExpectations(t)
	})

	t.Run("正常系: user_answer無しでもis_correctフラグで採点される", func(t *testing.T) {
		vocabs := makeVocabularies(topicID, "apple", "banana")
		questions := []model.QuizQuestion{
			{
				ID:            "q1",
				Vocabulary:    model.QuizVocabulary{VocabularyID: vocabs[0].VocabularyID, Word: vocabs[0].Word},
				Options:       []string{vocabs[0].Word, "wrong"},
				CorrectAnswer: vocabs[0].Word,
				IsCorrect:     true,
			},
			{
				ID:            "q2",
				Vocabulary:    model.QuizVocabulary{VocabularyID: vocabs[1].VocabularyID, Word: vocabs[1].Word},
				Options:       []string{vocabs[1].Word, "wrong"},
				CorrectAnswer: vocabs[1].Word,
				IsCorrect:     false,
			},
		}

		quizRepo := new(mocks.QuizRepository)
		topicRepo := new(mocks.TopicRepository)
		vocabRepo := new(mocks.VocabularyRepository)
		progRepo := new(mocks.ProgressRepository)
		userRepo := new(mocks.UserRepository)
		svc := NewQuizService(db, quizRepo, topicRepo, vocabRepo, progRepo, userRepo, testConfig())

		topicRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), topicID).
			Return(topic, nil).Once()
		quizRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.QuizSession")).
			Return(nil).Once()

		for _, v := range vocabs {
			vocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), v.VocabularyID).
				Return(v, nil).Once()
			progRepo.On("FindByUserAndVocabulary", ctx, mock.AnythingOfType("*gorm.DB"), userID, v.VocabularyID).
				Return(nil, model.ErrNotFound).Once()
		}
		progRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserProgress")).
			Return(nil).Times(2)

		quizRepo.On("CountByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(int64(1), nil).Once()
		progRepo.On("CountByUserAndStatus", ctx, mock.AnythingOfType("*gorm.DB"), userID, model.StatusMastered).
			Return(int64(0), nil).Once()
		quizRepo.On("AverageScoreByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(50.0, nil).Once()
		userRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), userID, mock.AnythingOfType("map[string]interface {}")).
			Return(nil).Once()

		resp, err := svc.SubmitQuiz(ctx, userID, &model.SubmitQuizRequest{
			TopicID:   topicID,
			Questions: questions,
			TimeSpent: 20,
		})

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, 50, resp.Score)
		assert.Equal(t, 1, resp.CorrectAnswers)
		assert.Equal(t, 1, resp.IncorrectAnswers)

		quizRepo.AssertExpectations(t)
		progRepo.AssertExpectations(t)
	})

	t.Run("正常系: 解決できない単語はスキップして提出自体は成功する", func(t *testing.T) {
		vocabs := makeVocabularies(topicID, "apple")
		ghost := &model.Vocabulary{VocabularyID: uuid.New(), TopicID: topicID, Word: "ghost", Meaning: "幽霊"}
		questions := []model.QuizQuestion{
			newQuestion("q1", vocabs[0], true),
			newQuestion("q2", ghost, true),
		}

		quizRepo := new(mocks.QuizRepository)
		topicRepo := new(mocks.TopicRepository)
		vocabRepo := new(mocks.VocabularyRepository)
		progRepo := new(mocks.ProgressRepository)
		userRepo := new(mocks.UserRepository)
		svc := NewQuizService(db, quizRepo, topicRepo, vocabRepo, progRepo, userRepo, testConfig())

		topicRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), topicID).
			Return(topic, nil).Once()
		quizRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.QuizSession")).
			Return(nil).Once()

		vocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), vocabs[0].VocabularyID).
			Return(vocabs[0], nil).Once()
		progRepo.On("FindByUserAndVocabulary", ctx, mock.AnythingOfType("*gorm.DB"), userID, vocabs[0].VocabularyID).
			Return(nil, model.ErrNotFound).Once()
		progRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserProgress")).
			Return(nil).Once()

		// 存在しない単語はスキップされる
		vocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), ghost.VocabularyID).
			Return(nil, model.ErrNotFound).Once()

		quizRepo.On("CountByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(int64(1), nil).Once()
		progRepo.On("CountByUserAndStatus", ctx, mock.AnythingOfType("*gorm.DB"), userID, model.StatusMastered).
			Return(int64(0), nil).Once()
		quizRepo.On("AverageScoreByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(100.0, nil).Once()
		userRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), userID, mock.AnythingOfType("map[string]interface {}")).
			Return(nil).Once()

		resp, err := svc.SubmitQuiz(ctx, userID, &model.SubmitQuizRequest{
			TopicID:   topicID,
			Questions: questions,
			TimeSpent: 30,
		})

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, 100, resp.Score)
		assert.Equal(t, 2, resp.CorrectAnswers)

		vocabRepo.AssertExpectations(t)
		progRepo.AssertExpectations(t)
	})

	t.Run("異常系: トピックが存在しない", func(t *testing.T) {
		topicRepo := new(mocks.TopicRepository)
		svc := NewQuizService(db, new(mocks.QuizRepository), topicRepo, new(mocks.VocabularyRepository), new(mocks.ProgressRepository), new(mocks.UserRepository), testConfig())

		topicRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), topicID).
			Return(nil, model.ErrNotFound).Once()

		resp, err := svc.SubmitQuiz(ctx, userID, &model.SubmitQuizRequest{
			TopicID:   topicID,
			Questions: []model.QuizQuestion{{ID: "q1"}},
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, resp)
	})
}

// --- Test GetStats ---
func Test_quizService_GetStats(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	userID := uuid.New()

	quizRepo := new(mocks.QuizRepository)
	svc := NewQuizService(db, quizRepo, new(mocks.TopicRepository), new(mocks.VocabularyRepository), new(mocks.ProgressRepository), new(mocks.UserRepository), testConfig())

	quizRepo.On("AggregateByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
		Return(&repository.QuizAggregates{
			TotalQuizzes:   7,
			AverageScore:   83.25,
			BestScore:      100,
			TotalTimeSpent: 900,
			TopicsStudied:  3,
		}, nil).Once()

	stats, err := svc.GetStats(ctx, userID)

	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, int64(7), stats.TotalQuizzes)
	// 平均スコアは小数第1位に丸める
	assert.InDelta(t, 83.3, stats.AverageScore, 0.001)
	assert.Equal(t, 100, stats.BestScore)
	assert.Equal(t, int64(900), stats.TotalTimeSpent)
	assert.Equal(t, int64(3), stats.TopicsStudied)
	quizRepo.AssertExpectations(t)
}
