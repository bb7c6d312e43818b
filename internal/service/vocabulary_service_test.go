// internal/service/vocabulary_service_test.go
package service

import (
	"context"
	"testing"

	"wordify/internal/model"
	"wordify/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Test CreateVocabulary ---
func Test_vocabularyService_CreateVocabulary(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	topicID := uuid.New()
	topic := &model.Topic{TopicID: topicID, Name: "Fruits"}

	validReq := &model.PostVocabularyRequest{
		TopicID: topicID,
		Word:    "apple",
		Meaning: "りんご",
	}

	tests := []struct {
		name      string
		req       *model.PostVocabularyRequest
		setupMock func(vocabRepo *mocks.VocabularyRepository, topicRepo *mocks.TopicRepository)
		wantErr   error
	}{
		{
			name: "正常系: 作成に成功しトピックの件数キャッシュが再計算される",
			req:  validReq,
			setupMock: func(vocabRepo *mocks.VocabularyRepository, topicRepo *mocks.TopicRepository) {
				topicRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), topicID).
					Return(topic, nil).Once()
				vocabRepo.On("CheckWordExists", ctx, mock.AnythingOfType("*gorm.DB"), topicID, "apple", (*uuid.UUID)(nil)).
					Return(false, nil).Once()
				vocabRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Vocabulary")).
					Run(func(args mock.Arguments) {
						vocab := args.Get(2).(*model.Vocabulary)
						assert.Equal(t, "apple", vocab.Word)
						// 難易度省略時は medium
						assert.Equal(t, model.DifficultyMedium, vocab.Difficulty)
					}).Return(nil).Once()
				// 件数キャッシュの再計算
				vocabRepo.On("CountByTopic", ctx, mock.AnythingOfType("*gorm.DB"), topicID).
					Return(int64(5), nil).Once()
				topicRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), topicID, map[string]interface{}{
					"vocabulary_count": int64(5),
				}).Return(nil).Once()
				vocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("uuid.UUID")).
					Return(&model.Vocabulary{Word: "apple", TopicID: topicID, Topic: topic}, nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "異常系: トピックが存在しない",
			req:  validReq,
			setupMock: func(vocabRepo *mocks.VocabularyRepository, topicRepo *mocks.TopicRepository) {
				topicRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), topicID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "異常系: 同じトピックに同じ単語が既に存在",
			req:  validReq,
			setupMock: func(vocabRepo *mocks.VocabularyRepository, topicRepo *mocks.TopicRepository) {
				topicRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), topicID).
					Return(topic, nil).Once()
				vocabRepo.On("CheckWordExists", ctx, mock.AnythingOfType("*gorm.DB"), topicID, "apple", (*uuid.UUID)(nil)).
					Return(true, nil).Once()
			},
			wantErr: model.ErrConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vocabRepo := new(mocks.VocabularyRepository)
			topicRepo := new(mocks.TopicRepository)
			svc := NewVocabularyService(db, vocabRepo, topicRepo)
			tc.setupMock(vocabRepo, topicRepo)

			vocab, err := svc.CreateVocabulary(ctx, tc.req)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, vocab)
			} else {
				require.NoError(t, err)
				require.NotNil(t, vocab)
			}
			vocabRepo.AssertExpectations(t)
			topicRepo.AssertExpectations(t)
		})
	}
}

// --- Test UpdateVocabulary ---
func Test_vocabularyService_UpdateVocabulary(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	topicID := uuid.New()
	otherTopicID := uuid.New()
	vocabularyID := uuid.New()

	current := &model.Vocabulary{
		VocabularyID: vocabularyID,
		TopicID:      topicID,
		Word:         "apple",
		Meaning:      "りんご",
		Difficulty:   model.DifficultyEasy,
	}

	t.Run("正常系: トピック移動で両トピックの件数キャッシュが更新される", func(t *testing.T) {
		vocabRepo := new(mocks.VocabularyRepository)
		topicRepo := new(mocks.TopicRepository)
		svc := NewVocabularyService(db, vocabRepo, topicRepo)

		vocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), vocabularyID).
			Return(current, nil).Once()
		topicRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), otherTopicID).
			Return(&model.Topic{TopicID: otherTopicID, Name: "Vegetables"}, nil).Once()
		vocabRepo.On("CheckWordExists", ctx, mock.AnythingOfType("*gorm.DB"), otherTopicID, "apple", &vocabularyID).
			Return(false, nil).Once()
		vocabRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), vocabularyID, map[string]interface{}{
			"topic_id": otherTopicID,
		}).Return(nil).Once()

		// 移動元・移動先それぞれの再計算
		vocabRepo.On("CountByTopic", ctx, mock.AnythingOfType("*gorm.DB"), topicID).
			Return(int64(3), nil).Once()
		topicRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), topicID, map[string]interface{}{
			"vocabulary_count": int64(3),
		}).Return(nil).Once()
		vocabRepo.On("CountByTopic", ctx, mock.AnythingOfType("*gorm.DB"), otherTopicID).
			Return(int64(8), nil).Once()
		topicRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), otherTopicID, map[string]interface{}{
			"vocabulary_count": int64(8),
		}).Return(nil).Once()

		vocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), vocabularyID).
			Return(&model.Vocabulary{VocabularyID: vocabularyID, TopicID: otherTopicID, Word: "apple"}, nil).Once()

		vocab, err := svc.UpdateVocabulary(ctx, vocabularyID, &model.PatchVocabularyRequest{TopicID: &otherTopicID})

		require.NoError(t, err)
		assert.Equal(t, otherTopicID, vocab.TopicID)
		vocabRepo.AssertExpectations(t)
		topicRepo.AssertExpectations(t)
	})

	t.Run("正常系: 意味だけの変更では件数キャッシュを触らない", func(t *testing.T) {
		vocabRepo := new(mocks.VocabularyRepository)
		topicRepo := new(mocks.TopicRepository)
		svc := NewVocabularyService(db, vocabRepo, topicRepo)

		newMeaning := "林檎"
		vocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), vocabularyID).
			Return(current, nil).Once()
		vocabRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), vocabularyID, map[string]interface{}{
			"meaning": newMeaning,
		}).Return(nil).Once()
		vocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), vocabularyID).
			Return(&model.Vocabulary{VocabularyID: vocabularyID, TopicID: topicID, Word: "apple", Meaning: newMeaning}, nil).Once()

		vocab, err := svc.UpdateVocabulary(ctx, vocabularyID, &model.PatchVocabularyRequest{Meaning: &newMeaning})

		require.NoError(t, err)
		assert.Equal(t, newMeaning, vocab.Meaning)
		vocabRepo.AssertExpectations(t)
		topicRepo.AssertExpectations(t)
	})

	t.Run("異常系: 移動先トピックに同じ単語が存在", func(t *testing.T) {
		vocabRepo := new(mocks.VocabularyRepository)
		topicRepo := new(mocks.TopicRepository)
		svc := NewVocabularyService(db, vocabRepo, topicRepo)

		vocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), vocabularyID).
			Return(current, nil).Once()
		topicRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), otherTopicID).
			Return(&model.Topic{TopicID: otherTopicID}, nil).Once()
		vocabRepo.On("CheckWordExists", ctx, mock.AnythingOfType("*gorm.DB"), otherTopicID, "apple", &vocabularyID).
			Return(true, nil).Once()

		vocab, err := svc.UpdateVocabulary(ctx, vocabularyID, &model.PatchVocabularyRequest{TopicID: &otherTopicID})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrConflict)
		assert.Nil(t, vocab)
	})
}

// --- Test DeleteVocabulary ---
func Test_vocabularyService_DeleteVocabulary(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	topicID := uuid.New()
	vocabularyID := uuid.New()

	t.Run("正常系: 削除後に件数キャッシュが再計算される", func(t *testing.T) {
		vocabRepo := new(mocks.VocabularyRepository)
		topicRepo := new(mocks.TopicRepository)
		svc := NewVocabularyService(db, vocabRepo, topicRepo)

		vocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), vocabularyID).
			Return(&model.Vocabulary{VocabularyID: vocabularyID, TopicID: topicID, Word: "apple"}, nil).Once()
		vocabRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), vocabularyID).
			Return(nil).Once()
		vocabRepo.On("CountByTopic", ctx, mock.AnythingOfType("*gorm.DB"), topicID).
			Return(int64(2), nil).Once()
		topicRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), topicID, map[string]interface{}{
			"vocabulary_count": int64(2),
		}).Return(nil).Once()

		err := svc.DeleteVocabulary(ctx, vocabularyID)

		require.NoError(t, err)
		vocabRepo.AssertExpectations(t)
		topicRepo.AssertExpectations(t)
	})

	t.Run("異常系: 単語が存在しない", func(t *testing.T) {
		vocabRepo := new(mocks.VocabularyRepository)
		svc := NewVocabularyService(db, vocabRepo, new(mocks.TopicRepository))

		vocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), vocabularyID).
			Return(nil, model.ErrNotFound).Once()

		err := svc.DeleteVocabulary(ctx, vocabularyID)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
