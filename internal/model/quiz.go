// internal/model/quiz.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuizSession は完了した1回のクイズ結果を表します。作成後は不変
type QuizSession struct {
	SessionID      uuid.UUID      `gorm:"type:uuid;primaryKey" json:"session_id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	TopicID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"topic_id"`
	QuestionsData  datatypes.JSON `gorm:"not null" json:"-"` // 出題・回答の全ペイロード
	Score          int            `gorm:"not null" json:"score"` // 0-100 (四捨五入)
	TotalQuestions int            `gorm:"not null" json:"total_questions"`
	TimeSpent      int            `gorm:"not null" json:"time_spent"` // 秒
	Accuracy       float64        `gorm:"not null" json:"accuracy"`   // 0-100
	CompletedAt    time.Time      `gorm:"autoCreateTime" json:"completed_at"`

	// 関連 (Preload用)
	User  *User  `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Topic *Topic `gorm:"foreignKey:TopicID;references:TopicID;constraint:OnDelete:CASCADE" json:"-"`
}

func (QuizSession) TableName() string {
	return "quiz_sessions"
}

// QuizVocabulary は出題に含める単語ペイロード
type QuizVocabulary struct {
	VocabularyID  uuid.UUID  `json:"id"`
	Word          string     `json:"word"`
	Pronunciation string     `json:"pronunciation"`
	Meaning       string     `json:"meaning"`
	Example       string     `json:"example"`
	Difficulty    Difficulty `json:"difficulty"`
}

// QuizQuestion は4択問題1問。生成時は UserAnswer / IsCorrect は空で、提出時に埋まる
type QuizQuestion struct {
	ID            string         `json:"id"` // "q1", "q2", ... の合成ID
	Vocabulary    QuizVocabulary `json:"vocabulary"`
	Options       []string       `json:"options" validate:"required,min=1,max=4"`
	CorrectAnswer string         `json:"correct_answer"`
	UserAnswer    string         `json:"user_answer,omitempty"`
	IsCorrect     bool           `json:"is_correct"`
}

// クイズ生成リクエストDTO
type GenerateQuizRequest struct {
	TopicID       uuid.UUID `json:"topic_id" validate:"required"`
	QuestionCount int       `json:"question_count,omitempty" validate:"omitempty,min=1,max=50"`
}

type GenerateQuizResponse struct {
	Questions []QuizQuestion `json:"questions"`
}

// クイズ提出リクエストDTO
type SubmitQuizRequest struct {
	TopicID   uuid.UUID      `json:"topic_id" validate:"required"`
	Questions []QuizQuestion `json:"questions" validate:"required,min=1"`
	TimeSpent int            `json:"time_spent" validate:"min=0"`
}

// QuizSessionResponse はセッション1件のレスポンスDTO
type QuizSessionResponse struct {
	SessionID        uuid.UUID      `json:"session_id"`
	TopicID          uuid.UUID      `json:"topic_id"`
	TopicName        string         `json:"topic_name"`
	TopicColor       string         `json:"topic_color"`
	Questions        []QuizQuestion `json:"questions"`
	Score            int            `json:"score"`
	TotalQuestions   int            `json:"total_questions"`
	CorrectAnswers   int            `json:"correct_answers"`
	IncorrectAnswers int            `json:"incorrect_answers"`
	TimeSpent        int            `json:"time_spent"`
	Accuracy         float64        `json:"accuracy"`
	CompletedAt      time.Time      `json:"completed_at"`
}

// QuizStatsResponse はユーザー自身のクイズ統計
type QuizStatsResponse struct {
	TotalQuizzes   int64   `json:"total_quizzes"`
	AverageScore   float64 `json:"average_score"`
	BestScore      int     `json:"best_score"`
	TotalTimeSpent int64   `json:"total_time_spent"`
	TopicsStudied  int64   `json:"topics_studied"`
}
