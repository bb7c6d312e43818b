// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ProgressStatus string

const (
	StatusNotStarted ProgressStatus = "not_started"
	StatusLearning   ProgressStatus = "learning"
	StatusMastered   ProgressStatus = "mastered"
)

// UserProgress はユーザー×単語ごとの習熟状況を表します
type UserProgress struct {
	ProgressID    uuid.UUID      `gorm:"type:uuid;primaryKey" json:"progress_id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index:idx_user_vocab,unique" json:"-"`
	TopicID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"topic_id"`
	VocabularyID  uuid.UUID      `gorm:"type:uuid;not null;index:idx_user_vocab,unique" json:"vocabulary_id"`
	Status        ProgressStatus `gorm:"type:varchar(15);not null;default:not_started" json:"status"`
	CorrectCount  int            `gorm:"not null;default:0" json:"correct_count"`
	TotalAttempts int            `gorm:"not null;default:0" json:"total_attempts"`
	LastStudied   time.Time      `gorm:"autoUpdateTime" json:"last_studied"`
	CreatedAt     time.Time      `json:"created_at"`

	// 関連 (Preload用)
	User       *User       `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Topic      *Topic      `gorm:"foreignKey:TopicID;references:TopicID;constraint:OnDelete:CASCADE" json:"-"`
	Vocabulary *Vocabulary `gorm:"foreignKey:VocabularyID;references:VocabularyID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

// Accuracy は正答率(%)を返します。カウンタから毎回導出し、キャッシュは持たない
func (p *UserProgress) Accuracy() float64 {
	if p.TotalAttempts == 0 {
		return 0
	}
	return float64(p.CorrectCount) / float64(p.TotalAttempts) * 100
}

// 回答結果送信リクエストDTO。対象の単語はパスパラメータで指定する
type UpdateProgressRequest struct {
	IsCorrect *bool `json:"is_correct" validate:"required"`
}

// ProgressResponse は進捗1件のレスポンスDTO（単語・トピック情報を展開して返す）
type ProgressResponse struct {
	ProgressID              uuid.UUID      `json:"progress_id"`
	VocabularyID            uuid.UUID      `json:"vocabulary_id"`
	VocabularyWord          string         `json:"vocabulary_word"`
	VocabularyPronunciation string         `json:"vocabulary_pronunciation"`
	VocabularyMeaning       string         `json:"vocabulary_meaning"`
	VocabularyExample       string         `json:"vocabulary_example"`
	VocabularyDifficulty    Difficulty     `json:"vocabulary_difficulty"`
	TopicID                 uuid.UUID      `json:"topic_id"`
	TopicName               string         `json:"topic_name"`
	TopicColor              string         `json:"topic_color"`
	Status                  ProgressStatus `json:"status"`
	CorrectCount            int            `json:"correct_count"`
	TotalAttempts           int            `json:"total_attempts"`
	Accuracy                float64        `json:"accuracy"`
	LastStudied             time.Time      `json:"last_studied"`
}

// TopicProgressSummaryResponse はトピック単位の進捗サマリ
type TopicProgressSummaryResponse struct {
	TopicID              uuid.UUID `json:"topic_id"`
	TopicName            string    `json:"topic_name"`
	TotalVocabulary      int64     `json:"total_vocabulary"`
	Mastered             int64     `json:"mastered"`
	Learning             int64     `json:"learning"`
	NotStarted           int64     `json:"not_started"`
	CompletionPercentage float64   `json:"completion_percentage"`
}
