// internal/model/vocabulary.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Vocabulary はトピックに属する単語1件を表します
type Vocabulary struct {
	VocabularyID  uuid.UUID  `gorm:"type:uuid;primaryKey" json:"vocabulary_id"`
	TopicID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_topic_word,unique" json:"topic_id"`
	Word          string     `gorm:"not null;index:idx_topic_word,unique" json:"word"` // (topic, word) で一意
	Pronunciation string     `json:"pronunciation"`
	Meaning       string     `gorm:"not null" json:"meaning"`
	Example       string     `json:"example"`
	Difficulty    Difficulty `gorm:"type:varchar(10);not null;default:medium" json:"difficulty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// 関連 (Preload用)。Topic削除時はDB側のカスケードで消える
	Topic *Topic `gorm:"foreignKey:TopicID;references:TopicID;constraint:OnDelete:CASCADE" json:"topic,omitempty"`
}

func (Vocabulary) TableName() string {
	return "vocabularies"
}

// 単語作成リクエストDTO
type PostVocabularyRequest struct {
	TopicID       uuid.UUID  `json:"topic_id" validate:"required"`
	Word          string     `json:"word" validate:"required,min=1,max=100"`
	Pronunciation string     `json:"pronunciation" validate:"max=200"`
	Meaning       string     `json:"meaning" validate:"required"`
	Example       string     `json:"example"`
	Difficulty    Difficulty `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
}

// 単語更新（部分）リクエストDTO
type PatchVocabularyRequest struct {
	TopicID       *uuid.UUID  `json:"topic_id,omitempty"`
	Word          *string     `json:"word,omitempty" validate:"omitempty,min=1,max=100"`
	Pronunciation *string     `json:"pronunciation,omitempty" validate:"omitempty,max=200"`
	Meaning       *string     `json:"meaning,omitempty" validate:"omitempty,min=1"`
	Example       *string     `json:"example,omitempty"`
	Difficulty    *Difficulty `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
}

// VocabularyFilter は一覧取得時の絞り込み条件
type VocabularyFilter struct {
	TopicID    *uuid.UUID
	Difficulty *Difficulty
}
