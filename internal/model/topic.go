// internal/model/topic.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Topic は単語をまとめるカテゴリを表します
type Topic struct {
	TopicID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"topic_id"`
	Name        string    `gorm:"unique;not null" json:"name"`
	Description string    `gorm:"not null" json:"description"`
	Color       string    `gorm:"type:varchar(7);not null;default:#3B82F6" json:"color"` // 表示用カラーコード (#RRGGBB)
	// 関連する Vocabulary の件数キャッシュ。単語の追加・削除のたびに実件数から再計算される
	VocabularyCount int       `gorm:"not null;default:0" json:"vocabulary_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Topic) TableName() string {
	return "topics"
}

// トピック作成リクエストDTO
type PostTopicRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"required"`
	Color       string `json:"color,omitempty" validate:"omitempty,hexcolor,len=7"`
}

// トピック更新（部分）リクエストDTO
type PatchTopicRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,min=1"`
	Color       *string `json:"color,omitempty" validate:"omitempty,hexcolor,len=7"`
}
