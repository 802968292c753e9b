package model

import (
	"time"

	"digiwork-hub.com/digiwork-hub/internal/codec"
)

type TaskComment struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	TaskID      uint         `gorm:"index;not null" json:"task_id"`
	UserID      uint         `gorm:"not null" json:"user_id"`
	Description string       `gorm:"size:500;not null" json:"description"`
	ReplyIDs    codec.IDList `gorm:"column:reply_id;type:text;not null" json:"reply_ids"`
	MentionIDs  codec.IDList `gorm:"column:mentions_id;type:text;not null" json:"mention_ids"`
	LikeIDs     codec.IDList `gorm:"column:likes_id;type:text;not null" json:"like_ids"`
	Version     uint         `gorm:"not null;default:1" json:"version"`
	CreatedAt   time.Time    `json:"created_at"`
}
