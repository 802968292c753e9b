package model

import (
	"time"

	"digiwork-hub.com/digiwork-hub/internal/codec"
)

type Checklist struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	TaskID      uint         `gorm:"index;not null" json:"task_id"`
	UserID      uint         `gorm:"not null" json:"user_id"`
	Description string       `gorm:"size:1000;not null" json:"description"`
	IsChecked   bool         `gorm:"not null;default:false" json:"is_checked"`
	Assignees   codec.IDList `gorm:"column:assignee;type:text;not null" json:"assignees"`
	Version     uint         `gorm:"not null;default:1" json:"version"`
	CreatedAt   time.Time    `json:"created_at"`
}
