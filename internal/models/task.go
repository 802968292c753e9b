package model

import (
	"time"

	"digiwork-hub.com/digiwork-hub/internal/codec"
)

type Task struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Title       string       `gorm:"size:100;not null" json:"title"`
	Description string       `gorm:"size:1000;not null" json:"description"`
	Status      string       `gorm:"type:varchar(30);not null;default:OPEN" json:"status"`
	Priority    string       `gorm:"type:varchar(30);not null;default:LOW" json:"priority"`
	Type        string       `gorm:"type:varchar(30);not null;default:TASK" json:"type"`
	Due         time.Time    `gorm:"not null" json:"due"`
	Assignees   codec.IDList `gorm:"column:assignee;type:text;not null" json:"assignees"`
	CreatorID   uint         `gorm:"index;not null" json:"creator_id"`
	Version     uint         `gorm:"not null;default:1" json:"version"`
	CreatedAt   time.Time    `json:"created_at"`
}

// Subtask mirrors Task and belongs to one through TaskID.
type Subtask struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	TaskID      uint         `gorm:"index;not null" json:"task_id"`
	Title       string       `gorm:"size:100;not null" json:"title"`
	Description string       `gorm:"size:1000;not null" json:"description"`
	Status      string       `gorm:"type:varchar(30);not null;default:OPEN" json:"status"`
	Priority    string       `gorm:"type:varchar(30);not null;default:LOW" json:"priority"`
	Type        string       `gorm:"type:varchar(30);not null;default:TASK" json:"type"`
	Due         time.Time    `gorm:"not null" json:"due"`
	Assignees   codec.IDList `gorm:"column:assignee;type:text;not null" json:"assignees"`
	CreatorID   uint         `gorm:"not null" json:"creator_id"`
	Version     uint         `gorm:"not null;default:1" json:"version"`
	CreatedAt   time.Time    `json:"created_at"`
}
