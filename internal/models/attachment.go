package model

import "time"

type Attachment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TaskID    uint      `gorm:"index;not null" json:"task_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	Path      string    `gorm:"column:attachment_path;not null" json:"path"`
	FileName  string    `gorm:"not null" json:"file_name"`
	CreatedAt time.Time `json:"created_at"`
}
