package model

import "time"

type User struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"size:20;not null;uniqueIndex" json:"name"`
	Email              string    `gorm:"size:40;not null;uniqueIndex" json:"email"`
	Password           string    `gorm:"not null" json:"-"`
	ImagePath          string    `gorm:"not null" json:"image_path"`
	Role               string    `gorm:"not null;default:NA" json:"role"`
	ForgotPasswordCode string    `gorm:"not null;default:''" json:"-"`
	NotificationToken  string    `gorm:"not null;default:''" json:"-"`
	CreatedAt          time.Time `json:"created_at"`
}
