package model

import (
	"time"

	"digiwork-hub.com/digiwork-hub/internal/codec"
)

// Message is a direct message between two users. Either party may hide it
// from their own view; only the sender removes the row.
type Message struct {
	ID                  uint           `gorm:"primaryKey" json:"id"`
	Title               string         `gorm:"size:100;not null" json:"title"`
	Description         string         `gorm:"size:3000;not null" json:"description"`
	SenderID            uint           `gorm:"index;not null" json:"sender_id"`
	ReceiverID          uint           `gorm:"index;not null" json:"receiver_id"`
	AttachmentPaths     codec.PathList `gorm:"type:text;not null" json:"attachment_paths"`
	FileNames           codec.PathList `gorm:"type:text;not null" json:"file_names"`
	DeletedFromSender   bool           `gorm:"not null;default:false" json:"deleted_from_sender"`
	DeletedFromReceiver bool           `gorm:"not null;default:false" json:"deleted_from_receiver"`
	Version             uint           `gorm:"not null;default:1" json:"version"`
	CreatedAt           time.Time      `json:"created_at"`
}

type MessageReply struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	MessageID       uint           `gorm:"index;not null" json:"message_id"`
	Description     string         `gorm:"size:500;not null" json:"description"`
	FromID          uint           `gorm:"not null" json:"from_id"`
	AttachmentPaths codec.PathList `gorm:"type:text;not null" json:"attachment_paths"`
	FileNames       codec.PathList `gorm:"type:text;not null" json:"file_names"`
	CreatedAt       time.Time      `json:"created_at"`
}

// Counterpart returns the party of m that is not userID.
func (m *Message) Counterpart(userID uint) uint {
	if m.SenderID == userID {
		return m.ReceiverID
	}
	return m.SenderID
}

func (m *Message) Involves(userID uint) bool {
	return m.SenderID == userID || m.ReceiverID == userID
}
