package models

import "time"

// User is one chat-platform identity. ExternalID is the stable Telegram user
// id; everything else is last-seen, best-effort data. Username, ChatroomID and
// Country are pointers so an absent value stays NULL and never clobbers a
// previously stored one on upsert.
type User struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	ExternalID string `gorm:"uniqueIndex;not null"`
	Username   *string
	ChatroomID *string
	Country    *string // canonical code, e.g. "PH", "US"
}
