package chat

import "time"

const (
	// MaxBodyLen is the message length cap in characters.
	MaxBodyLen = 500
	// RecentWindow is the fixed size of the polled history window. Older
	// messages fall out of reach of the listing.
	RecentWindow = 50
)

// Message is one global-chat entry. Append-only; no edit or delete.
type Message struct {
	ID            int64     `gorm:"column:id;primaryKey" json:"id"`
	Nickname      string    `gorm:"column:nickname;not null" json:"nickname"`
	Body          string    `gorm:"column:message;type:varchar(500);not null" json:"message"`
	Timestamp     time.Time `gorm:"column:timestamp;index" json:"timestamp"`
	UserPublicKey string    `gorm:"column:user_public_key;not null" json:"user_public_key"`
}

func (Message) TableName() string { return "chat_messages" }
