package user

import "time"

// User is an identity keyed by a browser-wallet public key. Created once on
// first wallet connection with a chosen nickname; immutable afterwards.
type User struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	PublicKey string    `gorm:"column:public_key;uniqueIndex;not null" json:"public_key"`
	Nickname  string    `gorm:"column:nickname;uniqueIndex;not null" json:"nickname"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (User) TableName() string { return "users" }
