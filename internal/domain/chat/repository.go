package chat

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, msg *Message) error
	// ListNewest returns up to limit messages, newest first. Ties on the
	// timestamp are broken by id so the window is stable under polling.
	ListNewest(ctx context.Context, limit int) ([]*Message, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, msg *Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *repository) ListNewest(ctx context.Context, limit int) ([]*Message, error) {
	var msgs []*Message
	err := r.db.WithContext(ctx).
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Find(&msgs).Error
	return msgs, err
}
