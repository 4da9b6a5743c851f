package user

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByPublicKey(ctx context.Context, publicKey string) (*User, error)
	NicknameExists(ctx context.Context, nickname string) (bool, error)
	// Verify reports whether (publicKey, nickname) identifies a registered
	// user. Used by the chat log to gate message posting.
	Verify(ctx context.Context, publicKey, nickname string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) GetByPublicKey(ctx context.Context, publicKey string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).Where("public_key = ?", publicKey).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) NicknameExists(ctx context.Context, nickname string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&User{}).
		Where("nickname = ?", nickname).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Verify(ctx context.Context, publicKey, nickname string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&User{}).
		Where("public_key = ? AND nickname = ?", publicKey, nickname).
		Count(&count).Error
	return count > 0, err
}
