package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Service handles wallet identity registration and lookup.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Check looks up a user by wallet public key. Returns (nil, nil) when the
// key is unknown — absence is a normal answer here, not an error.
func (s *Service) Check(ctx context.Context, publicKey string) (*User, error) {
	u, err := s.repo.GetByPublicKey(ctx, publicKey)
	if errors.Is(err, ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Register creates the user in a single INSERT. The unique indexes on
// nickname and public_key are the only duplicate gate: two concurrent
// registrations of the same nickname race on the index, not on a pre-check,
// so at most one can succeed. The follow-up read only decides which field
// collided for the error message.
func (s *Service) Register(ctx context.Context, publicKey, nickname string) (*User, error) {
	u := &User{
		PublicKey: strings.TrimSpace(publicKey),
		Nickname:  strings.TrimSpace(nickname),
		CreatedAt: time.Now(),
	}

	err := s.repo.Create(ctx, u)
	if err == nil {
		return u, nil
	}
	if !isUniqueConstraintError(err) {
		return nil, err
	}

	taken, checkErr := s.repo.NicknameExists(ctx, u.Nickname)
	if checkErr == nil && taken {
		return nil, ErrNicknameTaken
	}
	return nil, ErrUserExists
}

func isUniqueConstraintError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "unique failed")
}
