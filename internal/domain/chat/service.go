package chat

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"
)

// UserVerifier is implemented by the user repository.
type UserVerifier interface {
	Verify(ctx context.Context, publicKey, nickname string) (bool, error)
}

// Broadcaster pushes accepted messages to connected websocket clients.
type Broadcaster interface {
	BroadcastNewMessage(msg *Message)
}

// Service handles the global chat log. Polling GET is the contract; the
// broadcaster is a best-effort fast path on top of it.
type Service struct {
	repo        Repository
	users       UserVerifier
	broadcaster Broadcaster
}

func NewService(repo Repository, users UserVerifier, broadcaster Broadcaster) *Service {
	return &Service{repo: repo, users: users, broadcaster: broadcaster}
}

// Post validates and appends a message. The (nickname, publicKey) pair must
// identify a registered user — nicknames alone are not trusted.
func (s *Service) Post(ctx context.Context, nickname, body, publicKey string) (*Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyMessage
	}
	if utf8.RuneCountInString(body) > MaxBodyLen {
		return nil, ErrMessageTooLong
	}

	ok, err := s.users.Verify(ctx, publicKey, nickname)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrVerificationFailed
	}

	msg := &Message{
		Nickname:      nickname,
		Body:          body,
		Timestamp:     time.Now(),
		UserPublicKey: publicKey,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastNewMessage(msg)
	}
	return msg, nil
}

// ListRecent returns the newest RecentWindow messages reordered oldest-first
// for display.
func (s *Service) ListRecent(ctx context.Context) ([]*Message, error) {
	msgs, err := s.repo.ListNewest(ctx, RecentWindow)
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}
