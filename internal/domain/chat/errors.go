package chat

import "errors"

var (
	ErrEmptyMessage       = errors.New("message is empty")
	ErrMessageTooLong     = errors.New("message too long (max 500 characters)")
	ErrVerificationFailed = errors.New("user verification failed")
)
