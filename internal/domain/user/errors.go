package user

import "errors"

var (
	ErrNicknameTaken = errors.New("nickname already taken")
	ErrUserExists    = errors.New("user already exists")
	ErrUserNotFound  = errors.New("user not found")
)
