package file

import "errors"

var (
	ErrFileNotFound  = errors.New("file not found")
	ErrAccessDenied  = errors.New("file not found or access denied")
	ErrOwnerNotFound = errors.New("user not found")
	ErrDataTooLarge  = errors.New("file data exceeds maximum allowed size")
)
