package file

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"bonkvault/internal/domain/user"
)

// DefaultMaxDataBytes caps the base64 payload. The original accepted any
// size; the cap closes that gap without changing the wire contract.
const DefaultMaxDataBytes = 50 * 1024 * 1024 // 50 MB of base64 text

// Service handles upload, listing, deletion and share-link visibility.
type Service struct {
	repo         Repository
	users        user.Repository
	maxDataBytes int
}

func NewService(repo Repository, users user.Repository, maxDataBytes int) *Service {
	if maxDataBytes <= 0 {
		maxDataBytes = DefaultMaxDataBytes
	}
	return &Service{repo: repo, users: users, maxDataBytes: maxDataBytes}
}

type UploadInput struct {
	Filename   string
	Filesize   int64
	Filetype   string
	Base64Data string
	PublicKey  string
	IsPublic   bool
}

// Upload stores a new file row for an existing owner. When the file is
// public a fresh 128-bit share link is minted in the same insert, so the
// public/link invariant holds from the first write.
func (s *Service) Upload(ctx context.Context, in UploadInput) (*File, error) {
	if len(in.Base64Data) > s.maxDataBytes {
		return nil, ErrDataTooLarge
	}

	owner, err := s.users.GetByPublicKey(ctx, in.PublicKey)
	if errors.Is(err, user.ErrUserNotFound) {
		return nil, ErrOwnerNotFound
	}
	if err != nil {
		return nil, err
	}

	f := &File{
		UserID:     owner.ID,
		Filename:   in.Filename,
		Filesize:   in.Filesize,
		Filetype:   in.Filetype,
		Base64Data: in.Base64Data,
		UploadDate: time.Now(),
		IsPublic:   in.IsPublic,
	}
	if in.IsPublic {
		link, err := mintPublicLink()
		if err != nil {
			return nil, err
		}
		f.PublicLink = &link
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// List returns the caller's files, newest upload first. An unknown public
// key yields an empty list, matching the lookup-by-join semantics.
func (s *Service) List(ctx context.Context, publicKey string) ([]*File, error) {
	return s.repo.ListByOwner(ctx, publicKey)
}

// Delete removes a file through a single ownership-scoped statement. Zero
// affected rows collapses "no such file" and "not yours" into one NotFound
// answer so callers cannot probe foreign file IDs.
func (s *Service) Delete(ctx context.Context, fileID int64, publicKey string) error {
	rows, err := s.repo.DeleteOwned(ctx, fileID, publicKey)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrFileNotFound
	}
	return nil
}

// ToggleVisibility flips a file public or private. Enabling always mints a
// fresh link, revoking every previously shared one; disabling clears it.
// The update is one conditional statement — ownership is part of the WHERE,
// not a separate read.
func (s *Service) ToggleVisibility(ctx context.Context, fileID int64, publicKey string, makePublic bool) (*string, error) {
	var link *string
	if makePublic {
		minted, err := mintPublicLink()
		if err != nil {
			return nil, err
		}
		link = &minted
	}

	rows, err := s.repo.SetVisibility(ctx, fileID, publicKey, makePublic, link)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrAccessDenied
	}
	return link, nil
}

// ResolveLink serves the anonymous share view. Only rows that are currently
// public match; a link cleared by a toggle is dead immediately.
func (s *Service) ResolveLink(ctx context.Context, link string) (*PublicFile, error) {
	return s.repo.GetPublicByLink(ctx, link)
}

// mintPublicLink returns 16 random bytes as 32 hex chars. The link is the
// only guard on anonymous access, so it comes from crypto/rand.
func mintPublicLink() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate public link: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
