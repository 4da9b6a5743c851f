package file

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, f *File) error
	ListByOwner(ctx context.Context, publicKey string) ([]*File, error)
	// DeleteOwned removes the file only when it belongs to the caller.
	// Returns the affected row count; zero means no such (file, owner) pair.
	DeleteOwned(ctx context.Context, fileID int64, publicKey string) (int64, error)
	// SetVisibility updates is_public and public_link in one conditional
	// statement scoped by ownership. Returns the affected row count.
	SetVisibility(ctx context.Context, fileID int64, publicKey string, isPublic bool, link *string) (int64, error)
	GetPublicByLink(ctx context.Context, link string) (*PublicFile, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, f *File) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *repository) ListByOwner(ctx context.Context, publicKey string) ([]*File, error) {
	var files []*File
	err := r.db.WithContext(ctx).
		Joins("JOIN users u ON u.id = files.user_id").
		Where("u.public_key = ?", publicKey).
		Order("files.upload_date DESC").
		Find(&files).Error
	return files, err
}

func (r *repository) DeleteOwned(ctx context.Context, fileID int64, publicKey string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id IN (SELECT id FROM users WHERE public_key = ?)", fileID, publicKey).
		Delete(&File{})
	return res.RowsAffected, res.Error
}

func (r *repository) SetVisibility(ctx context.Context, fileID int64, publicKey string, isPublic bool, link *string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&File{}).
		Where("id = ? AND user_id IN (SELECT id FROM users WHERE public_key = ?)", fileID, publicKey).
		Updates(map[string]interface{}{
			"is_public":   isPublic,
			"public_link": link,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) GetPublicByLink(ctx context.Context, link string) (*PublicFile, error) {
	var pf PublicFile
	err := r.db.WithContext(ctx).
		Table("files").
		Select("files.id, files.filename, files.filesize, files.filetype, files.base64data, files.upload_date, u.nickname AS uploader_nickname").
		Joins("JOIN users u ON u.id = files.user_id").
		Where("files.public_link = ? AND files.is_public = ?", link, true).
		Take(&pf).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pf, nil
}
