package file

import "time"

// File is an uploaded image stored as base64 text. The owner is fixed at
// creation. is_public and public_link are always written together: a public
// file always carries a link, a private one never does.
type File struct {
	ID         int64     `gorm:"column:id;primaryKey" json:"id"`
	UserID     int64     `gorm:"column:user_id;not null;index" json:"-"`
	Filename   string    `gorm:"column:filename;not null" json:"filename"`
	Filesize   int64     `gorm:"column:filesize;not null" json:"filesize"`
	Filetype   string    `gorm:"column:filetype;not null" json:"filetype"`
	Base64Data string    `gorm:"column:base64data;type:text" json:"base64data"`
	UploadDate time.Time `gorm:"column:upload_date" json:"upload_date"`
	IsPublic   bool      `gorm:"column:is_public;not null;default:false" json:"is_public"`
	PublicLink *string   `gorm:"column:public_link;uniqueIndex" json:"public_link"`
}

func (File) TableName() string { return "files" }

// PublicFile is the anonymous view served through a share link.
type PublicFile struct {
	ID               int64     `json:"id"`
	Filename         string    `json:"filename"`
	Filesize         int64     `json:"filesize"`
	Filetype         string    `json:"filetype"`
	Base64Data       string    `json:"base64data"`
	UploadDate       time.Time `json:"upload_date"`
	UploaderNickname string    `json:"uploader_nickname"`
}
