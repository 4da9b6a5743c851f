package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite" // registers the pure-Go "sqlite" driver

	"bonkvault/internal/domain/chat"
	"bonkvault/internal/domain/file"
	"bonkvault/internal/domain/user"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{TranslateError: true},
	)
}

// Migrate creates or updates the schema for all entities.
// Unique indexes on users.public_key, users.nickname and files.public_link
// are the atomic gate against duplicate registration and link collisions.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&file.File{},
		&chat.Message{},
	)
}
