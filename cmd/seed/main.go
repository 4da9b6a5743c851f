package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"time"

	"bonkvault/internal/database"
	"bonkvault/internal/domain/chat"
	"bonkvault/internal/domain/file"
	"bonkvault/internal/domain/user"
)

// Seeds a local development database with demo wallets, files and chat
// history. Wipes existing data first.
func main() {
	db, err := database.Connect("bonkvault.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (files reference users)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM chat_messages")
	db.Exec("DELETE FROM files")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	nicknames := []string{"moonboy", "degen_dave", "pixelqueen"}
	users := make([]user.User, 0, len(nicknames))
	for i, nick := range nicknames {
		u := user.User{
			PublicKey: fmt.Sprintf("DemoWa11et%02dxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx", i+1),
			Nickname:  nick,
			CreatedAt: time.Now().Add(-time.Duration(len(nicknames)-i) * 24 * time.Hour),
		}
		db.Create(&u)
		users = append(users, u)
		log.Printf("User created: %s (%s)", u.Nickname, u.PublicKey)
	}

	// ================== FILES ==================
	log.Println("Creating files...")

	pngDot := base64.StdEncoding.EncodeToString([]byte("\x89PNG\r\n\x1a\nfakepixels"))
	fileRepo := file.NewRepository(db)
	userRepo := user.NewRepository(db)
	fileService := file.NewService(fileRepo, userRepo, 0)

	for i, u := range users {
		for j := 0; j < 2; j++ {
			f, err := fileService.Upload(context.Background(), file.UploadInput{
				Filename:   fmt.Sprintf("demo_%d_%d.png", i+1, j+1),
				Filesize:   int64(len(pngDot)),
				Filetype:   "image/png",
				Base64Data: pngDot,
				PublicKey:  u.PublicKey,
				IsPublic:   j == 0,
			})
			if err != nil {
				log.Fatalf("seed upload failed: %v", err)
			}
			if f.PublicLink != nil {
				log.Printf("File %d public link: %s", f.ID, *f.PublicLink)
			}
		}
	}

	// ================== CHAT ==================
	log.Println("Creating chat messages...")

	lines := []string{
		"gm everyone",
		"just uploaded my first file",
		"share links work great",
		"wen mobile app",
	}
	for i, line := range lines {
		u := users[i%len(users)]
		db.Create(&chat.Message{
			Nickname:      u.Nickname,
			Body:          line,
			Timestamp:     time.Now().Add(-time.Duration(len(lines)-i) * time.Minute),
			UserPublicKey: u.PublicKey,
		})
	}

	log.Println("Seed completed.")
}
