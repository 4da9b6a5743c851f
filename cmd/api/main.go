package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"bonkvault/internal/config"
	"bonkvault/internal/database"
	"bonkvault/internal/domain/chat"
	"bonkvault/internal/domain/file"
	"bonkvault/internal/domain/user"
	"bonkvault/internal/middleware"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := user.NewRepository(db)
	fileRepo := file.NewRepository(db)
	chatRepo := chat.NewRepository(db)

	hub := chat.NewHub()

	userService := user.NewService(userRepo)
	fileService := file.NewService(fileRepo, userRepo, cfg.MaxUploadBytes)
	chatService := chat.NewService(chatRepo, userRepo, hub)

	userHandler := user.NewHandler(userService)
	fileHandler := file.NewHandler(fileService)
	chatHandler := chat.NewHandler(chatService, hub)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())

	root := r.Group("/")
	{
		user.RegisterRoutes(root, userHandler)
		file.RegisterRoutes(root, fileHandler)
		chat.RegisterRoutes(root, chatHandler)
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
