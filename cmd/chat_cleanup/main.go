package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"

	"bonkvault/internal/config"
	"bonkvault/internal/database"
)

// One-shot retention pruning for the chat log. The listing window only ever
// shows the newest 50 messages, so rows past the retention horizon are dead
// weight. Run from cron.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	cutoff := time.Now().Add(-cfg.ChatRetention)
	res := db.Exec(`DELETE FROM chat_messages WHERE timestamp < ?`, cutoff)
	if res.Error != nil {
		log.Fatalf("cleanup chat_messages failed: %v", res.Error)
	}

	log.Printf("chat cleanup completed: deleted=%d cutoff=%s", res.RowsAffected, cutoff.Format(time.RFC3339))
}
