package main

import (
	"log"
	"time"

	"eventstay/internal/config"
	"eventstay/internal/database"
	"eventstay/internal/domain"
)

// Removes sessions whose token has already expired. Tokens are issued with
// JWT_TTL, so a session older than that can no longer authenticate.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	cutoff := time.Now().Add(-cfg.JWTTTL)
	res := db.Where("created_at < ?", cutoff).Delete(&domain.Session{})
	if res.Error != nil {
		log.Fatalf("cleanup sessions failed: %v", res.Error)
	}

	log.Printf("auth cleanup completed: sessions=%d cutoff=%s", res.RowsAffected, cutoff.Format(time.RFC3339))
}
