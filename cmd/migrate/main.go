package main

import (
	"log"

	"github.com/snapmenu/backend/config"
	"github.com/snapmenu/backend/internal/database"
)

// Brings the schema up to date and exits. database.New runs the migration
// on open, so this is just connect-and-report for deploy pipelines.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := database.New(cfg); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migration complete")
}
