// Command migrate creates the users and tasks tables.
package main

import (
	"context"
	"log"
	"time"

	_ "github.com/lib/pq"

	"github.com/taskflow-api/taskflow/internal/config"
	"github.com/taskflow-api/taskflow/internal/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.OpenDB(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Println("Creating schema...")
	if err := database.CreateSchema(ctx, db); err != nil {
		log.Fatalf("failed to create schema: %v", err)
	}

	log.Println("Schema ready")
}
