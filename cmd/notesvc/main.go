package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/you/notesvc/internal/app"
	"github.com/you/notesvc/internal/config"
)

func main() {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
