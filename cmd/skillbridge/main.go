package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/skillbridge/directory/internal/app"
)

func main() {
	// Local dev convenience; in production env vars come from the
	// environment itself.
	_ = godotenv.Load()

	if err := app.New().Run(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
