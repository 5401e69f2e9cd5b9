package main

import (
	"log"

	"postlink/internal/config"
	"postlink/internal/db"
	"postlink/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading config from system env vars")
	}

	cfg := config.Load()

	database := db.Init(cfg)

	r := router.New(database, cfg)

	log.Printf("postlink server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
