package db

import (
	"log"

	"postlink/internal/config"
	"postlink/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Init(cfg *config.Config) *gorm.DB {
	database, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		// Surface driver unique-constraint violations as gorm.ErrDuplicatedKey
		// so the services can map them to conflicts.
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	err = database.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Vote{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	return database
}
