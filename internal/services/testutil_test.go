package services

import (
	"fmt"
	"testing"

	"postlink/internal/config"
	"postlink/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	if err := database.AutoMigrate(&models.User{}, &models.Post{}, &models.Vote{}); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	return database
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:          "test-secret",
		Algorithm:          "HS256",
		TokenExpireMinutes: 30,
	}
}

var userSeq int

// registerUser creates a user through the service so the stored password is
// properly hashed.
func registerUser(t *testing.T, users *UserService) *models.User {
	t.Helper()
	userSeq++
	user, err := users.Register(fmt.Sprintf("user%d@example.com", userSeq), "pw123")
	if err != nil {
		t.Fatalf("registering fixture user: %v", err)
	}
	return user
}
