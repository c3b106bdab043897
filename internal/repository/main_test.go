package repository

import (
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"skillswap/internal/database"
	"skillswap/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	// Set environment to test
	os.Setenv("APP_ENV", "test")

	var err error
	testDB, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(testDB); err != nil {
		log.Fatalf("failed to migrate test database: %v", err)
	}

	code := m.Run()
	os.Exit(code)
}

// createTestUser inserts a user with a unique username and email.
func createTestUser(t *testing.T, prefix string) *models.User {
	t.Helper()
	ts := time.Now().UnixNano()
	user := &models.User{
		Username: fmt.Sprintf("%s_%d", prefix, ts%1e9),
		Email:    fmt.Sprintf("%s_%d@example.com", prefix, ts),
	}
	if err := testDB.Create(user).Error; err != nil {
		t.Fatalf("creating test user: %v", err)
	}
	return user
}

// createTestSkill inserts a skill with a unique name.
func createTestSkill(t *testing.T, prefix string) *models.Skill {
	t.Helper()
	skill := &models.Skill{
		Name:        fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano()%1e9),
		Description: "test skill",
	}
	if err := testDB.Create(skill).Error; err != nil {
		t.Fatalf("creating test skill: %v", err)
	}
	return skill
}
