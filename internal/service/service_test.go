package service

import (
	"path/filepath"
	"testing"

	"smartsave/internal/database"
	"smartsave/internal/models"
	"smartsave/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway SQLite database with the full schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Password1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	u := &models.User{Name: name, Email: email, PasswordHash: string(hash)}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", name, err)
	}
	return u
}

func seedBannedUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()
	u := seedUser(t, db, name, email)
	if err := db.Model(u).Update("is_banned", true).Error; err != nil {
		t.Fatalf("failed to ban user %s: %v", name, err)
	}
	u.IsBanned = true
	return u
}

func newSplitService(db *gorm.DB) *SplitService {
	return NewSplitService(
		repository.NewSplitRepository(db),
		repository.NewGroupRepository(db),
		repository.NewUserRepository(db),
	)
}

func newGroupService(db *gorm.DB) *GroupService {
	return NewGroupService(
		repository.NewGroupRepository(db),
		repository.NewUserRepository(db),
	)
}

func newSettlementService(db *gorm.DB) *SettlementService {
	return NewSettlementService(
		repository.NewSettlementRepository(db),
		repository.NewSplitRepository(db),
		repository.NewUserRepository(db),
	)
}

func countRows(t *testing.T, db *gorm.DB, model any, query string, args ...any) int64 {
	t.Helper()
	var count int64
	if err := db.Model(model).Where(query, args...).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }
