package repository

import (
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"smartsave/internal/database"
	"smartsave/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
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
		t.Fatalf("failed to seed user %s: %v", email, err)
	}
	return u
}

func TestUserSearch(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	alice := seedUser(t, db, "Alice Smith", "alice@example.com")
	seedUser(t, db, "Alicia Jones", "alicia@example.com")
	bob := seedUser(t, db, "Bob", "bob@example.com")

	t.Run("by exact email", func(t *testing.T) {
		users, err := repo.Search("Alice@Example.com", 10)
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(users) != 1 || users[0].ID != alice.ID {
			t.Errorf("got %v, want only alice", users)
		}
	})

	t.Run("by numeric id", func(t *testing.T) {
		users, err := repo.Search(strconv.FormatUint(uint64(bob.ID), 10), 10)
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(users) != 1 || users[0].ID != bob.ID {
			t.Errorf("got %v, want only bob", users)
		}
	})

	t.Run("by name fragment", func(t *testing.T) {
		users, err := repo.Search("Alic", 10)
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(users) != 2 {
			t.Errorf("expected 2 matches for name fragment, got %d", len(users))
		}
	})

	t.Run("respects limit", func(t *testing.T) {
		users, err := repo.Search("Alic", 1)
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(users) != 1 {
			t.Errorf("expected 1 match with limit 1, got %d", len(users))
		}
	})

	t.Run("blank query returns nothing", func(t *testing.T) {
		users, err := repo.Search("   ", 10)
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(users) != 0 {
			t.Errorf("expected 0 matches, got %d", len(users))
		}
	})
}

func TestSetBanned(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	u := seedUser(t, db, "Alice", "alice@example.com")

	if err := repo.SetBanned(u.ID, true); err != nil {
		t.Fatalf("SetBanned failed: %v", err)
	}
	got, err := repo.GetByID(u.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if !got.IsBanned {
		t.Error("expected user to be banned")
	}

	if err := repo.SetBanned(99999, true); err != gorm.ErrRecordNotFound {
		t.Errorf("expected ErrRecordNotFound for unknown user, got %v", err)
	}
}

func TestTransactionSummary(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	alice := seedUser(t, db, "Alice", "alice@example.com")
	bob := seedUser(t, db, "Bob", "bob@example.com")

	add := func(userID uint, txnType string, amount float64) {
		t.Helper()
		err := repo.Create(&models.Transaction{
			Amount:   amount,
			Category: "general",
			Account:  "cash",
			Date:     time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			Type:     txnType,
			UserID:   userID,
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}
	add(alice.ID, "income", 3000)
	add(alice.ID, "expense", 1200)
	add(alice.ID, "expense", 300)
	add(bob.ID, "income", 999)

	s, err := repo.SummaryByUser(alice.ID)
	if err != nil {
		t.Fatalf("SummaryByUser failed: %v", err)
	}
	if s.TotalIncome != 3000 {
		t.Errorf("total income = %v, want 3000", s.TotalIncome)
	}
	if s.TotalExpense != 1500 {
		t.Errorf("total expense = %v, want 1500", s.TotalExpense)
	}
	if s.Balance != 1500 {
		t.Errorf("balance = %v, want 1500", s.Balance)
	}

	empty, err := repo.SummaryByUser(99999)
	if err != nil {
		t.Fatalf("SummaryByUser failed: %v", err)
	}
	if empty.TotalIncome != 0 || empty.TotalExpense != 0 || empty.Balance != 0 {
		t.Errorf("expected zeroed summary for unknown user, got %+v", empty)
	}
}
