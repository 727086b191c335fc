package models

import (
	"time"
)

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"size:100;not null" json:"name"`
	Email        string     `gorm:"uniqueIndex;size:120;not null" json:"email"`
	Profession   string     `gorm:"size:100" json:"profession"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	IsAdmin      bool       `gorm:"default:false;not null" json:"isAdmin"`
	IsBanned     bool       `gorm:"default:false;not null" json:"isBanned"`
	LastLogin    *time.Time `json:"last_login"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"-"`

	// Relations
	BillSplits   []BillSplit        `gorm:"foreignKey:CreatorID" json:"-"`
	Shares       []SplitParticipant `gorm:"foreignKey:UserID" json:"-"`
	Transactions []Transaction      `gorm:"foreignKey:UserID" json:"-"`
	SavingsGoals []SavingsGoal      `gorm:"foreignKey:UserID" json:"-"`
}

// IsActive reports whether the user logged in within the last 30 days.
func (u *User) IsActive(now time.Time) bool {
	if u.LastLogin == nil {
		return false
	}
	return now.Sub(*u.LastLogin) <= 30*24*time.Hour
}
