package models

import (
	"time"

	"gorm.io/gorm"
)

// Group is a named collection of users that can own bill splits.
// Deletion is a soft delete: the row is retained for history but excluded
// from all lookups and listings.
type Group struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	CreatorID uint           `gorm:"not null;index" json:"creator_id"`
	Type      string         `gorm:"size:20;not null;default:'Custom'" json:"type"`
	Currency  string         `gorm:"size:10;default:'USD'" json:"currency"`
	IconURL   string         `gorm:"size:255" json:"icon_url"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Members []GroupMember `gorm:"foreignKey:GroupID" json:"-"`
}

// GroupMember is the (group, user) join row. Existence means the user may
// participate in the group's bill splits.
type GroupMember struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	GroupID uint `gorm:"not null;uniqueIndex:idx_group_user" json:"group_id"`
	UserID  uint `gorm:"not null;uniqueIndex:idx_group_user" json:"user_id"`
}
