package models

import "time"

// BillSplit is a shared expense. TotalAmount is the immutable ground truth
// that participant shares and payments must reconcile against.
type BillSplit struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	TotalAmount float64   `gorm:"not null" json:"total_amount"`
	CreatorID   uint      `gorm:"not null;index" json:"creator_id"`
	GroupID     *uint     `gorm:"index" json:"group_id"`
	Category    string    `gorm:"size:50" json:"category"`
	Currency    string    `gorm:"size:10;default:'USD'" json:"currency"`
	Status      string    `gorm:"size:20;not null;default:'active'" json:"status"`
	PhotoURL    string    `gorm:"size:255" json:"photo_url"`
	Notes       string    `gorm:"type:text" json:"notes"`
	IsRecurring bool      `gorm:"default:false" json:"is_recurring"`
	Flagged     bool      `gorm:"default:false" json:"flagged"`
	CreatedAt   time.Time `json:"created_at"`

	Participants []SplitParticipant `gorm:"foreignKey:BillSplitID" json:"participants"`
}

// SplitParticipant is one user's row in a bill split: what they owe
// (share_amount), what they contributed (paid_amount), and the strategy
// used to derive the share.
type SplitParticipant struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	BillSplitID uint    `gorm:"not null;index" json:"bill_split_id"`
	UserID      uint    `gorm:"not null;index" json:"user_id"`
	PaidAmount  float64 `gorm:"default:0" json:"paid_amount"`
	ShareAmount float64 `gorm:"default:0" json:"share_amount"`
	SplitMethod string  `gorm:"size:20;default:'equal'" json:"split_method"`
	SplitValue  float64 `gorm:"default:1" json:"split_value"`
	Status      string  `gorm:"size:20;default:'pending'" json:"status"`
}
