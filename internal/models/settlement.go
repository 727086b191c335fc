package models

import "time"

// Settlement records a real-world payment between two users, optionally
// linked to a bill split for context. It is an audit log entry: recording
// one never mutates participant shares.
type Settlement struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FromUserID  uint      `gorm:"not null;index" json:"payer_id"`
	ToUserID    uint      `gorm:"not null;index" json:"payee_id"`
	Amount      float64   `gorm:"not null" json:"amount"`
	BillSplitID *uint     `gorm:"index" json:"split_id"`
	Method      string    `gorm:"size:50" json:"method"`
	Notes       string    `gorm:"type:text" json:"notes"`
	SettledAt   time.Time `gorm:"autoCreateTime" json:"settled_at"`
}
