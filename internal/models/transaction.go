package models

import "time"

type Transaction struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Amount   float64   `gorm:"not null" json:"amount"`
	Category string    `gorm:"size:50;not null" json:"category"`
	Account  string    `gorm:"size:50;not null" json:"account"`
	Note     string    `gorm:"type:text" json:"note"`
	Date     time.Time `gorm:"not null" json:"date"`
	Type     string    `gorm:"size:10;not null;index" json:"type"` // income | expense
	UserID   uint      `gorm:"not null;index" json:"user_id"`
	Flagged  bool      `gorm:"default:false;not null" json:"flagged"`
}
