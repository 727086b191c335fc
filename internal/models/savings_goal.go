package models

import "time"

type SavingsGoal struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Name     string    `gorm:"size:100;not null" json:"name"`
	Target   float64   `gorm:"not null" json:"target"`
	Progress float64   `gorm:"default:0" json:"progress"`
	Deadline time.Time `gorm:"not null" json:"deadline"`
	UserID   uint      `gorm:"not null;index" json:"user_id"`
}
