package repository

import (
	"time"

	"smartsave/internal/models"

	"gorm.io/gorm"
)

// AnalyticsRepository serves the admin reporting aggregates.
type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

type CategoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type ProfessionAmount struct {
	Profession string  `json:"profession"`
	Amount     float64 `json:"amount"`
}

// SpendingTrends sums expense amounts per category since the cutoff.
func (r *AnalyticsRepository) SpendingTrends(since time.Time) ([]CategoryAmount, error) {
	var rows []CategoryAmount
	err := r.db.Model(&models.Transaction{}).
		Select("category, SUM(amount) AS amount").
		Where("type = ? AND date >= ?", "expense", since).
		Group("category").
		Scan(&rows).Error
	return rows, err
}

// SavingsByProfession sums savings-goal progress per user profession for
// goals whose deadline falls after the cutoff.
func (r *AnalyticsRepository) SavingsByProfession(since time.Time) ([]ProfessionAmount, error) {
	var rows []ProfessionAmount
	err := r.db.Model(&models.User{}).
		Select("users.profession AS profession, SUM(savings_goals.progress) AS amount").
		Joins("JOIN savings_goals ON savings_goals.user_id = users.id").
		Where("savings_goals.deadline >= ?", since).
		Group("users.profession").
		Scan(&rows).Error
	return rows, err
}

// TransactionVolume counts transactions per category since the cutoff.
func (r *AnalyticsRepository) TransactionVolume(since time.Time) ([]CategoryCount, error) {
	var rows []CategoryCount
	err := r.db.Model(&models.Transaction{}).
		Select("category, COUNT(id) AS count").
		Where("date >= ?", since).
		Group("category").
		Scan(&rows).Error
	return rows, err
}

// ProfessionSpending sums expense amounts per user profession since the cutoff.
func (r *AnalyticsRepository) ProfessionSpending(since time.Time) ([]ProfessionAmount, error) {
	var rows []ProfessionAmount
	err := r.db.Model(&models.User{}).
		Select("users.profession AS profession, SUM(transactions.amount) AS amount").
		Joins("JOIN transactions ON transactions.user_id = users.id").
		Where("transactions.type = ? AND transactions.date >= ?", "expense", since).
		Group("users.profession").
		Scan(&rows).Error
	return rows, err
}
