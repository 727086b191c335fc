package repository

import (
	"smartsave/internal/models"

	"gorm.io/gorm"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(t *models.Transaction) error {
	return r.db.Create(t).Error
}

func (r *TransactionRepository) GetByID(id, userID uint) (*models.Transaction, error) {
	var t models.Transaction
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TransactionRepository) ListByUser(userID uint) ([]models.Transaction, error) {
	var txns []models.Transaction
	err := r.db.Where("user_id = ?", userID).Order("date DESC, id DESC").Find(&txns).Error
	return txns, err
}

func (r *TransactionRepository) Update(t *models.Transaction) error {
	return r.db.Save(t).Error
}

func (r *TransactionRepository) Delete(id, userID uint) error {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Transaction{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Summary holds per-type totals for one user.
type Summary struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Balance      float64 `json:"balance"`
}

func (r *TransactionRepository) SummaryByUser(userID uint) (*Summary, error) {
	var s Summary
	err := r.db.Model(&models.Transaction{}).
		Where("user_id = ? AND type = ?", userID, "income").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&s.TotalIncome).Error
	if err != nil {
		return nil, err
	}
	err = r.db.Model(&models.Transaction{}).
		Where("user_id = ? AND type = ?", userID, "expense").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&s.TotalExpense).Error
	if err != nil {
		return nil, err
	}
	s.Balance = s.TotalIncome - s.TotalExpense
	return &s, nil
}
