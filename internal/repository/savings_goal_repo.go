package repository

import (
	"smartsave/internal/models"

	"gorm.io/gorm"
)

type SavingsGoalRepository struct {
	db *gorm.DB
}

func NewSavingsGoalRepository(db *gorm.DB) *SavingsGoalRepository {
	return &SavingsGoalRepository{db: db}
}

func (r *SavingsGoalRepository) Create(g *models.SavingsGoal) error {
	return r.db.Create(g).Error
}

func (r *SavingsGoalRepository) GetByID(id, userID uint) (*models.SavingsGoal, error) {
	var g models.SavingsGoal
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&g).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *SavingsGoalRepository) ListByUser(userID uint) ([]models.SavingsGoal, error) {
	var goals []models.SavingsGoal
	err := r.db.Where("user_id = ?", userID).Order("deadline").Find(&goals).Error
	return goals, err
}

func (r *SavingsGoalRepository) Update(g *models.SavingsGoal) error {
	return r.db.Save(g).Error
}

func (r *SavingsGoalRepository) Delete(id, userID uint) error {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.SavingsGoal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
