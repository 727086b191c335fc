package repository

import (
	"smartsave/internal/models"

	"gorm.io/gorm"
)

type SettlementRepository struct {
	db *gorm.DB
}

func NewSettlementRepository(db *gorm.DB) *SettlementRepository {
	return &SettlementRepository{db: db}
}

func (r *SettlementRepository) Create(s *models.Settlement) error {
	return r.db.Create(s).Error
}

// ListByUser returns settlements where the user is payer or payee,
// ordered by id for stable output.
func (r *SettlementRepository) ListByUser(userID uint) ([]models.Settlement, error) {
	var settlements []models.Settlement
	err := r.db.
		Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Order("id").
		Find(&settlements).Error
	return settlements, err
}

func (r *SettlementRepository) CountByBillSplit(billSplitID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Settlement{}).
		Where("bill_split_id = ?", billSplitID).
		Count(&count).Error
	return count, err
}
