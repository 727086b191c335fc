package repository

import (
	"smartsave/internal/models"

	"gorm.io/gorm"
)

type SplitRepository struct {
	db *gorm.DB
}

func NewSplitRepository(db *gorm.DB) *SplitRepository {
	return &SplitRepository{db: db}
}

// CreateWithParticipants inserts the bill split and its participant rows in
// one transaction: either every row commits or none do.
func (r *SplitRepository) CreateWithParticipants(bs *models.BillSplit, participants []models.SplitParticipant) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(bs).Error; err != nil {
			return err
		}
		for i := range participants {
			participants[i].BillSplitID = bs.ID
			if err := tx.Create(&participants[i]).Error; err != nil {
				return err
			}
		}
		bs.Participants = participants
		return nil
	})
}

func (r *SplitRepository) GetByID(id uint) (*models.BillSplit, error) {
	var bs models.BillSplit
	err := r.db.Preload("Participants").First(&bs, id).Error
	if err != nil {
		return nil, err
	}
	return &bs, nil
}

// ListByUser returns bill splits the user participates in.
func (r *SplitRepository) ListByUser(userID uint) ([]models.BillSplit, error) {
	var splits []models.BillSplit
	err := r.db.Preload("Participants").
		Joins("JOIN split_participants ON split_participants.bill_split_id = bill_splits.id").
		Where("split_participants.user_id = ?", userID).
		Group("bill_splits.id").
		Order("bill_splits.id").
		Find(&splits).Error
	return splits, err
}

func (r *SplitRepository) GetParticipant(billSplitID, userID uint) (*models.SplitParticipant, error) {
	var p models.SplitParticipant
	err := r.db.Where("bill_split_id = ? AND user_id = ?", billSplitID, userID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SaveUpdate persists split field changes and participant patches atomically.
func (r *SplitRepository) SaveUpdate(bs *models.BillSplit, participants []*models.SplitParticipant) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Participants").Save(bs).Error; err != nil {
			return err
		}
		for _, p := range participants {
			if err := tx.Save(p).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteCascade removes the bill split with its participants and any
// settlements referencing it, in one transaction.
func (r *SplitRepository) DeleteCascade(bs *models.BillSplit) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bill_split_id = ?", bs.ID).
			Delete(&models.SplitParticipant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("bill_split_id = ?", bs.ID).
			Delete(&models.Settlement{}).Error; err != nil {
			return err
		}
		return tx.Delete(bs).Error
	})
}

func (r *SplitRepository) CountParticipants(billSplitID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.SplitParticipant{}).
		Where("bill_split_id = ?", billSplitID).
		Count(&count).Error
	return count, err
}
