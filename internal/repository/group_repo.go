package repository

import (
	"smartsave/internal/models"

	"gorm.io/gorm"
)

type GroupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// CreateWithMembers inserts the group and its membership rows atomically.
// memberIDs must already be deduplicated and include the creator.
func (r *GroupRepository) CreateWithMembers(g *models.Group, memberIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(g).Error; err != nil {
			return err
		}
		for _, userID := range memberIDs {
			m := models.GroupMember{GroupID: g.ID, UserID: userID}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID excludes soft-deleted groups (gorm.DeletedAt).
func (r *GroupRepository) GetByID(id uint) (*models.Group, error) {
	var g models.Group
	err := r.db.First(&g, id).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// ListByUser returns non-deleted groups the user is a member of.
func (r *GroupRepository) ListByUser(userID uint) ([]models.Group, error) {
	var groups []models.Group
	err := r.db.
		Joins("JOIN group_members ON group_members.group_id = groups.id").
		Where("group_members.user_id = ?", userID).
		Order("groups.id").
		Find(&groups).Error
	return groups, err
}

func (r *GroupRepository) MemberIDs(groupID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.GroupMember{}).
		Where("group_id = ?", groupID).
		Order("user_id").
		Pluck("user_id", &ids).Error
	return ids, err
}

func (r *GroupRepository) IsMember(groupID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	return count > 0, err
}

// UpdateWithMembers saves the group row and applies the membership delta
// atomically.
func (r *GroupRepository) UpdateWithMembers(g *models.Group, addIDs, removeIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(g).Error; err != nil {
			return err
		}
		for _, userID := range addIDs {
			m := models.GroupMember{GroupID: g.ID, UserID: userID}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
		}
		if len(removeIDs) > 0 {
			if err := tx.Where("group_id = ? AND user_id IN ?", g.ID, removeIDs).
				Delete(&models.GroupMember{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteCascade hard-deletes every bill split owned by the group (with its
// participants and settlements), removes all memberships, then soft-deletes
// the group itself. The whole cascade is one transaction.
func (r *GroupRepository) DeleteCascade(g *models.Group) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var splitIDs []uint
		if err := tx.Model(&models.BillSplit{}).
			Where("group_id = ?", g.ID).
			Pluck("id", &splitIDs).Error; err != nil {
			return err
		}
		if len(splitIDs) > 0 {
			if err := tx.Where("bill_split_id IN ?", splitIDs).
				Delete(&models.SplitParticipant{}).Error; err != nil {
				return err
			}
			if err := tx.Where("bill_split_id IN ?", splitIDs).
				Delete(&models.Settlement{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", splitIDs).
				Delete(&models.BillSplit{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("group_id = ?", g.ID).
			Delete(&models.GroupMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(g).Error
	})
}
