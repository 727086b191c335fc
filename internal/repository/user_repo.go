package repository

import (
	"strconv"
	"strings"

	"smartsave/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *models.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var u models.User
	err := r.db.First(&u, id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var u models.User
	err := r.db.Where("email = ?", email).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Update(u *models.User) error {
	return r.db.Save(u).Error
}

// Exists reports whether a user row exists for the given id.
func (r *UserRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) SetBanned(id uint, banned bool) error {
	res := r.db.Model(&models.User{}).Where("id = ?", id).Update("is_banned", banned)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) List() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("id").Find(&users).Error
	return users, err
}

func (r *UserRepository) CountRegistered() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("email IS NOT NULL AND is_banned = ?", false).
		Count(&count).Error
	return count, err
}

// Search finds users by exact email, exact id, or name fragment.
// Used by split UIs to pick participants.
func (r *UserRepository) Search(query string, limit int) ([]models.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	var users []models.User
	if strings.Contains(query, "@") && strings.Contains(query, ".") {
		err := r.db.Where("email = ?", strings.ToLower(query)).Limit(1).Find(&users).Error
		return users, err
	}
	if id, err := strconv.ParseUint(query, 10, 64); err == nil {
		err := r.db.Where("id = ?", uint(id)).Limit(1).Find(&users).Error
		return users, err
	}
	err := r.db.Where("name LIKE ?", "%"+query+"%").Limit(limit).Find(&users).Error
	return users, err
}
