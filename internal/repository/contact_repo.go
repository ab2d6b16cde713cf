package repository

import (
	"absign/internal/models"

	"gorm.io/gorm"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(c *models.Contact) error {
	return r.db.Create(c).Error
}

func (r *ContactRepository) List(limit, offset int) ([]models.Contact, error) {
	var list []models.Contact
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}
