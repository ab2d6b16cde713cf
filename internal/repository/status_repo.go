package repository

import (
	"absign/internal/models"

	"gorm.io/gorm"
)

type StatusRepository struct {
	db *gorm.DB
}

func NewStatusRepository(db *gorm.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

func (r *StatusRepository) Create(s *models.StatusCheck) error {
	return r.db.Create(s).Error
}

func (r *StatusRepository) List(limit int) ([]models.StatusCheck, error) {
	var list []models.StatusCheck
	err := r.db.Order("timestamp DESC").Limit(limit).Find(&list).Error
	return list, err
}
