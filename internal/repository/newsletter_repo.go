package repository

import (
	"absign/internal/models"

	"gorm.io/gorm"
)

type NewsletterRepository struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) *NewsletterRepository {
	return &NewsletterRepository{db: db}
}

func (r *NewsletterRepository) GetByEmail(email string) (*models.NewsletterSubscriber, error) {
	var s models.NewsletterSubscriber
	err := r.db.Where("email = ?", email).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *NewsletterRepository) Create(s *models.NewsletterSubscriber) error {
	return r.db.Create(s).Error
}
