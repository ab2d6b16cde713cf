package repository

import (
	"absign/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(rev *models.Review) error {
	return r.db.Create(rev).Error
}

func (r *ReviewRepository) GetByID(id uint) (*models.Review, error) {
	var rev models.Review
	err := r.db.First(&rev, id).Error
	if err != nil {
		return nil, err
	}
	return &rev, nil
}

// ListApprovedByProduct returns approved reviews only; unapproved ones
// wait for moderation.
func (r *ReviewRepository) ListApprovedByProduct(productID string) ([]models.Review, error) {
	var list []models.Review
	err := r.db.Where("product_id = ? AND approved = ?", productID, true).
		Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *ReviewRepository) ListPending(limit, offset int) ([]models.Review, error) {
	var list []models.Review
	err := r.db.Where("approved = ?", false).
		Order("created_at ASC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *ReviewRepository) Approve(id uint) error {
	return r.db.Model(&models.Review{}).Where("id = ?", id).Update("approved", true).Error
}
