package repository

import (
	"errors"

	"absign/internal/models"

	"gorm.io/gorm"
)

type ContentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// Upsert saves a content section, updating in place when the section_id
// already exists so repeated saves never create duplicates.
func (r *ContentRepository) Upsert(s *models.ContentSection) (*models.ContentSection, error) {
	var existing models.ContentSection
	err := r.db.Where("section_id = ?", s.SectionID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := r.db.Create(s).Error; err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	existing.Content = s.Content
	existing.FontSize = s.FontSize
	existing.FontFamily = s.FontFamily
	existing.PlainText = s.PlainText
	if err := r.db.Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

func (r *ContentRepository) GetBySectionID(sectionID string) (*models.ContentSection, error) {
	var s models.ContentSection
	err := r.db.Where("section_id = ?", sectionID).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ContentRepository) ListAll() ([]models.ContentSection, error) {
	var list []models.ContentSection
	err := r.db.Order("section_id ASC").Find(&list).Error
	return list, err
}
