package models

import "time"

// Review is created unapproved; only approved reviews appear in the
// public product listing.
type Review struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProductID    string    `gorm:"size:128;not null;index" json:"product_id"`
	CustomerName string    `gorm:"size:255;not null" json:"customer_name"`
	Rating       int       `gorm:"not null" json:"rating"`
	Comment      string    `gorm:"type:text" json:"comment"`
	PhotoURL     string    `gorm:"size:512" json:"photo_url,omitempty"`
	Approved     bool      `gorm:"not null;default:false;index" json:"approved"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Review) TableName() string {
	return "reviews"
}
