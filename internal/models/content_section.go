package models

import "time"

// ContentSection is one editable block of the storefront pages. Writes
// are upserts keyed by SectionID, so repeated saves of the same section
// update in place instead of accumulating duplicates.
type ContentSection struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SectionID  string    `gorm:"size:128;uniqueIndex;not null" json:"section_id"`
	Content    string    `gorm:"type:text" json:"content"`
	FontSize   string    `gorm:"size:32" json:"font_size"`
	FontFamily string    `gorm:"size:128" json:"font_family"`
	PlainText  string    `gorm:"type:text" json:"plain_text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (ContentSection) TableName() string {
	return "content_sections"
}
