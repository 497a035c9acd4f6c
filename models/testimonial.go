package models

import (
	"time"

	"gorm.io/gorm"
)

type Testimonial struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Author    string         `json:"author"`
	Role      string         `json:"role"`
	Content   string         `json:"content"`
	Rating    float64        `json:"rating" gorm:"type:decimal(2,1)"`
	AvatarURL string         `json:"avatarUrl"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate clamps the rating into the 1-5 star range.
func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.Rating < 1.0 {
		t.Rating = 1.0
	} else if t.Rating > 5.0 {
		t.Rating = 5.0
	}
	return nil
}
