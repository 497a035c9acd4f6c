package models

import (
	"time"

	"gorm.io/gorm"
)

type Article struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Title     string         `json:"title"`
	Slug      string         `json:"slug" gorm:"uniqueIndex"`
	Excerpt   string         `json:"excerpt"`
	Content   string         `json:"content"`
	CoverURL  string         `json:"coverUrl"`
	Published bool           `json:"published" gorm:"default:false"`
	Comments  []Comment      `json:"comments,omitempty" gorm:"foreignKey:ArticleID"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

type Comment struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	ArticleID uint           `json:"articleId"`
	Author    string         `json:"author"`
	Email     string         `json:"email"`
	Content   string         `json:"content"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
