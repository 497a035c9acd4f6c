package models

import (
	"time"

	"gorm.io/gorm"
)

type Coupon struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Code           string         `json:"code" gorm:"uniqueIndex"`
	Type           string         `json:"type"` // "FIXED" or "PERCENT"
	Value          float64        `json:"value"`
	Currency       string         `json:"currency"`
	ExpirationDate time.Time      `json:"expirationDate"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}
