package models

import (
	"time"

	"gorm.io/gorm"
)

type AppointmentType string

const (
	TypeDiscovery  AppointmentType = "discovery"
	TypeIndividual AppointmentType = "individual"
	TypeGroup      AppointmentType = "group"
	TypeCorporate  AppointmentType = "corporate"
)

type Appointment struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	DateTime  time.Time       `json:"dateTime" gorm:"index"`
	Type      AppointmentType `json:"type"`
	Notes     string          `json:"notes"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	DeletedAt gorm.DeletedAt  `json:"-" gorm:"index"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Type == "" {
		a.Type = TypeDiscovery
	}
	return nil
}
