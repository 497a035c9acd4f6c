package graph

import (
	"testing"
	"time"

	"github.com/lumicoach/coaching-api/models"
)

func TestSlotTaken(t *testing.T) {
	slot := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	booked := []models.Appointment{{Name: "Première réservation", Email: "first@example.com", DateTime: slot}}

	tests := []struct {
		name     string
		at       time.Time
		existing []models.Appointment
		want     bool
	}{
		{"identical instant conflicts", slot, booked, true},
		{"same instant in another zone conflicts", slot.In(time.FixedZone("CET", 3600)), booked, true},
		{"one second later is free", slot.Add(time.Second), booked, false},
		{"one second earlier is free", slot.Add(-time.Second), booked, false},
		{"no bookings at all", slot, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := slotTaken(tt.at, tt.existing); got != tt.want {
				t.Errorf("slotTaken(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}
