package graph

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/lumicoach/coaching-api/db"
	"github.com/lumicoach/coaching-api/models"
	"github.com/lumicoach/coaching-api/utils"
)

func resolveAppointments(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireAdmin(p.Context); err != nil {
		return nil, err
	}

	var appointments []models.Appointment
	if err := db.DB.Order("date_time asc").Find(&appointments).Error; err != nil {
		return nil, errors.New("Failed to fetch appointments")
	}
	return appointments, nil
}

func resolveCreateAppointment(p graphql.ResolveParams) (interface{}, error) {
	var in appointmentInput
	if err := decodeInput(p.Args["input"], &in); err != nil {
		return nil, err
	}
	if in.Name == "" || in.Email == "" {
		return nil, errors.New("Missing required fields")
	}

	// Exact-slot conflict check. No lock between check and insert; the
	// race window on the boundary is accepted.
	var existing []models.Appointment
	if err := db.DB.Where("date_time = ?", in.DateTime).Find(&existing).Error; err != nil {
		return nil, errors.New("Failed to check availability")
	}
	if slotTaken(in.DateTime, existing) {
		return nil, errors.New("Ce créneau est déjà réservé.")
	}

	appointment := models.Appointment{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		DateTime: in.DateTime,
		Type:     models.AppointmentType(in.Type),
		Notes:    in.Notes,
	}
	if err := db.DB.Create(&appointment).Error; err != nil {
		return nil, errors.New("Failed to create appointment")
	}

	// Confirmation and calendar push are best effort; the booking stands
	// even when they fail.
	if err := utils.BookCalendarEvent(in.Name, in.Email, in.DateTime, string(appointment.Type)); err != nil {
		log.Printf("Calendar booking failed for appointment %d: %v", appointment.ID, err)
	}
	if err := sendConfirmationEmail(&appointment); err != nil {
		log.Printf("Confirmation email failed for appointment %d: %v", appointment.ID, err)
	}

	return appointment, nil
}

func resolveDeleteAppointment(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireAdmin(p.Context); err != nil {
		return nil, err
	}

	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}

	var appointment models.Appointment
	if db.DB.First(&appointment, id).RowsAffected == 0 {
		return nil, errors.New("Appointment not found")
	}
	if err := db.DB.Delete(&appointment).Error; err != nil {
		return nil, errors.New("Failed to delete appointment")
	}
	return true, nil
}

// slotTaken reports whether any existing booking occupies the exact
// instant. Equality only; overlapping durations are out of scope.
func slotTaken(at time.Time, existing []models.Appointment) bool {
	for _, appointment := range existing {
		if appointment.DateTime.Equal(at) {
			return true
		}
	}
	return false
}

func sendConfirmationEmail(appointment *models.Appointment) error {
	subject := "Votre rendez-vous est confirmé"
	body := fmt.Sprintf(`
		<p>Bonjour %s,</p>
		<p>Votre rendez-vous est confirmé.</p>
		<ul>
			<li><strong>Date :</strong> %s</li>
			<li><strong>Type de séance :</strong> %s</li>
		</ul>
	`, appointment.Name, appointment.DateTime.Format("2006-01-02 15:04"), appointment.Type)

	return utils.SendEmail(appointment.Email, subject, body)
}
