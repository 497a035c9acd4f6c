package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/lumicoach/coaching-api/db"
	"github.com/lumicoach/coaching-api/models"
	"github.com/lumicoach/coaching-api/utils"
	"github.com/robfig/cron/v3"
)

// StartCronJobs initializes and starts the cron scheduler for appointment reminders
func StartCronJobs() {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()
	// Run every hour to remind bookings happening the next day
	_, err := c.AddFunc("@hourly", sendAppointmentReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
}

// sendAppointmentReminders checks for appointments and sends reminders
func sendAppointmentReminders() {
	var appointments []models.Appointment
	now := time.Now()
	// Look for appointments starting in roughly 24 hours
	startWindow := now.Add(23 * time.Hour)
	endWindow := now.Add(24 * time.Hour)

	err := db.DB.
		Where("date_time BETWEEN ? AND ?", startWindow, endWindow).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	for _, appointment := range appointments {
		if err := sendReminderEmail(&appointment); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %d to %s", appointment.ID, appointment.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(appointment *models.Appointment) error {
	subject := "Rappel : votre rendez-vous de demain"
	body := fmt.Sprintf(`
		<p>Bonjour %s,</p>
		<p>Petit rappel : votre rendez-vous a lieu demain.</p>
		<ul>
			<li><strong>Date :</strong> %s</li>
			<li><strong>Type de séance :</strong> %s</li>
		</ul>
		<p>Si vous devez annuler ou reporter, contactez-nous au plus vite.</p>
	`, appointment.Name, appointment.DateTime.Format("2006-01-02 15:04"), appointment.Type)

	return utils.SendEmail(appointment.Email, subject, body)
}
