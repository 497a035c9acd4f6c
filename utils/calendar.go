package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

var calendarClient = &http.Client{Timeout: 10 * time.Second}

// BookCalendarEvent pushes a booking to the external calendar API. Best
// effort, one shot; the appointment is already persisted when this runs.
func BookCalendarEvent(name, email string, dateTime time.Time, appointmentType string) error {
	apiURL := os.Getenv("CALENDAR_API_URL")
	if apiURL == "" {
		return fmt.Errorf("CALENDAR_API_URL is not set")
	}

	payload, err := json.Marshal(map[string]string{
		"name":     name,
		"email":    email,
		"dateTime": dateTime.Format(time.RFC3339),
		"type":     appointmentType,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, apiURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+os.Getenv("CALENDAR_API_KEY"))

	resp, err := calendarClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("calendar API returned status %d", resp.StatusCode)
	}
	return nil
}
