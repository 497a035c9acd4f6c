package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

var smsClient = &http.Client{Timeout: 10 * time.Second}

// SendSMS posts a message to the SMS gateway. One shot, no retry; the
// caller treats any error as a final delivery failure.
func SendSMS(to, message string) error {
	apiURL := os.Getenv("SMS_API_URL")
	if apiURL == "" {
		return fmt.Errorf("SMS_API_URL is not set")
	}

	payload, err := json.Marshal(map[string]string{
		"to":      to,
		"message": message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, apiURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+os.Getenv("SMS_API_KEY"))

	resp, err := smsClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("SMS gateway returned status %d", resp.StatusCode)
	}
	return nil
}
