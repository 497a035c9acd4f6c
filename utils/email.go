package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/gomail.v2"
)

const defaultSenderName = "Lumicoach"

// SendEmail delivers a transactional message over SMTP. The body is the
// inner HTML only; the shared platform layout (header and signature) is
// applied here so every mail looks the same.
func SendEmail(to, subject, body string) error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	senderName := os.Getenv("EMAIL_SENDER_NAME")
	if senderName == "" {
		senderName = defaultSenderName
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", os.Getenv("EMAIL_USER"), senderName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", renderLayout(senderName, body))

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_PASS"),
	)

	return d.DialAndSend(m)
}

func renderLayout(senderName, inner string) string {
	return fmt.Sprintf(`
		<div style="font-family:sans-serif;max-width:600px;margin:0 auto">
			%s
			<p>À bientôt,</p>
			<p>L'équipe %s</p>
		</div>
	`, inner, senderName)
}
