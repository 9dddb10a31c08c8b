package services

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

func sendEmail(to, subject, body string) error {
	host := os.Getenv("SMTP_HOST")
	portStr := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@ecommerce-api.local"
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		port = 587
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(host, port, user, pass)

	if err := d.DialAndSend(m); err != nil {
		log.Printf("Could not send email to %s: %v", to, err)
		return err
	}
	return nil
}

// SendVerificationEmail mails the 6-digit verification code. Delivery is
// fire-and-forget: no confirmation, no retry.
func SendVerificationEmail(to, code string) {
	body := `<h3>Verify your email</h3>
		<p>Your verification code is: <strong>` + code + `</strong></p>`

	go sendEmail(to, "Verify Your Email", body)
}

// SendPasswordResetEmail mails the reset link. Fire-and-forget.
func SendPasswordResetEmail(to, token string) {
	base := os.Getenv("PUBLIC_BASE_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	link := base + "/users/reset-password/?token=" + token
	body := `<h3>Reset Password</h3>
		<a href="` + link + `">Reset Password</a>`

	go sendEmail(to, "Reset Password", body)
}
