package auth

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
)

// SendVerificationEmail is best-effort: when SMTP is not configured (local
// development) the link is only logged.
func SendVerificationEmail(to string, token string) {
	host := os.Getenv("SMTP_HOST")
	link := fmt.Sprintf("%s/api/auth/verify?token=%s", os.Getenv("APP_URL"), token)

	if host == "" {
		log.Printf("SMTP not configured, verification link for %s: %s", to, link)
		return
	}

	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	port := os.Getenv("SMTP_PORT")

	auth := smtp.PlainAuth("", from, password, host)

	subject := "Verify Your Account"
	body := fmt.Sprintf("Click the following link to verify your account:\n\n%s", link)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	if err := smtp.SendMail(host+":"+port, auth, from, []string{to}, message); err != nil {
		log.Println("SMTP error:", err)
	}
}
