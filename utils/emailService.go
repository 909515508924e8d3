package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"vahan/config"
)

// SendEmail sends an HTML email through the configured SMTP account.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" || password == "" {
		log.Println("Email sender not configured, skipping email to", strings.Join(to, ","))
		return nil
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: RTO Portal <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	return nil
}

// SendPasswordResetEmail mails the OTP for the forgot-password flow.
func SendPasswordResetEmail(email, name, otp string) {
	body := fmt.Sprintf(`
		<p>Hello %s,</p>
		<p>Your password reset code is <b>%s</b>. It is valid for 10 minutes.</p>
		<p>If you did not request a reset, you can ignore this email.</p>
	`, name, otp)
	if err := SendEmail([]string{email}, "Password Reset Code", body); err != nil {
		log.Printf("Failed to send reset email to %s: %v", email, err)
	}
}
