package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/smtp"
	"strings"

	"staffhub/config"
)

// GenerateRandomCode generates a random numeric code of specified length
func GenerateRandomCode(length int) string {
	const charset = "0123456789"
	code := make([]byte, length)
	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			// Fallback to a default code in case of error
			return strings.Repeat("0", length)
		}
		code[i] = charset[num.Int64()]
	}
	return string(code)
}

// SMTPMailer sends transactional mail through the configured SMTP relay.
type SMTPMailer struct {
	cfg *config.Config
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// SendPasswordResetOTP emails a one-time code for the password reset flow.
func (m *SMTPMailer) SendPasswordResetOTP(email, code string) error {
	smtpCfg := m.cfg.SMTP
	auth := smtp.PlainAuth("", smtpCfg.Username, smtpCfg.Password, smtpCfg.Host)
	to := []string{email}
	msg := []byte(fmt.Sprintf(
		"To: %s\r\n"+
			"From: %s <%s>\r\n"+
			"Subject: StaffHub Password Reset\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n"+
			"<p>Your password reset code is: <strong>%s</strong></p>\r\n"+
			"<p>The code is valid for 5 minutes.</p>\r\n",
		email, smtpCfg.SenderName, smtpCfg.SenderEmail, code))

	addr := fmt.Sprintf("%s:%d", smtpCfg.Host, smtpCfg.Port)
	if err := smtp.SendMail(addr, auth, smtpCfg.SenderEmail, to, msg); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}
	return nil
}

// SendWelcomeEmail notifies a new employee of their account on the personal
// address captured during onboarding.
func (m *SMTPMailer) SendWelcomeEmail(personalEmail, companyEmail string) error {
	smtpCfg := m.cfg.SMTP
	auth := smtp.PlainAuth("", smtpCfg.Username, smtpCfg.Password, smtpCfg.Host)
	to := []string{personalEmail}
	msg := []byte(fmt.Sprintf(
		"To: %s\r\n"+
			"From: %s <%s>\r\n"+
			"Subject: Welcome to Dataq\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n"+
			"<p>Your StaffHub account <strong>%s</strong> has been created.</p>\r\n",
		personalEmail, smtpCfg.SenderName, smtpCfg.SenderEmail, companyEmail))

	addr := fmt.Sprintf("%s:%d", smtpCfg.Host, smtpCfg.Port)
	if err := smtp.SendMail(addr, auth, smtpCfg.SenderEmail, to, msg); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}
