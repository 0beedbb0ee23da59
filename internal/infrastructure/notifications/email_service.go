package notifications

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"

	"github.com/you/notesvc/domain"
)

// EmailServiceImpl implements domain.NotificationService over SMTP
type EmailServiceImpl struct {
	dialer *gomail.Dialer
	host   string
	from   string
}

// NewEmailService creates a new SMTP notification service
func NewEmailService(host string, port int, username, password, from string) domain.NotificationService {
	return &EmailServiceImpl{
		dialer: gomail.NewDialer(host, port, username, password),
		host:   host,
		from:   from,
	}
}

// SendOTPEmail implements domain.NotificationService
func (s *EmailServiceImpl) SendOTPEmail(to, name, code string) error {
	content := fmt.Sprintf(`
		<p>Hello <b>%s</b>,</p>
		<p>Your OTP for HD Notes is:</p>
		<h1 style="text-align: center; color: #007bff;">%s</h1>
		<p>This OTP is valid for 10 minutes.</p>
		<p>If you did not request this, you can safely ignore this email.</p>
	`, name, code)

	return s.send(to, "Your OTP for HD Notes", wrapTemplate(content))
}

// SendWelcomeEmail implements domain.NotificationService
func (s *EmailServiceImpl) SendWelcomeEmail(to, name string) error {
	content := fmt.Sprintf(`
		<p>Welcome <b>%s</b>,</p>
		<p>Your account has been created and verified successfully. You can now start using HD Notes.</p>
		<p>Start creating your first note today!</p>
	`, name)

	return s.send(to, "Welcome to HD Notes!", wrapTemplate(content))
}

func (s *EmailServiceImpl) send(to, subject, body string) error {
	// If SMTP is not configured, log instead of sending
	if s.host == "" {
		log.Printf("[MOCK EMAIL] To: %s, Subject: %s", to, subject)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func wrapTemplate(content string) string {
	return fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #ddd; border-radius: 6px;">
		<h2 style="color: #007bff; text-align: center;">HD Notes</h2>
		<div style="margin-top: 20px;">%s</div>
		<hr style="margin: 30px 0; border: none; border-top: 1px solid #eee;">
		<p style="font-size: 13px; color: #555; text-align: center;">Best regards,<br>HD Notes Team</p>
	</div>`, content)
}
