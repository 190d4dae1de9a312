package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// SMTPNotificationService sends complaint lifecycle emails over SMTP.
type SMTPNotificationService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPNotificationService(config SMTPConfig) *SMTPNotificationService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPNotificationService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPNotificationService) SendStatusChangedEmail(to, reference, oldStatus, newStatus string) error {
	subject := fmt.Sprintf("Complaint %s: status updated", reference)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Complaint Status Updated</h2>
			<p>Your complaint <strong>%s</strong> has moved from <strong>%s</strong> to <strong>%s</strong>.</p>
			<p>You will receive another notification when the status changes again.</p>
		</body>
		</html>
	`, reference, oldStatus, newStatus)

	plainBody := fmt.Sprintf(`
Complaint Status Updated

Your complaint %s has moved from %s to %s.

You will receive another notification when the status changes again.
	`, reference, oldStatus, newStatus)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPNotificationService) SendComplaintReceivedEmail(to, reference string) error {
	subject := fmt.Sprintf("Complaint %s received", reference)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Complaint Received</h2>
			<p>Your complaint has been registered with reference <strong>%s</strong>.</p>
			<p>Keep this reference for follow-up. We will notify you as the status changes.</p>
		</body>
		</html>
	`, reference)

	plainBody := fmt.Sprintf(`
Complaint Received

Your complaint has been registered with reference %s.

Keep this reference for follow-up. We will notify you as the status changes.
	`, reference)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPNotificationService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	return nil
}
