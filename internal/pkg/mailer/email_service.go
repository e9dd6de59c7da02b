package mailer

import (
	"fmt"

	"pet-house-be/internal/pkg/logger"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendAdoptionOutcome(toEmail, petName string, accepted bool) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	frontendURL string
	logger      logger.ILogger
}

// NewEmailService returns a mailer that silently skips sending when host is empty,
// so local setups without SMTP keep working.
func NewEmailService(host string, port int, username, password, senderName, frontendURL string, logger logger.ILogger) IEmailService {
	var d *gomail.Dialer
	if host != "" {
		d = gomail.NewDialer(host, port, username, password)
	}

	return &emailService{
		dialer:      d,
		senderEmail: username,
		senderName:  senderName,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

func (s *emailService) SendAdoptionOutcome(toEmail, petName string, accepted bool) error {
	if s.dialer == nil {
		s.logger.Debug("MAILER", "SMTP not configured, skipping adoption email", map[string]interface{}{"to": toEmail})
		return nil
	}

	m := s.newMessage(toEmail)
	m.SetHeader("Subject", outcomeSubject(petName, accepted))
	m.SetBody("text/html", outcomeBody(petName, accepted, s.frontendURL))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send adoption outcome to %s: %w", toEmail, err)
	}

	s.logger.Info("MAILER", "Adoption outcome sent", map[string]interface{}{
		"to":       toEmail,
		"accepted": accepted,
	})
	return nil
}

func (s *emailService) newMessage(toEmail string) *gomail.Message {
	m := gomail.NewMessage()
	if s.senderName != "" {
		m.SetAddressHeader("From", s.senderEmail, s.senderName)
	} else {
		m.SetHeader("From", s.senderEmail)
	}
	m.SetHeader("To", toEmail)
	return m
}

func outcomeSubject(petName string, accepted bool) string {
	if accepted {
		return fmt.Sprintf("Your adoption request for %s was accepted", petName)
	}
	return fmt.Sprintf("Update on your adoption request for %s", petName)
}

func outcomeBody(petName string, accepted bool, frontendURL string) string {
	if accepted {
		return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Good news!</h2>
			<p>The owner accepted your request to adopt <strong>%s</strong>.</p>
			<p>They will reach out using the phone number and address you provided.</p>
			<a href="%s/dashboard/my-adoption-requests" style="background-color: #4CAF50; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">View request</a>
		</div>
	`, petName, frontendURL)
	}

	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Adoption request update</h2>
			<p>Unfortunately your request to adopt <strong>%s</strong> was not accepted.</p>
			<p>There are plenty of other pets waiting for a home.</p>
			<a href="%s/pet-listing" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Browse pets</a>
		</div>
	`, petName, frontendURL)
}
