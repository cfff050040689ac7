package utils

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailService sends transactional email through SendGrid. With no API
// key configured the service is disabled and sends become no-ops.
type EmailService struct {
	client *sendgrid.Client
	sender string
}

// NewEmailService initializes and returns a new EmailService instance
func NewEmailService(apiKey, sender string) *EmailService {
	if apiKey == "" {
		log.Warn().Msg("SENDGRID_API_KEY is not set, outgoing email is disabled")
		return &EmailService{sender: sender}
	}
	return &EmailService{
		client: sendgrid.NewSendClient(apiKey),
		sender: sender,
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	if es.client == nil {
		log.Debug().Str("to", toEmail).Msg("email disabled, skipping send")
		return nil
	}

	from := mail.NewEmail("Technocy", es.sender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, htmlContent, htmlContent)

	resp, err := es.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("failed to send email: sendgrid returned status %d", resp.StatusCode)
	}

	log.Info().Str("to", toEmail).Str("subject", subject).Msg("email sent")
	return nil
}

// SendPaymentReceiptEmail sends a receipt after a recorded payment
func (es *EmailService) SendPaymentReceiptEmail(toEmail, transactionID string, amount float64) error {
	subject := "Payment Received"
	htmlContent := fmt.Sprintf(
		"<strong>Dear Customer,</strong><br><br>Thank you for your purchase! Your payment (transaction: %s) of <strong>$%.2f</strong> has been recorded.<br><br>Thank you for shopping with us!",
		transactionID,
		amount,
	)

	return es.SendEmail(toEmail, subject, htmlContent)
}
