package utils

import (
	"finacademy/config"
	"finacademy/models"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendContactNotification forwards a new contact message to the staff inbox.
func SendContactNotification(msg models.ContactMessage) error {
	if config.AppConfig.SendgridKey == "" {
		return nil // notifications disabled
	}

	subject := msg.Subject
	if subject == "" {
		subject = "New contact message"
	}

	from := mail.NewEmail("FinAcademy", config.AppConfig.EmailSender)
	to := mail.NewEmail("Support", config.AppConfig.ContactInbox)

	plain := fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message)
	html := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px;">
			<h2 style="color: #00004D;">New contact message</h2>
			<p><strong>From:</strong> %s &lt;%s&gt;</p>
			<p><strong>Subject:</strong> %s</p>
			<div style="background: #F6F6F6; padding: 15px; border-radius: 4px;">%s</div>
		</div>
	`, msg.Name, msg.Email, subject, msg.Message)

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	client := sendgrid.NewSendClient(config.AppConfig.SendgridKey)

	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid rejected the message: %d %s", resp.StatusCode, resp.Body)
	}
	return nil
}
