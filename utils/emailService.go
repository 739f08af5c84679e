package utils

import (
	"fmt"
	"log"
	"tchadskills/config"

	sendgrid "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends a transactional email through SendGrid.
func SendEmail(toName, toEmail, subject, htmlBody string) error {
	if config.AppConfig.SendGridApiKey == "" {
		log.Printf("SendGrid not configured, skipping email to %s (%s)", toEmail, subject)
		return nil
	}

	from := mail.NewEmail("TchadSkills", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: %d %s", toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid returned %d", resp.StatusCode)
	}
	return nil
}

func getEmailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #002B5B; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #002B5B; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #F2A900; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>TCHADSKILLS</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 TchadSkills. Tous droits réservés.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Signup
func SendWelcomeEmail(email, name string) {
	subject := "Bienvenue sur TchadSkills"
	body := fmt.Sprintf(`
		<p>Bonjour %s,</p>
		<p>Bienvenue sur <strong>TchadSkills</strong>! Votre compte a été créé avec succès.</p>
		<p>Explorez notre catalogue de cours et commencez votre apprentissage dès aujourd'hui.</p>
	`, name)

	go SendEmail(name, email, subject, getEmailTemplate("Bienvenue!", body))
}

// 2. Enrollment confirmation
func SendEnrollmentEmail(email, name, courseTitle string) {
	subject := "Inscription confirmée: " + courseTitle
	body := fmt.Sprintf(`
		<p>Bonjour %s,</p>
		<p>Vous êtes maintenant inscrit au cours <strong>%s</strong>.</p>
		<div class="info-box">Rendez-vous sur votre tableau de bord pour commencer.</div>
	`, name, courseTitle)

	go SendEmail(name, email, subject, getEmailTemplate("Inscription réussie", body))
}

// 3. Payment receipt
func SendPaymentReceiptEmail(email, name, courseTitle, transactionID string, amount float64, currency string) {
	subject := "Reçu de paiement: " + courseTitle
	body := fmt.Sprintf(`
		<p>Bonjour %s,</p>
		<p>Nous avons bien reçu votre paiement de <strong>%.0f %s</strong> pour le cours <strong>%s</strong>.</p>
		<div class="info-box">Référence de transaction: %s</div>
	`, name, amount, currency, courseTitle, transactionID)

	go SendEmail(name, email, subject, getEmailTemplate("Paiement confirmé", body))
}

// 4. Certificate issued
func SendCertificateEmail(email, name, courseTitle, certificateNumber string) {
	subject := "Votre certificat est prêt: " + courseTitle
	body := fmt.Sprintf(`
		<p>Bonjour %s,</p>
		<p>Félicitations! Vous avez terminé le cours <strong>%s</strong>.</p>
		<div class="info-box">Numéro de certificat: <strong>%s</strong></div>
		<p>Ce certificat est vérifiable en ligne à tout moment.</p>
	`, name, courseTitle, certificateNumber)

	go SendEmail(name, email, subject, getEmailTemplate("Certificat délivré", body))
}
