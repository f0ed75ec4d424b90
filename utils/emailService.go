package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"iapt/config"
)

// SendEmail sends an HTML email through the configured SMTP account
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: IA Pour Tous <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
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
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1D3461; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1D3461; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #F2A541; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>IA Pour Tous</h1></div>
			<div class="content"><h2>%s</h2>%s</div>
			<div class="footer">Ceci est un message automatique de la plateforme IA Pour Tous.</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendEnrollmentEmail confirms a course enrollment
func SendEnrollmentEmail(email, userName, courseTitle string) error {
	body := fmt.Sprintf(`
		<p>Bonjour %s,</p>
		<p>Félicitations! Vous êtes maintenant inscrit(e) au cours:</p>
		<div class="info-box"><strong>%s</strong></div>
		<p>Vous pouvez dès à présent accéder aux modules, suivre votre progression et valider chaque quiz pour avancer.</p>
		<p>Bonne formation!</p>`, userName, courseTitle)

	return SendEmail([]string{email}, "Confirmation d'inscription - IA Pour Tous", getEmailTemplate("Inscription confirmée", body))
}

// SendCertificateEmail notifies course completion with the certificate number
func SendCertificateEmail(email, userName, courseTitle, certificateNumber string) error {
	body := fmt.Sprintf(`
		<p>Bonjour %s,</p>
		<p>Bravo! Vous avez terminé le cours:</p>
		<div class="info-box"><strong>%s</strong></div>
		<p>Votre numéro de certificat:</p>
		<div class="info-box"><strong>%s</strong></div>
		<p>Ce numéro peut être utilisé pour vérifier l'authenticité de votre certificat.</p>`, userName, courseTitle, certificateNumber)

	return SendEmail([]string{email}, "Certificat de réussite - IA Pour Tous", getEmailTemplate("Certificat de réussite", body))
}

// SendPaymentReceiptEmail confirms a completed plan payment
func SendPaymentReceiptEmail(email, userName, plan string, amount int) error {
	body := fmt.Sprintf(`
		<p>Bonjour %s,</p>
		<p>Nous avons bien reçu votre paiement de <strong>%d FCFA</strong>.</p>
		<div class="info-box">Formule activée: <strong>%s</strong></div>
		<p>Votre accès aux contenus de la plateforme est maintenant actif.</p>`, userName, amount, plan)

	return SendEmail([]string{email}, "Reçu de paiement - IA Pour Tous", getEmailTemplate("Paiement confirmé", body))
}
