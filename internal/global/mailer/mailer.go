package mailer

import (
	"fmt"

	"student-wellness-system/config"

	"gopkg.in/gomail.v2"
)

var dialer *gomail.Dialer

// Init wires the SMTP dialer. Mail stays disabled when no host is
// configured; enrollment still succeeds, only the confirmation step is
// skipped.
func Init() {
	cfg := config.Get()
	if cfg.Mail.Host == "" {
		return
	}
	dialer = gomail.NewDialer(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password)
}

func Enabled() bool {
	return dialer != nil
}

// SendEnrollmentConfirmation mails the signed confirmation link for a
// pending enrollment.
func SendEnrollmentConfirmation(to, activityName, token string) error {
	if dialer == nil {
		return fmt.Errorf("mailer not configured")
	}
	cfg := config.Get()

	link := fmt.Sprintf("%s/%s/enrollment/confirm?token=%s", cfg.Domain, cfg.Prefix, token)

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.Mail.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Confirma tu inscripción: "+activityName)
	m.SetBody("text/html", fmt.Sprintf(
		"<p>Hola,</p><p>Recibimos tu inscripción a <b>%s</b>. Haz clic en el siguiente enlace para confirmarla:</p><p><a href=%q>Confirmar inscripción</a></p><p>El enlace expira pronto; si no fuiste tú, ignora este correo.</p>",
		activityName, link,
	))

	return dialer.DialAndSend(m)
}
