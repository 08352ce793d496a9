// Package mail implementa el envío de correos de verificación por SMTP.
package mail

import (
	"fmt"

	"github.com/rs/zerolog/log"
	gomail "gopkg.in/gomail.v2"

	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/application/auth"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/pkg/config"
)

var _ auth.Mailer = (*SMTPSender)(nil)
var _ auth.Mailer = (*NoopSender)(nil)

// SMTPSender envía correos mediante gomail contra el servidor configurado.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender construye el sender con la configuración SMTP.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// SendVerificationOTP envía el código de verificación de cuenta.
func (s *SMTPSender) SendVerificationOTP(toEmail, otp string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Verificación de cuenta")
	m.SetBody("text/html", fmt.Sprintf(
		"<p>Tu código de verificación es <b>%s</b>.</p><p>Ingresalo en la aplicación para activar tu cuenta.</p>",
		otp))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send verification mail: %w", err)
	}
	return nil
}

// NoopSender registra el código en el log en lugar de enviarlo. Se usa cuando
// no hay SMTP configurado (desarrollo local).
type NoopSender struct{}

// NewNoopSender construye el sender nulo.
func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

// SendVerificationOTP no envía nada; deja el código visible en el log.
func (s *NoopSender) SendVerificationOTP(toEmail, otp string) error {
	log.Info().Str("to", toEmail).Str("otp", otp).Msg("SMTP no configurado; código de verificación solo en log")
	return nil
}
