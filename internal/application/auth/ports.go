package auth

// Mailer define el puerto de envío de correos de verificación. La entrega
// real (SMTP) es un colaborador externo; la implementación vive en
// infrastructure/mail.
type Mailer interface {
	SendVerificationOTP(toEmail, otp string) error
}
