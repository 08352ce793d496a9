package entity

import "time"

// User representa la raíz de identidad del sistema. Cada usuario posee sus
// propias empresas; HasCompany es un flag derivado que el frontend usa para
// decidir el flujo de onboarding.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Verified     bool
	VerifyOTP    *string // código de un solo uso; nil una vez consumido
	HasCompany   bool    // true mientras el usuario tenga al menos una empresa
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
