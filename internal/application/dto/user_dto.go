package dto

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token emitido tras un login exitoso.
type LoginResponse struct {
	Token string `json:"token"`
}

// VerifyEmailRequest body para POST /api/auth/verify-email.
type VerifyEmailRequest struct {
	OTP string `json:"otp"`
}

// UsernameResponse proyección de solo el nombre de usuario.
type UsernameResponse struct {
	Username string `json:"username"`
}

// HasCompanyResponse flag derivado company_existing del usuario.
type HasCompanyResponse struct {
	HasCompany bool `json:"company_existing"`
}
