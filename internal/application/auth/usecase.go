package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/application/dto"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/entity"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/repository"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de identidad: registro, verificación de email por
// OTP de un solo uso, login y proyecciones de usuario.
type AuthUseCase struct {
	userRepo repository.UserRepository
	mailer   Mailer
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, mailer Mailer, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, mailer: mailer, jwtCfg: jwtCfg}
}

// Register crea un usuario no verificado: hashea password con bcrypt, genera
// un OTP de 6 dígitos y lo envía por el Mailer. Devuelve ErrEmailAlreadyExists
// si el email ya está registrado. Un fallo del envío de correo no revierte el
// registro: se loguea y el usuario puede pedir reenvío.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) error {
	if in.Email == "" || in.Password == "" {
		return domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	otp, err := generateOTP()
	if err != nil {
		return err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Verified:     false,
		VerifyOTP:    &otp,
		HasCompany:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return err
	}
	if err := uc.mailer.SendVerificationOTP(user.Email, otp); err != nil {
		log.Error().Err(err).Str("email", user.Email).Msg("envío de OTP de verificación")
	}
	return nil
}

// VerifyEmail consume el OTP: marca el usuario como verificado y limpia el
// código (un solo uso). OTP desconocido o ya consumido devuelve ErrNotFound.
func (uc *AuthUseCase) VerifyEmail(otp string) error {
	if otp == "" {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByVerifyOTP(otp)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	user.Verified = true
	user.VerifyOTP = nil
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(user)
}

// Login verifica email/password y emite un JWT. El orden de chequeos: usuario
// existente, email verificado, password correcto.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.Verified {
		return nil, domain.ErrNotVerified
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}

// ListUsernames devuelve solo los nombres de usuario registrados.
func (uc *AuthUseCase) ListUsernames() ([]dto.UsernameResponse, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsernameResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UsernameResponse{Username: u.Username})
	}
	return out, nil
}

// HasCompany devuelve el flag derivado company_existing del usuario.
func (uc *AuthUseCase) HasCompany(userID string) (*dto.HasCompanyResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.HasCompanyResponse{HasCompany: user.HasCompany}, nil
}

// generateOTP produce un código de 6 dígitos en [100000, 999999].
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generar otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
