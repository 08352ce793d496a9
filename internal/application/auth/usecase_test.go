package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/application/auth"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/application/dto"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/infrastructure/memory"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/pkg/jwt"
)

const testSecret = "secreto-de-prueba"

// captureMailer registra los envíos en lugar de entregarlos; si fail está
// activo, simula un SMTP caído.
type captureMailer struct {
	to   []string
	otps []string
	fail bool
}

func (m *captureMailer) SendVerificationOTP(toEmail, otp string) error {
	if m.fail {
		return errors.New("smtp no disponible")
	}
	m.to = append(m.to, toEmail)
	m.otps = append(m.otps, otp)
	return nil
}

func newAuthUC(store *memory.Store, mailer auth.Mailer) *auth.AuthUseCase {
	return auth.NewAuthUseCase(store.Users(), mailer, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "nem-backend",
	})
}

func register(t *testing.T, uc *auth.AuthUseCase, email string) {
	t.Helper()
	require.NoError(t, uc.Register(dto.RegisterRequest{
		Username: "maria",
		Email:    email,
		Password: "contraseña-larga",
	}))
}

// Caso 1: el registro guarda un usuario sin verificar y envía un OTP de seis
// dígitos al correo indicado.
func TestRegistro_EnviaOTP(t *testing.T) {
	store := memory.NewStore()
	mailer := &captureMailer{}
	uc := newAuthUC(store, mailer)

	register(t, uc, "maria@mail.com")

	require.Len(t, mailer.to, 1)
	assert.Equal(t, "maria@mail.com", mailer.to[0])
	require.Len(t, mailer.otps, 1)
	assert.Len(t, mailer.otps[0], 6, "el OTP es de seis dígitos")

	user, err := store.Users().GetByEmail("maria@mail.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.False(t, user.Verified)
	require.NotNil(t, user.VerifyOTP)
	assert.Equal(t, mailer.otps[0], *user.VerifyOTP)
	assert.NotEqual(t, "contraseña-larga", user.PasswordHash, "la contraseña nunca se guarda en claro")
}

// Caso 2: un email ya registrado es conflicto; faltar email o password es
// entrada inválida.
func TestRegistro_Rechazos(t *testing.T) {
	store := memory.NewStore()
	uc := newAuthUC(store, &captureMailer{})

	register(t, uc, "maria@mail.com")
	err := uc.Register(dto.RegisterRequest{Username: "otra", Email: "maria@mail.com", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	err = uc.Register(dto.RegisterRequest{Email: "sin-pass@mail.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Caso 3: un fallo del correo no revierte el registro.
func TestRegistro_ToleraFalloDeCorreo(t *testing.T) {
	store := memory.NewStore()
	uc := newAuthUC(store, &captureMailer{fail: true})

	register(t, uc, "maria@mail.com")

	user, err := store.Users().GetByEmail("maria@mail.com")
	require.NoError(t, err)
	assert.NotNil(t, user, "el usuario queda creado aunque el envío falle")
}

// Caso 4: el OTP verifica y se consume; el segundo uso ya no encuentra nada.
func TestVerificarEmail_UnSoloUso(t *testing.T) {
	store := memory.NewStore()
	mailer := &captureMailer{}
	uc := newAuthUC(store, mailer)
	register(t, uc, "maria@mail.com")
	otp := mailer.otps[0]

	require.NoError(t, uc.VerifyEmail(otp))
	user, err := store.Users().GetByEmail("maria@mail.com")
	require.NoError(t, err)
	assert.True(t, user.Verified)
	assert.Nil(t, user.VerifyOTP, "el código se limpia al consumirse")

	assert.ErrorIs(t, uc.VerifyEmail(otp), domain.ErrNotFound, "el OTP es de un solo uso")
	assert.ErrorIs(t, uc.VerifyEmail("000000"), domain.ErrNotFound)
	assert.ErrorIs(t, uc.VerifyEmail(""), domain.ErrInvalidInput)
}

// Caso 5: login exige usuario existente, email verificado y password correcto,
// en ese orden.
func TestLogin_OrdenDeChequeos(t *testing.T) {
	store := memory.NewStore()
	mailer := &captureMailer{}
	uc := newAuthUC(store, mailer)
	register(t, uc, "maria@mail.com")

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@mail.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Login(dto.LoginRequest{Email: "maria@mail.com", Password: "contraseña-larga"})
	assert.ErrorIs(t, err, domain.ErrNotVerified, "sin verificar no hay login ni con el password correcto")

	require.NoError(t, uc.VerifyEmail(mailer.otps[0]))
	_, err = uc.Login(dto.LoginRequest{Email: "maria@mail.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Caso 6: el token emitido porta id y email del usuario y valida con el mismo
// secreto.
func TestLogin_TokenValido(t *testing.T) {
	store := memory.NewStore()
	mailer := &captureMailer{}
	uc := newAuthUC(store, mailer)
	register(t, uc, "maria@mail.com")
	require.NoError(t, uc.VerifyEmail(mailer.otps[0]))

	out, err := uc.Login(dto.LoginRequest{Email: "maria@mail.com", Password: "contraseña-larga"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	user, err := store.Users().GetByEmail("maria@mail.com")
	require.NoError(t, err)
	userID, email, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, "maria@mail.com", email)
}

// Caso 7: proyecciones de usuario.
func TestProyeccionesDeUsuario(t *testing.T) {
	store := memory.NewStore()
	mailer := &captureMailer{}
	uc := newAuthUC(store, mailer)
	register(t, uc, "maria@mail.com")

	names, err := uc.ListUsernames()
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, "maria", names[0].Username)

	user, err := store.Users().GetByEmail("maria@mail.com")
	require.NoError(t, err)
	flag, err := uc.HasCompany(user.ID)
	require.NoError(t, err)
	assert.False(t, flag.HasCompany, "un usuario recién registrado no tiene empresas")

	_, err = uc.HasCompany("no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
