package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/application/auth"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/application/dto"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/application/usecase"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/infrastructure/memory"
	infrapdf "github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/infrastructure/pdf"
	apphttp "github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// captureMailer guarda los OTP enviados en lugar de entregarlos por SMTP.
type captureMailer struct {
	otps []string
}

func (m *captureMailer) SendVerificationOTP(_, otp string) error {
	m.otps = append(m.otps, otp)
	return nil
}

// buildRouterApp levanta la API completa sobre el almacén en memoria.
func buildRouterApp() (*fiber.App, *captureMailer) {
	store := memory.NewStore()
	mailer := &captureMailer{}
	authUC := auth.NewAuthUseCase(store.Users(), mailer, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     authUC,
		CompanyUC:  usecase.NewCompanyUseCase(store.Companies(), store.Users(), store),
		CustomerUC: usecase.NewCustomerUseCase(store.Customers(), store.Companies(), store.Invoices()),
		ItemUC:     usecase.NewItemUseCase(store.Items(), store.Companies(), store.Invoices()),
		InvoiceUC: usecase.NewInvoiceUseCase(
			store.Invoices(), store.Companies(), store.Customers(), store.Items(),
			store, infrapdf.NewMarotoPDFGenerator(),
		),
		ReportUC:  usecase.NewReportUseCase(store.Companies(), store.Customers(), store.Items(), store.Invoices()),
		JWTSecret: testJWTSecret,
	})
	return app, mailer
}

// doJSON lanza una petición con body JSON opcional y token opcional.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeJSON decodifica el body de la respuesta en out.
func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// signupAndLogin recorre registro → verificación → login y devuelve el token.
func signupAndLogin(t *testing.T, app *fiber.App, mailer *captureMailer, email string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Username: "maria", Email: email, Password: "contraseña-larga",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	require.NotEmpty(t, mailer.otps)

	resp = doJSON(t, app, http.MethodPost, "/api/auth/verify-email", "", dto.VerifyEmailRequest{
		OTP: mailer.otps[len(mailer.otps)-1],
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email: email, Password: "contraseña-larga",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.LoginResponse
	decodeJSON(t, resp, &out)
	require.NotEmpty(t, out.Token)
	return out.Token
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de flujo completo
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: registro → verificación → login → crear empresa → la empresa queda
// seleccionada y el flag company_existing se enciende.
func TestFlujo_RegistroYPrimeraEmpresa(t *testing.T) {
	app, mailer := buildRouterApp()
	token := signupAndLogin(t, app, mailer, "maria@mail.com")

	resp := doJSON(t, app, http.MethodPost, "/api/companies/", token, dto.CreateCompanyRequest{
		Name: "Acme", GSTNumber: "22AAAAA0000A1Z5",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.CompanyResponse
	decodeJSON(t, resp, &created)
	assert.True(t, created.Selected, "la primera empresa queda seleccionada")

	resp = doJSON(t, app, http.MethodGet, "/api/companies/selected", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var selected dto.CompanyResponse
	decodeJSON(t, resp, &selected)
	assert.Equal(t, created.ID, selected.ID)

	resp = doJSON(t, app, http.MethodGet, "/api/companies/existing-flag", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var flag dto.HasCompanyResponse
	decodeJSON(t, resp, &flag)
	assert.True(t, flag.HasCompany)
}

// Caso 2: el cambio de empresa seleccionada por nombre mueve la selección; un
// nombre inexistente responde 404 y la deja intacta.
func TestFlujo_CambioDeSeleccion(t *testing.T) {
	app, mailer := buildRouterApp()
	token := signupAndLogin(t, app, mailer, "maria@mail.com")

	for _, name := range []string{"Acme", "Globex"} {
		resp := doJSON(t, app, http.MethodPost, "/api/companies/", token, dto.CreateCompanyRequest{Name: name})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doJSON(t, app, http.MethodPut, "/api/companies/selected", token, dto.SwitchCompanyRequest{CompanyName: "Acme"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var switched dto.CompanyResponse
	decodeJSON(t, resp, &switched)
	assert.Equal(t, "Acme", switched.Name)

	resp = doJSON(t, app, http.MethodPut, "/api/companies/selected", token, dto.SwitchCompanyRequest{CompanyName: "NoExiste"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/companies/selected", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var selected dto.CompanyResponse
	decodeJSON(t, resp, &selected)
	assert.Equal(t, "Acme", selected.Name, "el intento fallido no mueve la selección")
}

// Caso 3: clientes y facturas operan sobre la empresa seleccionada; el PDF del
// lote se descarga con su content type.
func TestFlujo_FacturacionYPDF(t *testing.T) {
	app, mailer := buildRouterApp()
	token := signupAndLogin(t, app, mailer, "maria@mail.com")

	resp := doJSON(t, app, http.MethodPost, "/api/companies/", token, dto.CreateCompanyRequest{Name: "Acme"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/customers/", token, dto.CreateCustomerRequest{
		Name: "Juan", Email: "juan@mail.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var customer dto.CustomerResponse
	decodeJSON(t, resp, &customer)

	resp = doJSON(t, app, http.MethodPost, "/api/items/", token, dto.CreateItemRequest{Name: "Tornillo"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var item dto.ItemResponse
	decodeJSON(t, resp, &item)

	resp = doJSON(t, app, http.MethodPost, "/api/invoices/", token, dto.CreateInvoiceBatchRequest{
		Lines: []dto.InvoiceLineRequest{{
			InvoiceNumber: "INV-1",
			CustomerID:    customer.ID,
			ItemID:        item.ID,
			DueDate:       "2026-09-30",
		}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/invoices/company", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var lines []dto.InvoiceResponse
	decodeJSON(t, resp, &lines)
	require.Len(t, lines, 1)
	assert.Equal(t, "Juan", lines[0].CustomerName)

	resp = doJSON(t, app, http.MethodGet, "/api/invoices/pdf?number=INV-1", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	resp.Body.Close()
}

// Caso 4: las rutas protegidas rechazan peticiones sin token.
func TestFlujo_RutasProtegidasSinToken(t *testing.T) {
	app, _ := buildRouterApp()
	for _, path := range []string{
		"/api/companies/",
		"/api/customers/",
		"/api/items/",
		"/api/invoices/company",
	} {
		resp := doJSON(t, app, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
		resp.Body.Close()
	}
}

// Caso 5: login sin verificar el email responde 403.
func TestFlujo_LoginSinVerificar(t *testing.T) {
	app, _ := buildRouterApp()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Username: "maria", Email: "maria@mail.com", Password: "contraseña-larga",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email: "maria@mail.com", Password: "contraseña-larga",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}
