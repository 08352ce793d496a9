package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/application/auth"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CompanyUC  *usecase.CompanyUseCase
	CustomerUC *usecase.CustomerUseCase
	ItemUC     *usecase.ItemUseCase
	InvoiceUC  *usecase.InvoiceUseCase
	ReportUC   *usecase.ReportUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/verify-email", authHandler.VerifyEmail)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/users", authHandler.ListUsers)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	reportHandler := NewReportHandler(deps.ReportUC)

	// Companies (protegido)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.AuthUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/selected", companyHandler.GetSelected)
	companies.Put("/selected", companyHandler.Switch)
	companies.Get("/existing-flag", companyHandler.HasCompany)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Remove)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.ListBySelected)
	customers.Get("/all", customerHandler.ListByOwner)
	customers.Get("/report", reportHandler.Customers)
	customers.Get("/export", reportHandler.CustomersExport)
	customers.Post("/", customerHandler.Create)
	customers.Post("/import", customerHandler.Import)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Remove)

	// Items (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.ListBySelected)
	items.Get("/all", itemHandler.ListByOwner)
	items.Get("/report", reportHandler.Items)
	items.Get("/export", reportHandler.ItemsExport)
	items.Post("/", itemHandler.Create)
	items.Post("/import", itemHandler.Import)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Remove)

	// Invoices (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Get("/", invoiceHandler.GetByNumber)
	invoices.Get("/company", invoiceHandler.GetBySelected)
	invoices.Get("/report", reportHandler.Invoices)
	invoices.Get("/export", reportHandler.InvoicesExport)
	invoices.Get("/pdf", invoiceHandler.RenderPDF)
	invoices.Post("/", invoiceHandler.CreateBatch)
	invoices.Post("/import", invoiceHandler.Import)
	invoices.Delete("/", invoiceHandler.RemoveBatch)
}
