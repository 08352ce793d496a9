package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/application/auth"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/application/usecase"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/infrastructure/mail"
	infrapdf "github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/infrastructure/pdf"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/infrastructure/postgres"
	httpRouter "github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/interfaces/http"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/pkg/config"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:        cfg.App.Env,
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	var mailer auth.Mailer
	if cfg.SMTP.Host != "" {
		mailer = mail.NewSMTPSender(cfg.SMTP)
	} else {
		mailer = mail.NewNoopSender()
	}

	authUC := auth.NewAuthUseCase(userRepo, mailer, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo, userRepo, txRunner)
	customerUC := usecase.NewCustomerUseCase(customerRepo, companyRepo, invoiceRepo)
	itemUC := usecase.NewItemUseCase(itemRepo, companyRepo, invoiceRepo)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo, companyRepo, customerRepo, itemRepo, txRunner, pdfGenerator)
	reportUC := usecase.NewReportUseCase(companyRepo, customerRepo, itemRepo, invoiceRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CompanyUC:  companyUC,
		CustomerUC: customerUC,
		ItemUC:     itemUC,
		InvoiceUC:  invoiceUC,
		ReportUC:   reportUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
