package usecase

import (
	"context"

	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/entity"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/repository"
)

// TenantTxRunner ejecuta las secuencias multi-paso del Tenant Store (crear
// empresa, cambiar selección, borrar con promoción) dentro de una transacción.
// El callback recibe repos atados a la misma transacción; si retorna error se
// hace rollback completo, de modo que el invariante (dueño, selected=true)
// nunca queda observable roto a mitad de secuencia.
type TenantTxRunner interface {
	RunTenant(ctx context.Context, fn func(
		companies repository.CompanyRepository,
		users repository.UserRepository,
	) error) error
}

// InvoiceTxRunner ejecuta la escritura de un lote de facturas dentro de una
// transacción: o todas las líneas quedan, o ninguna.
type InvoiceTxRunner interface {
	RunInvoices(ctx context.Context, fn func(
		invoices repository.InvoiceRepository,
	) error) error
}

// InvoicePDFLine es una línea del lote con su artículo ya resuelto, lista
// para renderizar.
type InvoicePDFLine struct {
	Line *entity.Invoice
	Item *entity.Item
}

// InvoicePDFGenerator renderiza la representación imprimible de un lote de
// facturas. La implementación vive en infrastructure/pdf.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		company *entity.Company,
		customer *entity.Customer,
		number string,
		lines []InvoicePDFLine,
	) ([]byte, error)
}
