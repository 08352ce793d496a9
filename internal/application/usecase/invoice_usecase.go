package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/application/dto"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/entity"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/repository"
)

// InvoiceUseCase casos de uso del libro de facturas: lotes que comparten un
// número dentro de la empresa seleccionada.
type InvoiceUseCase struct {
	repo         repository.InvoiceRepository
	companyRepo  repository.CompanyRepository
	customerRepo repository.CustomerRepository
	itemRepo     repository.ItemRepository
	tx           InvoiceTxRunner
	pdf          InvoicePDFGenerator
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	repo repository.InvoiceRepository,
	companyRepo repository.CompanyRepository,
	customerRepo repository.CustomerRepository,
	itemRepo repository.ItemRepository,
	tx InvoiceTxRunner,
	pdf InvoicePDFGenerator,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		repo:         repo,
		companyRepo:  companyRepo,
		customerRepo: customerRepo,
		itemRepo:     itemRepo,
		tx:           tx,
		pdf:          pdf,
	}
}

// CreateBatch crea un lote de líneas que comparten el número de la primera.
// El conflicto de número se chequea una sola vez, contra la primera línea,
// antes de escribir nada. El lote completo se escribe en una transacción: el
// original confirmaba línea a línea y un fallo a mitad dejaba líneas
// huérfanas; aquí o entran todas o ninguna. La fecha de factura es el reloj
// del servidor; el vencimiento se normaliza a UTC.
func (uc *InvoiceUseCase) CreateBatch(ctx context.Context, ownerID string, in dto.CreateInvoiceBatchRequest) ([]*dto.InvoiceResponse, error) {
	if len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetSelected(ownerID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	number := in.Lines[0].InvoiceNumber
	if number == "" {
		return nil, domain.ErrInvalidInput
	}
	exists, err := uc.repo.ExistsByCompanyAndNumber(company.ID, number)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	invoices := make([]*entity.Invoice, 0, len(in.Lines))
	for _, line := range in.Lines {
		dueDate, err := parseDueDate(line.DueDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		invoices = append(invoices, &entity.Invoice{
			ID:          uuid.New().String(),
			CompanyID:   company.ID,
			CustomerID:  line.CustomerID,
			ItemID:      line.ItemID,
			Number:      line.InvoiceNumber,
			InvoiceDate: now,
			DueDate:     dueDate,
			Qty:         line.Qty,
			Discount:    line.Discount,
			GST:         line.GST,
			Amount:      line.Amount,
			TotalAmount: line.TotalAmount,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	err = uc.tx.RunInvoices(ctx, func(invoiceRepo repository.InvoiceRepository) error {
		for _, inv := range invoices {
			if err := invoiceRepo.Create(inv); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, invoiceToResponse(inv))
	}
	return out, nil
}

// RemoveBatch borra todas las líneas del número dentro de la empresa
// seleccionada. Borrar un número inexistente es un éxito sin efecto.
func (uc *InvoiceUseCase) RemoveBatch(ownerID, number string) error {
	company, err := uc.companyRepo.GetSelected(ownerID)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	_, err = uc.repo.DeleteByNumber(company.ID, number)
	return err
}

// GetByNumber devuelve las líneas del número con empresa, cliente e ítem
// resueltos. Un resultado vacío se distingue de "empresa no encontrada": lo
// segundo corta antes con ErrNotFound.
func (uc *InvoiceUseCase) GetByNumber(ownerID, number string) ([]*dto.InvoiceDetailResponse, error) {
	company, err := uc.companyRepo.GetSelected(ownerID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.repo.ListByNumber(company.ID, number)
	if err != nil {
		return nil, err
	}
	companyResp := entityToCompanyResponse(company)
	out := make([]*dto.InvoiceDetailResponse, 0, len(lines))
	for _, inv := range lines {
		detail := &dto.InvoiceDetailResponse{
			InvoiceResponse: *invoiceToResponse(inv),
			Company:         companyResp,
		}
		customer, err := uc.customerRepo.GetByID(inv.CustomerID)
		if err != nil {
			return nil, err
		}
		detail.Customer = customerToResponse(customer)
		item, err := uc.itemRepo.GetByID(inv.ItemID)
		if err != nil {
			return nil, err
		}
		detail.Item = itemToResponse(item)
		out = append(out, detail)
	}
	return out, nil
}

// GetBySelected devuelve todas las líneas de la empresa seleccionada, cada
// una anotada con el nombre de su cliente. Lista vacía no es un error.
func (uc *InvoiceUseCase) GetBySelected(ownerID string) ([]*dto.InvoiceResponse, error) {
	company, err := uc.companyRepo.GetSelected(ownerID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.repo.ListByCompany(company.ID)
	if err != nil {
		return nil, err
	}
	// Un lookup de cliente por línea; tolerable a esta escala, el cache por
	// id evita repetir lecturas dentro de la misma respuesta.
	names := make(map[string]string)
	out := make([]*dto.InvoiceResponse, 0, len(lines))
	for _, inv := range lines {
		resp := invoiceToResponse(inv)
		name, ok := names[inv.CustomerID]
		if !ok {
			customer, err := uc.customerRepo.GetByID(inv.CustomerID)
			if err != nil {
				return nil, err
			}
			if customer != nil {
				name = customer.Name
			}
			names[inv.CustomerID] = name
		}
		resp.CustomerName = name
		out = append(out, resp)
	}
	return out, nil
}

// Import crea una línea suelta resolviendo empresa, ítem y cliente por
// nombre. El chequeo de duplicados del flujo de importación ancla el número
// al ítem, como el flujo original.
func (uc *InvoiceUseCase) Import(ctx context.Context, ownerID string, in dto.ImportInvoiceRequest) (*dto.InvoiceResponse, error) {
	company, err := uc.companyRepo.GetByOwnerAndName(ownerID, in.CompanyName)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	item, err := uc.itemRepo.GetByCompanyAndName(company.ID, in.ItemName)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	exists, err := uc.repo.ExistsByItemAndNumber(item.ID, in.InvoiceNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicate
	}
	customer, err := uc.customerRepo.GetByCompanyAndName(company.ID, in.CustomerName)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	invoiceDate, err := parseDueDate(in.InvoiceDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	dueDate, err := parseDueDate(in.DueDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	inv := &entity.Invoice{
		ID:          uuid.New().String(),
		CompanyID:   company.ID,
		CustomerID:  customer.ID,
		ItemID:      item.ID,
		Number:      in.InvoiceNumber,
		InvoiceDate: invoiceDate,
		DueDate:     dueDate,
		Qty:         in.Qty,
		Discount:    in.Discount,
		GST:         in.GST,
		Amount:      in.Amount,
		TotalAmount: in.TotalAmount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = uc.tx.RunInvoices(ctx, func(invoiceRepo repository.InvoiceRepository) error {
		return invoiceRepo.Create(inv)
	})
	if err != nil {
		return nil, err
	}
	return invoiceToResponse(inv), nil
}

// RenderPDF genera la representación imprimible del lote identificado por
// número dentro de la empresa seleccionada. El cliente del lote es el de la
// primera línea (todas las líneas de un lote comparten cliente en los flujos
// de creación normales).
func (uc *InvoiceUseCase) RenderPDF(ctx context.Context, ownerID, number string) ([]byte, error) {
	company, err := uc.companyRepo.GetSelected(ownerID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.repo.ListByNumber(company.ID, number)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(lines[0].CustomerID)
	if err != nil {
		return nil, err
	}
	pdfLines := make([]InvoicePDFLine, 0, len(lines))
	for _, inv := range lines {
		item, err := uc.itemRepo.GetByID(inv.ItemID)
		if err != nil {
			return nil, err
		}
		pdfLines = append(pdfLines, InvoicePDFLine{Line: inv, Item: item})
	}
	return uc.pdf.GenerateInvoicePDF(ctx, company, customer, number, pdfLines)
}

// parseDueDate acepta RFC3339 o fecha simple YYYY-MM-DD y normaliza a UTC.
func parseDueDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("fecha vacía")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q: %w", s, err)
	}
	return t.UTC(), nil
}

func invoiceToResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	if inv == nil {
		return nil
	}
	return &dto.InvoiceResponse{
		ID:          inv.ID,
		CompanyID:   inv.CompanyID,
		CustomerID:  inv.CustomerID,
		ItemID:      inv.ItemID,
		Number:      inv.Number,
		InvoiceDate: inv.InvoiceDate,
		DueDate:     inv.DueDate,
		Qty:         inv.Qty,
		Discount:    inv.Discount,
		GST:         inv.GST,
		Amount:      inv.Amount,
		TotalAmount: inv.TotalAmount,
	}
}
