package usecase

import (
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/application/dto"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/entity"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/repository"
)

// ReportUseCase proyecciones de solo lectura para reportes y exportación:
// resuelve el conjunto de empresas candidatas (todas las del dueño o una
// explícita), abanica una consulta filtrada por empresa, aplana y decora cada
// fila con los nombres desnormalizados de sus padres.
//
// Un dueño sin empresas produce una respuesta vacía, no un error: es el
// estado "usuario nuevo sin datos" y los reportes lo tratan como soft-fail.
type ReportUseCase struct {
	companyRepo  repository.CompanyRepository
	customerRepo repository.CustomerRepository
	itemRepo     repository.ItemRepository
	invoiceRepo  repository.InvoiceRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	companyRepo repository.CompanyRepository,
	customerRepo repository.CustomerRepository,
	itemRepo repository.ItemRepository,
	invoiceRepo repository.InvoiceRepository,
) *ReportUseCase {
	return &ReportUseCase{
		companyRepo:  companyRepo,
		customerRepo: customerRepo,
		itemRepo:     itemRepo,
		invoiceRepo:  invoiceRepo,
	}
}

// resolveCompanies arma el conjunto candidato: la empresa explícita si viene
// un id, o todas las del dueño.
func (uc *ReportUseCase) resolveCompanies(ownerID, companyID string) ([]*entity.Company, error) {
	if companyID != "" {
		company, err := uc.companyRepo.GetByID(companyID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, nil
		}
		return []*entity.Company{company}, nil
	}
	return uc.companyRepo.ListByOwner(ownerID)
}

// Customers reporte de clientes, opcionalmente filtrado por empresa y/o
// cliente, con el nombre de empresa resuelto.
func (uc *ReportUseCase) Customers(ownerID, companyID, customerID string) ([]dto.CustomerReportRow, error) {
	companies, err := uc.resolveCompanies(ownerID, companyID)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.CustomerReportRow, 0)
	for _, company := range companies {
		list, err := uc.customerRepo.ListByCompany(company.ID)
		if err != nil {
			return nil, err
		}
		for _, c := range list {
			if customerID != "" && c.ID != customerID {
				continue
			}
			rows = append(rows, dto.CustomerReportRow{
				CustomerResponse: *customerToResponse(c),
				CompanyName:      company.Name,
				Typename:         dto.TypenameCustomersReport,
			})
		}
	}
	return rows, nil
}

// CustomersExport export completo de clientes del dueño (sin filtros).
func (uc *ReportUseCase) CustomersExport(ownerID string) ([]dto.CustomerReportRow, error) {
	return uc.Customers(ownerID, "", "")
}

// Items reporte de ítems, opcionalmente filtrado por empresa y/o ítem.
func (uc *ReportUseCase) Items(ownerID, companyID, itemID string) ([]dto.ItemReportRow, error) {
	companies, err := uc.resolveCompanies(ownerID, companyID)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.ItemReportRow, 0)
	for _, company := range companies {
		list, err := uc.itemRepo.ListByCompany(company.ID)
		if err != nil {
			return nil, err
		}
		for _, i := range list {
			if itemID != "" && i.ID != itemID {
				continue
			}
			rows = append(rows, dto.ItemReportRow{
				ItemResponse: *itemToResponse(i),
				CompanyName:  company.Name,
				Typename:     dto.TypenameItemsReport,
			})
		}
	}
	return rows, nil
}

// ItemsExport export completo de ítems del dueño.
func (uc *ReportUseCase) ItemsExport(ownerID string) ([]dto.ItemReportRow, error) {
	return uc.Items(ownerID, "", "")
}

// Invoices reporte de facturas, filtrable por empresa, cliente e ítem, con
// cada línea desnormalizada: nombre de empresa, nombre y tarifa del ítem y
// nombre del cliente.
func (uc *ReportUseCase) Invoices(ownerID, companyID, customerID, itemID string) ([]dto.InvoiceReportRow, error) {
	companies, err := uc.resolveCompanies(ownerID, companyID)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.InvoiceReportRow, 0)
	customers := make(map[string]*entity.Customer)
	items := make(map[string]*entity.Item)
	for _, company := range companies {
		lines, err := uc.invoiceRepo.ListByCompanyFiltered(company.ID, customerID, itemID)
		if err != nil {
			return nil, err
		}
		for _, inv := range lines {
			customer, ok := customers[inv.CustomerID]
			if !ok {
				customer, err = uc.customerRepo.GetByID(inv.CustomerID)
				if err != nil {
					return nil, err
				}
				customers[inv.CustomerID] = customer
			}
			item, ok := items[inv.ItemID]
			if !ok {
				item, err = uc.itemRepo.GetByID(inv.ItemID)
				if err != nil {
					return nil, err
				}
				items[inv.ItemID] = item
			}
			row := dto.InvoiceReportRow{
				InvoiceResponse: *invoiceToResponse(inv),
				CompanyName:     company.Name,
				Typename:        dto.TypenameInvoicesReport,
			}
			if customer != nil {
				row.CustomerName = customer.Name
			}
			if item != nil {
				row.ItemName = item.Name
				row.Rate = item.Rate
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// InvoicesExport export completo de facturas del dueño.
func (uc *ReportUseCase) InvoicesExport(ownerID string) ([]dto.InvoiceReportRow, error) {
	return uc.Invoices(ownerID, "", "", "")
}
