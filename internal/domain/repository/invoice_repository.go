package repository

import "github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para líneas de factura.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	// ExistsByCompanyAndNumber informa si ya hay alguna línea con ese número
	// en la empresa (chequeo de conflicto del lote).
	ExistsByCompanyAndNumber(companyID, number string) (bool, error)
	// ExistsByItemAndNumber replica el chequeo de duplicados del flujo de
	// importación, que ancla el número al ítem en lugar de a la empresa.
	ExistsByItemAndNumber(itemID, number string) (bool, error)
	ListByCompany(companyID string) ([]*entity.Invoice, error)
	ListByNumber(companyID, number string) ([]*entity.Invoice, error)
	// ListByCompanyFiltered filtra por cliente y/o ítem; un filtro vacío no
	// restringe.
	ListByCompanyFiltered(companyID, customerID, itemID string) ([]*entity.Invoice, error)
	// DeleteByNumber borra todas las líneas del número dentro de la empresa.
	// Cero filas afectadas no es un error.
	DeleteByNumber(companyID, number string) (int64, error)
	CountByCustomer(customerID string) (int64, error)
	CountByItem(itemID string) (int64, error)
}
