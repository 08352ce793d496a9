package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/application/dto"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/entity"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/repository"
)

// CustomerUseCase casos de uso del catálogo de clientes, siempre dentro del
// namespace de la empresa seleccionada del llamador.
type CustomerUseCase struct {
	repo        repository.CustomerRepository
	companyRepo repository.CompanyRepository
	invoiceRepo repository.InvoiceRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, companyRepo repository.CompanyRepository, invoiceRepo repository.InvoiceRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, companyRepo: companyRepo, invoiceRepo: invoiceRepo}
}

// Create crea un cliente en la empresa seleccionada del dueño. ErrNotFound si
// no hay empresa seleccionada (corta toda la operación); ErrDuplicate si el
// email ya existe dentro de esa empresa.
func (uc *CustomerUseCase) Create(ownerID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	company, err := uc.companyRepo.GetSelected(ownerID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return uc.createInCompany(company.ID, in)
}

// Import crea un cliente resolviendo la empresa destino por nombre (flujo de
// importación masiva desde el frontend).
func (uc *CustomerUseCase) Import(ownerID string, in dto.ImportCustomerRequest) (*dto.CustomerResponse, error) {
	company, err := uc.companyRepo.GetByOwnerAndName(ownerID, in.CompanyName)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return uc.createInCompany(company.ID, in.CreateCustomerRequest)
}

func (uc *CustomerUseCase) createInCompany(companyID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCompanyAndEmail(companyID, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		Name:            in.Name,
		Email:           in.Email,
		Phone:           in.Phone,
		CustomerCompany: in.CustomerCompany,
		GSTIN:           in.GSTIN,
		State:           in.State,
		Address:         in.Address,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return customerToResponse(customer), nil
}

// ListBySelected devuelve los clientes de la empresa seleccionada.
func (uc *CustomerUseCase) ListBySelected(ownerID string) ([]*dto.CustomerResponse, error) {
	company, err := uc.companyRepo.GetSelected(ownerID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListByCompany(company.ID)
	if err != nil {
		return nil, err
	}
	return customersToResponses(list), nil
}

// ListByOwner recorre todas las empresas del dueño y aplana los clientes.
// El orden entre empresas es el orden de inserción de la lista de empresas;
// dentro de cada empresa, el orden propio del listado. Un dueño sin empresas
// es ErrNotFound (404 del listado), a diferencia de los reportes, que para el
// mismo estado responden lista vacía.
func (uc *CustomerUseCase) ListByOwner(ownerID string) ([]*dto.CustomerResponse, error) {
	companies, err := uc.companyRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		return nil, domain.ErrNotFound
	}
	var out []*dto.CustomerResponse
	for _, company := range companies {
		list, err := uc.repo.ListByCompany(company.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, customersToResponses(list)...)
	}
	return out, nil
}

// Update sobrescribe los campos mutables del cliente. ErrNotFound si el id no
// resuelve; CompanyID es inmutable.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	customer.Name = in.Name
	customer.Email = in.Email
	customer.Phone = in.Phone
	customer.CustomerCompany = in.CustomerCompany
	customer.GSTIN = in.GSTIN
	customer.State = in.State
	customer.Address = in.Address
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return customerToResponse(customer), nil
}

// Remove borra el cliente con guarda referencial: si alguna factura lo
// referencia, devuelve ErrHasInvoices y deja el cliente intacto.
func (uc *CustomerUseCase) Remove(id string) error {
	count, err := uc.invoiceRepo.CountByCustomer(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrHasInvoices
	}
	return uc.repo.Delete(id)
}

func customerToResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:              c.ID,
		CompanyID:       c.CompanyID,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		CustomerCompany: c.CustomerCompany,
		GSTIN:           c.GSTIN,
		State:           c.State,
		Address:         c.Address,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func customersToResponses(list []*entity.Customer) []*dto.CustomerResponse {
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, customerToResponse(c))
	}
	return out
}
