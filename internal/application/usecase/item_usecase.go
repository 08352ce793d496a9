package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/application/dto"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/entity"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/repository"
)

// ItemUseCase casos de uso del catálogo de ítems, espejo del de clientes con
// unicidad por nombre dentro de la empresa.
type ItemUseCase struct {
	repo        repository.ItemRepository
	companyRepo repository.CompanyRepository
	invoiceRepo repository.InvoiceRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, companyRepo repository.CompanyRepository, invoiceRepo repository.InvoiceRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo, companyRepo: companyRepo, invoiceRepo: invoiceRepo}
}

// Create crea un ítem en la empresa seleccionada del dueño. ErrDuplicate si
// el nombre ya existe dentro de esa empresa.
func (uc *ItemUseCase) Create(ownerID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	company, err := uc.companyRepo.GetSelected(ownerID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return uc.createInCompany(company.ID, in)
}

// Import crea un ítem resolviendo la empresa destino por nombre.
func (uc *ItemUseCase) Import(ownerID string, in dto.ImportItemRequest) (*dto.ItemResponse, error) {
	company, err := uc.companyRepo.GetByOwnerAndName(ownerID, in.CompanyName)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return uc.createInCompany(company.ID, in.CreateItemRequest)
}

func (uc *ItemUseCase) createInCompany(companyID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCompanyAndName(companyID, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	item := &entity.Item{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Code:      in.Code,
		Details:   in.Details,
		HSNSAC:    in.HSNSAC,
		Qty:       in.Qty,
		Rate:      in.Rate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return itemToResponse(item), nil
}

// ListBySelected devuelve los ítems de la empresa seleccionada.
func (uc *ItemUseCase) ListBySelected(ownerID string) ([]*dto.ItemResponse, error) {
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
	return itemsToResponses(list), nil
}

// ListByOwner recorre todas las empresas del dueño y aplana los ítems. Un
// dueño sin empresas es ErrNotFound (404 del listado), a diferencia de los
// reportes, que para el mismo estado responden lista vacía.
func (uc *ItemUseCase) ListByOwner(ownerID string) ([]*dto.ItemResponse, error) {
	companies, err := uc.companyRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		return nil, domain.ErrNotFound
	}
	var out []*dto.ItemResponse
	for _, company := range companies {
		list, err := uc.repo.ListByCompany(company.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, itemsToResponses(list)...)
	}
	return out, nil
}

// Update sobrescribe los campos mutables del ítem. ErrNotFound si el id no
// resuelve.
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	item.Name = in.Name
	item.Code = in.Code
	item.Details = in.Details
	item.HSNSAC = in.HSNSAC
	item.Qty = in.Qty
	item.Rate = in.Rate
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return itemToResponse(item), nil
}

// Remove borra el ítem con guarda referencial: facturas que lo referencien
// bloquean el borrado con ErrHasInvoices.
func (uc *ItemUseCase) Remove(id string) error {
	count, err := uc.invoiceRepo.CountByItem(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrHasInvoices
	}
	return uc.repo.Delete(id)
}

func itemToResponse(i *entity.Item) *dto.ItemResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:        i.ID,
		CompanyID: i.CompanyID,
		Name:      i.Name,
		Code:      i.Code,
		Details:   i.Details,
		HSNSAC:    i.HSNSAC,
		Qty:       i.Qty,
		Rate:      i.Rate,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func itemsToResponses(list []*entity.Item) []*dto.ItemResponse {
	out := make([]*dto.ItemResponse, 0, len(list))
	for _, i := range list {
		out = append(out, itemToResponse(i))
	}
	return out
}
