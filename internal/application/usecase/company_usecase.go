package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/application/dto"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/entity"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/repository"
)

// CompanyUseCase mantiene el Tenant Store: empresas por dueño y el invariante
// de selección única. Todas las secuencias que tocan el flag Selected o el
// flag HasCompany del dueño corren bajo el TenantTxRunner.
type CompanyUseCase struct {
	repo     repository.CompanyRepository
	userRepo repository.UserRepository
	tx       TenantTxRunner
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository, userRepo repository.UserRepository, tx TenantTxRunner) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, userRepo: userRepo, tx: tx}
}

// Create crea una empresa para el dueño. Devuelve domain.ErrDuplicate si ya
// existe una con ese nombre para el mismo dueño. Dentro de una transacción:
// limpia Selected en las demás empresas del dueño, marca HasCompany en el
// usuario e inserta la nueva empresa como seleccionada; así nunca hay un
// estado visible con cero o dos seleccionadas.
func (uc *CompanyUseCase) Create(ctx context.Context, ownerID string, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByOwnerAndName(ownerID, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      in.Name,
		GSTNumber: in.GSTNumber,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		State:     in.State,
		Selected:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.tx.RunTenant(ctx, func(companies repository.CompanyRepository, users repository.UserRepository) error {
		if err := companies.ClearSelected(ownerID); err != nil {
			return err
		}
		owner, err := users.GetByID(ownerID)
		if err != nil {
			return err
		}
		if owner == nil {
			return domain.ErrUserNotFound
		}
		if !owner.HasCompany {
			owner.HasCompany = true
			owner.UpdatedAt = now
			if err := users.Update(owner); err != nil {
				return err
			}
		}
		return companies.Create(company)
	})
	if err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// List devuelve las empresas del dueño.
func (uc *CompanyUseCase) List(ownerID string) ([]*dto.CompanyResponse, error) {
	list, err := uc.repo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		out = append(out, entityToCompanyResponse(c))
	}
	return out, nil
}

// GetSelected devuelve la empresa seleccionada del dueño, o ErrNotFound si el
// dueño aún no tiene empresas.
func (uc *CompanyUseCase) GetSelected(ownerID string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetSelected(ownerID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return entityToCompanyResponse(company), nil
}

// SwitchSelected cambia la selección a la empresa del dueño con ese nombre.
// El original fallaba en silencio si el nombre no existía; aquí eso es
// ErrNotFound explícito y la secuencia limpiar-y-marcar corre en transacción.
func (uc *CompanyUseCase) SwitchSelected(ctx context.Context, ownerID, companyName string) (*dto.CompanyResponse, error) {
	target, err := uc.repo.GetByOwnerAndName(ownerID, companyName)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrNotFound
	}
	err = uc.tx.RunTenant(ctx, func(companies repository.CompanyRepository, _ repository.UserRepository) error {
		if err := companies.ClearSelected(ownerID); err != nil {
			return err
		}
		return companies.SetSelected(target.ID)
	})
	if err != nil {
		return nil, err
	}
	target.Selected = true
	return entityToCompanyResponse(target), nil
}

// Update sobrescribe los campos mutables de la empresa. ErrNotFound si el id
// no resuelve. OwnerID y Selected no se tocan por esta vía.
func (uc *CompanyUseCase) Update(id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	company.Name = in.Name
	company.GSTNumber = in.GSTNumber
	company.Phone = in.Phone
	company.Email = in.Email
	company.Address = in.Address
	company.State = in.State
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// Remove borra la empresa. Si era la seleccionada, dentro de la misma
// transacción promueve otra empresa del dueño, o limpia HasCompany del
// usuario si era la última. El borrado precede a la promoción: el índice
// parcial de selección única se evalúa por sentencia, así que marcar la
// sustituta mientras la saliente sigue marcada violaría la unicidad. El
// rollback de la transacción cubre el hueco intermedio.
func (uc *CompanyUseCase) Remove(ctx context.Context, id string) error {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	return uc.tx.RunTenant(ctx, func(companies repository.CompanyRepository, users repository.UserRepository) error {
		if err := companies.Delete(company.ID); err != nil {
			return err
		}
		if !company.Selected {
			return nil
		}
		other, err := companies.GetOtherByOwner(company.OwnerID, company.ID)
		if err != nil {
			return err
		}
		if other != nil {
			return companies.SetSelected(other.ID)
		}
		owner, err := users.GetByID(company.OwnerID)
		if err != nil {
			return err
		}
		if owner != nil {
			owner.HasCompany = false
			owner.UpdatedAt = time.Now()
			if err := users.Update(owner); err != nil {
				return err
			}
		}
		return nil
	})
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		OwnerID:   c.OwnerID,
		Name:      c.Name,
		GSTNumber: c.GSTNumber,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		State:     c.State,
		Selected:  c.Selected,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
