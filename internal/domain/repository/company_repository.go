package repository

import "github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company.
// ClearSelected y SetSelected son pasos de las secuencias multi-escritura del
// invariante de selección; los casos de uso los ejecutan dentro de una
// transacción (TenantTxRunner) para que el invariante nunca sea observable
// roto entre pasos.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByOwnerAndName(ownerID, name string) (*entity.Company, error)
	// GetSelected devuelve la empresa con Selected=true del dueño, o nil si
	// no tiene ninguna (usuario nuevo sin empresas).
	GetSelected(ownerID string) (*entity.Company, error)
	ListByOwner(ownerID string) ([]*entity.Company, error)
	ClearSelected(ownerID string) error
	SetSelected(id string) error
	// GetOtherByOwner devuelve cualquier otra empresa del dueño distinta de
	// excludeID (candidata a promoción al borrar la seleccionada), o nil.
	GetOtherByOwner(ownerID, excludeID string) (*entity.Company, error)
	Update(company *entity.Company) error
	Delete(id string) error
}
