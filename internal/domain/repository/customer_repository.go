package repository

import "github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByCompanyAndEmail(companyID, email string) (*entity.Customer, error)
	GetByCompanyAndName(companyID, name string) (*entity.Customer, error)
	ListByCompany(companyID string) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
