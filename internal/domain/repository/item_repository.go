package repository

import "github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetByCompanyAndName(companyID, name string) (*entity.Item, error)
	ListByCompany(companyID string) ([]*entity.Item, error)
	Update(item *entity.Item) error
	Delete(id string) error
}
