package memory

import (
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/entity"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/repository"
)

var _ repository.CustomerRepository = (*customerStore)(nil)

type customerStore struct {
	s *Store
}

func cloneCustomer(c *entity.Customer) *entity.Customer {
	cp := *c
	return &cp
}

func (r *customerStore) Create(customer *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.customers {
		if c.CompanyID == customer.CompanyID && c.Email == customer.Email {
			return domain.ErrDuplicate
		}
	}
	r.s.customers = append(r.s.customers, cloneCustomer(customer))
	return nil
}

func (r *customerStore) GetByID(id string) (*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.customers {
		if c.ID == id {
			return cloneCustomer(c), nil
		}
	}
	return nil, nil
}

func (r *customerStore) GetByCompanyAndEmail(companyID, email string) (*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.customers {
		if c.CompanyID == companyID && c.Email == email {
			return cloneCustomer(c), nil
		}
	}
	return nil, nil
}

func (r *customerStore) GetByCompanyAndName(companyID, name string) (*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.customers {
		if c.CompanyID == companyID && c.Name == name {
			return cloneCustomer(c), nil
		}
	}
	return nil, nil
}

func (r *customerStore) ListByCompany(companyID string) ([]*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Customer
	for _, c := range r.s.customers {
		if c.CompanyID == companyID {
			out = append(out, cloneCustomer(c))
		}
	}
	return out, nil
}

func (r *customerStore) Update(customer *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, c := range r.s.customers {
		if c.ID == customer.ID {
			r.s.customers[i] = cloneCustomer(customer)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *customerStore) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, c := range r.s.customers {
		if c.ID == id {
			r.s.customers = append(r.s.customers[:i], r.s.customers[i+1:]...)
			return nil
		}
	}
	return nil
}
