package memory

import (
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/entity"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/repository"
)

var _ repository.CompanyRepository = (*companyStore)(nil)

type companyStore struct {
	s *Store
}

func cloneCompany(c *entity.Company) *entity.Company {
	cp := *c
	return &cp
}

func (r *companyStore) Create(company *entity.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.companies {
		if c.OwnerID == company.OwnerID && c.Name == company.Name {
			return domain.ErrDuplicate
		}
		// El índice parcial de selección única también cubre el INSERT.
		if company.Selected && c.OwnerID == company.OwnerID && c.Selected {
			return domain.ErrDuplicate
		}
	}
	r.s.companies = append(r.s.companies, cloneCompany(company))
	return nil
}

func (r *companyStore) GetByID(id string) (*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.companies {
		if c.ID == id {
			return cloneCompany(c), nil
		}
	}
	return nil, nil
}

func (r *companyStore) GetByOwnerAndName(ownerID, name string) (*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.companies {
		if c.OwnerID == ownerID && c.Name == name {
			return cloneCompany(c), nil
		}
	}
	return nil, nil
}

func (r *companyStore) GetSelected(ownerID string) (*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.companies {
		if c.OwnerID == ownerID && c.Selected {
			return cloneCompany(c), nil
		}
	}
	return nil, nil
}

func (r *companyStore) ListByOwner(ownerID string) ([]*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Company
	for _, c := range r.s.companies {
		if c.OwnerID == ownerID {
			out = append(out, cloneCompany(c))
		}
	}
	return out, nil
}

func (r *companyStore) ClearSelected(ownerID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.companies {
		if c.OwnerID == ownerID {
			c.Selected = false
		}
	}
	return nil
}

// SetSelected replica la semántica del índice parcial único por sentencia:
// marcar una empresa mientras otra del mismo dueño sigue marcada es
// ErrDuplicate, igual que el 23505 del backend SQL. Así el store en memoria
// delata las secuencias que el índice real rechazaría.
func (r *companyStore) SetSelected(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var target *entity.Company
	for _, c := range r.s.companies {
		if c.ID == id {
			target = c
			break
		}
	}
	if target == nil {
		return domain.ErrNotFound
	}
	for _, c := range r.s.companies {
		if c.OwnerID == target.OwnerID && c.ID != target.ID && c.Selected {
			return domain.ErrDuplicate
		}
	}
	target.Selected = true
	return nil
}

func (r *companyStore) GetOtherByOwner(ownerID, excludeID string) (*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.companies {
		if c.OwnerID == ownerID && c.ID != excludeID {
			return cloneCompany(c), nil
		}
	}
	return nil, nil
}

func (r *companyStore) Update(company *entity.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, c := range r.s.companies {
		if c.ID == company.ID {
			r.s.companies[i] = cloneCompany(company)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *companyStore) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, c := range r.s.companies {
		if c.ID == id {
			r.s.companies = append(r.s.companies[:i], r.s.companies[i+1:]...)
			return nil
		}
	}
	return nil
}
