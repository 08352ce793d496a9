package memory

import (
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/entity"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/repository"
)

var _ repository.ItemRepository = (*itemStore)(nil)

type itemStore struct {
	s *Store
}

func cloneItem(it *entity.Item) *entity.Item {
	cp := *it
	return &cp
}

func (r *itemStore) Create(item *entity.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, it := range r.s.items {
		if it.CompanyID == item.CompanyID && it.Name == item.Name {
			return domain.ErrDuplicate
		}
	}
	r.s.items = append(r.s.items, cloneItem(item))
	return nil
}

func (r *itemStore) GetByID(id string) (*entity.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, it := range r.s.items {
		if it.ID == id {
			return cloneItem(it), nil
		}
	}
	return nil, nil
}

func (r *itemStore) GetByCompanyAndName(companyID, name string) (*entity.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, it := range r.s.items {
		if it.CompanyID == companyID && it.Name == name {
			return cloneItem(it), nil
		}
	}
	return nil, nil
}

func (r *itemStore) ListByCompany(companyID string) ([]*entity.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Item
	for _, it := range r.s.items {
		if it.CompanyID == companyID {
			out = append(out, cloneItem(it))
		}
	}
	return out, nil
}

func (r *itemStore) Update(item *entity.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, it := range r.s.items {
		if it.ID == item.ID {
			r.s.items[i] = cloneItem(item)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *itemStore) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, it := range r.s.items {
		if it.ID == id {
			r.s.items = append(r.s.items[:i], r.s.items[i+1:]...)
			return nil
		}
	}
	return nil
}
