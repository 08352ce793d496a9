package memory

import (
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/entity"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*invoiceStore)(nil)

type invoiceStore struct {
	s *Store
}

func cloneInvoice(inv *entity.Invoice) *entity.Invoice {
	cp := *inv
	return &cp
}

func (r *invoiceStore) Create(invoice *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, inv := range r.s.invoices {
		if inv.ID == invoice.ID {
			return domain.ErrDuplicate
		}
	}
	r.s.invoices = append(r.s.invoices, cloneInvoice(invoice))
	return nil
}

func (r *invoiceStore) ExistsByCompanyAndNumber(companyID, number string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, inv := range r.s.invoices {
		if inv.CompanyID == companyID && inv.Number == number {
			return true, nil
		}
	}
	return false, nil
}

func (r *invoiceStore) ExistsByItemAndNumber(itemID, number string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, inv := range r.s.invoices {
		if inv.ItemID == itemID && inv.Number == number {
			return true, nil
		}
	}
	return false, nil
}

func (r *invoiceStore) ListByCompany(companyID string) ([]*entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Invoice
	for _, inv := range r.s.invoices {
		if inv.CompanyID == companyID {
			out = append(out, cloneInvoice(inv))
		}
	}
	return out, nil
}

func (r *invoiceStore) ListByNumber(companyID, number string) ([]*entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Invoice
	for _, inv := range r.s.invoices {
		if inv.CompanyID == companyID && inv.Number == number {
			out = append(out, cloneInvoice(inv))
		}
	}
	return out, nil
}

func (r *invoiceStore) ListByCompanyFiltered(companyID, customerID, itemID string) ([]*entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Invoice
	for _, inv := range r.s.invoices {
		if inv.CompanyID != companyID {
			continue
		}
		if customerID != "" && inv.CustomerID != customerID {
			continue
		}
		if itemID != "" && inv.ItemID != itemID {
			continue
		}
		out = append(out, cloneInvoice(inv))
	}
	return out, nil
}

func (r *invoiceStore) DeleteByNumber(companyID, number string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var kept []*entity.Invoice
	var removed int64
	for _, inv := range r.s.invoices {
		if inv.CompanyID == companyID && inv.Number == number {
			removed++
			continue
		}
		kept = append(kept, inv)
	}
	r.s.invoices = kept
	return removed, nil
}

func (r *invoiceStore) CountByCustomer(customerID string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, inv := range r.s.invoices {
		if inv.CustomerID == customerID {
			n++
		}
	}
	return n, nil
}

func (r *invoiceStore) CountByItem(itemID string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, inv := range r.s.invoices {
		if inv.ItemID == itemID {
			n++
		}
	}
	return n, nil
}
