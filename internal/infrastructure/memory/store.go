// Package memory implementa los puertos de repositorio sobre slices en
// memoria protegidos por un mutex. Se usa en pruebas de casos de uso y como
// backend liviano de desarrollo.
package memory

import (
	"context"
	"sync"

	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/application/usecase"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/entity"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/repository"
)

var _ usecase.TenantTxRunner = (*Store)(nil)
var _ usecase.InvoiceTxRunner = (*Store)(nil)

// Store contiene todas las colecciones bajo un único mutex. Las lecturas
// devuelven copias para que los llamadores no muten el estado compartido.
type Store struct {
	mu        sync.RWMutex
	users     []*entity.User
	companies []*entity.Company
	customers []*entity.Customer
	items     []*entity.Item
	invoices  []*entity.Invoice
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{}
}

// Users devuelve la vista de repositorio de usuarios.
func (s *Store) Users() repository.UserRepository { return &userStore{s: s} }

// Companies devuelve la vista de repositorio de empresas.
func (s *Store) Companies() repository.CompanyRepository { return &companyStore{s: s} }

// Customers devuelve la vista de repositorio de clientes.
func (s *Store) Customers() repository.CustomerRepository { return &customerStore{s: s} }

// Items devuelve la vista de repositorio de artículos.
func (s *Store) Items() repository.ItemRepository { return &itemStore{s: s} }

// Invoices devuelve la vista de repositorio de facturas.
func (s *Store) Invoices() repository.InvoiceRepository { return &invoiceStore{s: s} }

// RunTenant ejecuta fn con las vistas de empresas y usuarios. No hay
// aislamiento transaccional en memoria; la serialización la da el mutex de
// cada operación.
func (s *Store) RunTenant(_ context.Context, fn func(
	companies repository.CompanyRepository,
	users repository.UserRepository,
) error) error {
	return fn(s.Companies(), s.Users())
}

// RunInvoices ejecuta fn con la vista de facturas.
func (s *Store) RunInvoices(_ context.Context, fn func(
	invoices repository.InvoiceRepository,
) error) error {
	return fn(s.Invoices())
}
