package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/application/dto"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/application/usecase"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/entity"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/infrastructure/memory"
)

func newCustomerUC(store *memory.Store) *usecase.CustomerUseCase {
	return usecase.NewCustomerUseCase(store.Customers(), store.Companies(), store.Invoices())
}

// seedOwnerWithCompany deja un dueño con una empresa seleccionada y devuelve
// ambos ids.
func seedOwnerWithCompany(t *testing.T, store *memory.Store, name string) (ownerID, companyID string) {
	t.Helper()
	ownerID = seedUser(t, store)
	out, err := newCompanyUC(store).Create(context.Background(), ownerID, dto.CreateCompanyRequest{Name: name})
	require.NoError(t, err)
	return ownerID, out.ID
}

// Caso 1: el cliente se crea en la empresa seleccionada.
func TestCrearCliente_EnEmpresaSeleccionada(t *testing.T) {
	store := memory.NewStore()
	owner, companyID := seedOwnerWithCompany(t, store, "Acme")
	uc := newCustomerUC(store)

	out, err := uc.Create(owner, dto.CreateCustomerRequest{Name: "Juan", Email: "juan@mail.com"})
	require.NoError(t, err)
	assert.Equal(t, companyID, out.CompanyID, "el cliente debe colgar de la seleccionada")
}

// Caso 2: sin empresa seleccionada la operación corta con ErrNotFound.
func TestCrearCliente_SinEmpresaSeleccionada(t *testing.T) {
	store := memory.NewStore()
	owner := seedUser(t, store)
	uc := newCustomerUC(store)

	_, err := uc.Create(owner, dto.CreateCustomerRequest{Name: "Juan", Email: "juan@mail.com"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso 3: email duplicado dentro de la empresa es conflicto; en otra empresa
// del mismo dueño no lo es.
func TestCrearCliente_EmailUnicoPorEmpresa(t *testing.T) {
	store := memory.NewStore()
	owner, _ := seedOwnerWithCompany(t, store, "Acme")
	uc := newCustomerUC(store)
	ctx := context.Background()

	_, err := uc.Create(owner, dto.CreateCustomerRequest{Name: "Juan", Email: "juan@mail.com"})
	require.NoError(t, err)
	_, err = uc.Create(owner, dto.CreateCustomerRequest{Name: "Otro", Email: "juan@mail.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// La segunda empresa queda seleccionada; el mismo email entra sin conflicto.
	_, err = newCompanyUC(store).Create(ctx, owner, dto.CreateCompanyRequest{Name: "Globex"})
	require.NoError(t, err)
	_, err = uc.Create(owner, dto.CreateCustomerRequest{Name: "Juan", Email: "juan@mail.com"})
	assert.NoError(t, err, "el email es único por empresa, no global")
}

// Caso 4: importación resuelve la empresa destino por nombre aunque no sea la
// seleccionada.
func TestImportarCliente_EmpresaPorNombre(t *testing.T) {
	store := memory.NewStore()
	owner, firstID := seedOwnerWithCompany(t, store, "Acme")
	_, err := newCompanyUC(store).Create(context.Background(), owner, dto.CreateCompanyRequest{Name: "Globex"})
	require.NoError(t, err)
	uc := newCustomerUC(store)

	out, err := uc.Import(owner, dto.ImportCustomerRequest{
		CreateCustomerRequest: dto.CreateCustomerRequest{Name: "Juan", Email: "juan@mail.com"},
		CompanyName:           "Acme",
	})
	require.NoError(t, err)
	assert.Equal(t, firstID, out.CompanyID, "debe resolver la empresa por nombre, no por selección")

	_, err = uc.Import(owner, dto.ImportCustomerRequest{
		CreateCustomerRequest: dto.CreateCustomerRequest{Name: "Juan", Email: "x@mail.com"},
		CompanyName:           "NoExiste",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso 5: el listado global abanica todas las empresas del dueño; un dueño
// sin empresas es ErrNotFound.
func TestListarClientes_PorDuenoAplana(t *testing.T) {
	store := memory.NewStore()
	owner, _ := seedOwnerWithCompany(t, store, "Acme")
	uc := newCustomerUC(store)
	ctx := context.Background()

	_, err := uc.Create(owner, dto.CreateCustomerRequest{Name: "A", Email: "a@mail.com"})
	require.NoError(t, err)
	_, err = newCompanyUC(store).Create(ctx, owner, dto.CreateCompanyRequest{Name: "Globex"})
	require.NoError(t, err)
	_, err = uc.Create(owner, dto.CreateCustomerRequest{Name: "B", Email: "b@mail.com"})
	require.NoError(t, err)

	all, err := uc.ListByOwner(owner)
	require.NoError(t, err)
	assert.Len(t, all, 2, "debe aplanar los clientes de todas las empresas")

	selectedOnly, err := uc.ListBySelected(owner)
	require.NoError(t, err)
	assert.Len(t, selectedOnly, 1, "el listado por selección solo ve la empresa activa")

	sinEmpresas := seedUser(t, store)
	_, err = uc.ListByOwner(sinEmpresas)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso 6: la guarda referencial bloquea el borrado mientras existan facturas
// y lo permite cuando desaparecen.
func TestEliminarCliente_GuardaReferencial(t *testing.T) {
	store := memory.NewStore()
	owner, companyID := seedOwnerWithCompany(t, store, "Acme")
	uc := newCustomerUC(store)

	out, err := uc.Create(owner, dto.CreateCustomerRequest{Name: "Juan", Email: "juan@mail.com"})
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, store.Invoices().Create(&entity.Invoice{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		CustomerID: out.ID,
		ItemID:     uuid.New().String(),
		Number:     "INV-1",
		Qty:        decimal.NewFromInt(1),
		CreatedAt:  now,
		UpdatedAt:  now,
	}))

	err = uc.Remove(out.ID)
	assert.ErrorIs(t, err, domain.ErrHasInvoices, "con facturas el borrado debe bloquearse")

	_, err = store.Invoices().DeleteByNumber(companyID, "INV-1")
	require.NoError(t, err)
	assert.NoError(t, uc.Remove(out.ID), "sin facturas el borrado procede")

	got, err := store.Customers().GetByID(out.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

// Caso 7: Update sobrescribe y conserva la empresa.
func TestActualizarCliente_Sobrescribe(t *testing.T) {
	store := memory.NewStore()
	owner, companyID := seedOwnerWithCompany(t, store, "Acme")
	uc := newCustomerUC(store)

	created, err := uc.Create(owner, dto.CreateCustomerRequest{Name: "Juan", Email: "juan@mail.com"})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateCustomerRequest{Name: "Juan P", Email: "jp@mail.com", GSTIN: "GST-1"})
	require.NoError(t, err)
	assert.Equal(t, "Juan P", out.Name)
	assert.Equal(t, "jp@mail.com", out.Email)
	assert.Equal(t, companyID, out.CompanyID, "CompanyID es inmutable")

	_, err = uc.Update(uuid.New().String(), dto.UpdateCustomerRequest{Name: "X", Email: "x@mail.com"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
