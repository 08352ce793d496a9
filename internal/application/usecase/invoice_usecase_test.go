package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/application/dto"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/application/usecase"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/infrastructure/memory"
	infrapdf "github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/infrastructure/pdf"
)

func newInvoiceUC(store *memory.Store) *usecase.InvoiceUseCase {
	return usecase.NewInvoiceUseCase(
		store.Invoices(), store.Companies(), store.Customers(), store.Items(),
		store, infrapdf.NewMarotoPDFGenerator(),
	)
}

// seedBilling deja un dueño con empresa seleccionada, un cliente y un ítem.
func seedBilling(t *testing.T, store *memory.Store) (ownerID, customerID, itemID string) {
	t.Helper()
	ownerID, _ = seedOwnerWithCompany(t, store, "Acme")
	customer, err := newCustomerUC(store).Create(ownerID, dto.CreateCustomerRequest{Name: "Juan", Email: "juan@mail.com"})
	require.NoError(t, err)
	item, err := newItemUC(store).Create(ownerID, dto.CreateItemRequest{Name: "Tornillo", Rate: decimal.NewFromInt(10)})
	require.NoError(t, err)
	return ownerID, customer.ID, item.ID
}

func line(number, customerID, itemID string) dto.InvoiceLineRequest {
	return dto.InvoiceLineRequest{
		InvoiceNumber: number,
		CustomerID:    customerID,
		ItemID:        itemID,
		DueDate:       "2026-09-30",
		Qty:           decimal.NewFromInt(2),
		GST:           decimal.NewFromInt(18),
		Amount:        decimal.NewFromInt(20),
		TotalAmount:   decimal.NewFromFloat(23.6),
	}
}

// Caso 1: un lote crea todas sus líneas con el mismo número y fechas con zona
// UTC.
func TestCrearLote_TodasLasLineas(t *testing.T) {
	store := memory.NewStore()
	owner, customerID, itemID := seedBilling(t, store)
	uc := newInvoiceUC(store)

	out, err := uc.CreateBatch(context.Background(), owner, dto.CreateInvoiceBatchRequest{
		Lines: []dto.InvoiceLineRequest{
			line("INV-1", customerID, itemID),
			line("INV-1", customerID, itemID),
		},
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, inv := range out {
		assert.Equal(t, "INV-1", inv.Number)
		assert.Equal(t, time.UTC, inv.DueDate.Location(), "el vencimiento se normaliza a UTC")
		assert.Equal(t, 2026, inv.DueDate.Year())
	}
}

// Caso 2: un número ya usado en la empresa es conflicto; el mismo número en
// otra empresa no lo es.
func TestCrearLote_NumeroUnicoPorEmpresa(t *testing.T) {
	store := memory.NewStore()
	owner, customerID, itemID := seedBilling(t, store)
	uc := newInvoiceUC(store)
	ctx := context.Background()

	_, err := uc.CreateBatch(ctx, owner, dto.CreateInvoiceBatchRequest{
		Lines: []dto.InvoiceLineRequest{line("INV-1", customerID, itemID)},
	})
	require.NoError(t, err)

	_, err = uc.CreateBatch(ctx, owner, dto.CreateInvoiceBatchRequest{
		Lines: []dto.InvoiceLineRequest{line("INV-1", customerID, itemID)},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Otra empresa del mismo dueño: el número se reutiliza sin conflicto.
	_, err = newCompanyUC(store).Create(ctx, owner, dto.CreateCompanyRequest{Name: "Globex"})
	require.NoError(t, err)
	customer2, err := newCustomerUC(store).Create(owner, dto.CreateCustomerRequest{Name: "Ana", Email: "ana@mail.com"})
	require.NoError(t, err)
	item2, err := newItemUC(store).Create(owner, dto.CreateItemRequest{Name: "Tuerca"})
	require.NoError(t, err)
	_, err = uc.CreateBatch(ctx, owner, dto.CreateInvoiceBatchRequest{
		Lines: []dto.InvoiceLineRequest{line("INV-1", customer2.ID, item2.ID)},
	})
	assert.NoError(t, err, "el número de factura es único por empresa, no global")
}

// Caso 3: lote vacío o fecha inválida es entrada inválida.
func TestCrearLote_EntradasInvalidas(t *testing.T) {
	store := memory.NewStore()
	owner, customerID, itemID := seedBilling(t, store)
	uc := newInvoiceUC(store)
	ctx := context.Background()

	_, err := uc.CreateBatch(ctx, owner, dto.CreateInvoiceBatchRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "lote vacío")

	bad := line("INV-9", customerID, itemID)
	bad.DueDate = "30/09/2026"
	_, err = uc.CreateBatch(ctx, owner, dto.CreateInvoiceBatchRequest{
		Lines: []dto.InvoiceLineRequest{bad},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "formato de fecha no soportado")
}

// Caso 4: borrar un lote elimina todas sus líneas y repetir el borrado sigue
// siendo éxito.
func TestBorrarLote_Idempotente(t *testing.T) {
	store := memory.NewStore()
	owner, customerID, itemID := seedBilling(t, store)
	uc := newInvoiceUC(store)
	ctx := context.Background()

	_, err := uc.CreateBatch(ctx, owner, dto.CreateInvoiceBatchRequest{
		Lines: []dto.InvoiceLineRequest{
			line("INV-1", customerID, itemID),
			line("INV-1", customerID, itemID),
		},
	})
	require.NoError(t, err)

	require.NoError(t, uc.RemoveBatch(owner, "INV-1"))
	rest, err := uc.GetBySelected(owner)
	require.NoError(t, err)
	assert.Empty(t, rest)

	assert.NoError(t, uc.RemoveBatch(owner, "INV-1"), "borrar un número inexistente es éxito sin efecto")
}

// Caso 5: GetByNumber resuelve empresa, cliente e ítem por línea.
func TestObtenerPorNumero_ResuelveRelaciones(t *testing.T) {
	store := memory.NewStore()
	owner, customerID, itemID := seedBilling(t, store)
	uc := newInvoiceUC(store)

	_, err := uc.CreateBatch(context.Background(), owner, dto.CreateInvoiceBatchRequest{
		Lines: []dto.InvoiceLineRequest{line("INV-1", customerID, itemID)},
	})
	require.NoError(t, err)

	out, err := uc.GetByNumber(owner, "INV-1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].Company)
	assert.Equal(t, "Acme", out[0].Company.Name)
	require.NotNil(t, out[0].Customer)
	assert.Equal(t, "Juan", out[0].Customer.Name)
	require.NotNil(t, out[0].Item)
	assert.Equal(t, "Tornillo", out[0].Item.Name)

	// Un número sin líneas es lista vacía, no error.
	empty, err := uc.GetByNumber(owner, "INV-404")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// Caso 6: el listado por empresa anota el nombre del cliente en cada línea.
func TestListarPorSeleccionada_AnotaNombreCliente(t *testing.T) {
	store := memory.NewStore()
	owner, customerID, itemID := seedBilling(t, store)
	uc := newInvoiceUC(store)

	_, err := uc.CreateBatch(context.Background(), owner, dto.CreateInvoiceBatchRequest{
		Lines: []dto.InvoiceLineRequest{line("INV-1", customerID, itemID)},
	})
	require.NoError(t, err)

	out, err := uc.GetBySelected(owner)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Juan", out[0].CustomerName)
}

// Caso 7: la importación resuelve empresa/cliente/ítem por nombre y detecta
// duplicados por ítem + número.
func TestImportarFactura_PorNombres(t *testing.T) {
	store := memory.NewStore()
	owner, _, _ := seedBilling(t, store)
	uc := newInvoiceUC(store)
	ctx := context.Background()

	in := dto.ImportInvoiceRequest{
		CompanyName:   "Acme",
		CustomerName:  "Juan",
		ItemName:      "Tornillo",
		InvoiceNumber: "IMP-1",
		InvoiceDate:   "2026-08-01",
		DueDate:       "2026-09-01",
		Qty:           decimal.NewFromInt(1),
		Amount:        decimal.NewFromInt(10),
		TotalAmount:   decimal.NewFromInt(11),
	}
	out, err := uc.Import(ctx, owner, in)
	require.NoError(t, err)
	assert.Equal(t, "IMP-1", out.Number)

	_, err = uc.Import(ctx, owner, in)
	assert.ErrorIs(t, err, domain.ErrDuplicate, "misma pareja ítem + número es duplicado")

	in.ItemName = "NoExiste"
	in.InvoiceNumber = "IMP-2"
	_, err = uc.Import(ctx, owner, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso 8: el PDF del lote se genera con contenido.
func TestRenderPDF_GeneraDocumento(t *testing.T) {
	store := memory.NewStore()
	owner, customerID, itemID := seedBilling(t, store)
	uc := newInvoiceUC(store)
	ctx := context.Background()

	_, err := uc.CreateBatch(ctx, owner, dto.CreateInvoiceBatchRequest{
		Lines: []dto.InvoiceLineRequest{line("INV-1", customerID, itemID)},
	})
	require.NoError(t, err)

	pdfBytes, err := uc.RenderPDF(ctx, owner, "INV-1")
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]), "debe producir un PDF válido")

	_, err = uc.RenderPDF(ctx, owner, "INV-404")
	assert.ErrorIs(t, err, domain.ErrNotFound, "sin líneas no hay documento")
}
