package postgres

import (
	"context"
	"fmt"

	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/entity"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador.
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, company_id, customer_id, item_id, invoice_number, invoice_date, due_date, qty, discount, gst, amount, total_amount, created_at, updated_at`

// Create persiste una línea de factura.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.CompanyID, invoice.CustomerID, invoice.ItemID,
		invoice.Number, invoice.InvoiceDate, invoice.DueDate,
		invoice.Qty, invoice.Discount, invoice.GST,
		invoice.Amount, invoice.TotalAmount,
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// ExistsByCompanyAndNumber indica si existe alguna línea con ese número en la
// empresa.
func (r *InvoiceRepo) ExistsByCompanyAndNumber(companyID, number string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM invoices WHERE company_id = $1 AND invoice_number = $2)`,
		companyID, number).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists invoice by number: %w", err)
	}
	return exists, nil
}

// ExistsByItemAndNumber indica si existe una línea con ese artículo y número
// (detección de duplicados en importación).
func (r *InvoiceRepo) ExistsByItemAndNumber(itemID, number string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (
			SELECT 1 FROM invoices WHERE item_id = $1 AND invoice_number = $2)`,
		itemID, number).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists invoice by item: %w", err)
	}
	return exists, nil
}

// ListByCompany lista todas las líneas de la empresa en orden de creación.
func (r *InvoiceRepo) ListByCompany(companyID string) ([]*entity.Invoice, error) {
	return r.list(
		`SELECT `+invoiceColumns+` FROM invoices WHERE company_id = $1 ORDER BY created_at`,
		companyID)
}

// ListByNumber lista las líneas de un número de factura dentro de la empresa.
func (r *InvoiceRepo) ListByNumber(companyID, number string) ([]*entity.Invoice, error) {
	return r.list(
		`SELECT `+invoiceColumns+` FROM invoices
		  WHERE company_id = $1 AND invoice_number = $2 ORDER BY created_at`,
		companyID, number)
}

// ListByCompanyFiltered lista líneas con predicados opcionales de cliente y
// artículo (reportes). Cadenas vacías desactivan el predicado.
func (r *InvoiceRepo) ListByCompanyFiltered(companyID, customerID, itemID string) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE company_id = $1`
	args := []any{companyID}
	if customerID != "" {
		args = append(args, customerID)
		query += fmt.Sprintf(" AND customer_id = $%d", len(args))
	}
	if itemID != "" {
		args = append(args, itemID)
		query += fmt.Sprintf(" AND item_id = $%d", len(args))
	}
	query += " ORDER BY created_at"
	return r.list(query, args...)
}

func (r *InvoiceRepo) list(query string, args ...any) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(
			&inv.ID, &inv.CompanyID, &inv.CustomerID, &inv.ItemID,
			&inv.Number, &inv.InvoiceDate, &inv.DueDate,
			&inv.Qty, &inv.Discount, &inv.GST,
			&inv.Amount, &inv.TotalAmount,
			&inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// DeleteByNumber elimina todas las líneas de un número de factura y devuelve
// cuántas se eliminaron. Cero filas no es un error.
func (r *InvoiceRepo) DeleteByNumber(companyID, number string) (int64, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM invoices WHERE company_id = $1 AND invoice_number = $2`,
		companyID, number)
	if err != nil {
		return 0, fmt.Errorf("delete invoices: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CountByCustomer cuenta las líneas que referencian al cliente (guarda de
// borrado).
func (r *InvoiceRepo) CountByCustomer(customerID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM invoices WHERE customer_id = $1`, customerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count invoices by customer: %w", err)
	}
	return n, nil
}

// CountByItem cuenta las líneas que referencian al artículo (guarda de
// borrado).
func (r *InvoiceRepo) CountByItem(itemID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM invoices WHERE item_id = $1`, itemID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count invoices by item: %w", err)
	}
	return n, nil
}
