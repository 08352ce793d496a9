package postgres

import (
	"context"
	"fmt"

	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/entity"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador.
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, company_id, item_name, item_code, item_details, hsn_sac, qty, rate, created_at, updated_at`

// Create persiste un nuevo artículo.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.CompanyID, item.Name, item.Code, item.Details,
		item.HSNSAC, item.Qty, item.Rate, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.getOne(`SELECT `+itemColumns+` FROM items WHERE id = $1`, id)
}

// GetByCompanyAndName obtiene un artículo por empresa y nombre (clave única).
func (r *ItemRepo) GetByCompanyAndName(companyID, name string) (*entity.Item, error) {
	return r.getOne(
		`SELECT `+itemColumns+` FROM items WHERE company_id = $1 AND item_name = $2`,
		companyID, name)
}

func (r *ItemRepo) getOne(query string, args ...any) (*entity.Item, error) {
	var it entity.Item
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&it.ID, &it.CompanyID, &it.Name, &it.Code, &it.Details,
		&it.HSNSAC, &it.Qty, &it.Rate, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// ListByCompany lista artículos de la empresa en orden de creación.
func (r *ItemRepo) ListByCompany(companyID string) ([]*entity.Item, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+itemColumns+` FROM items WHERE company_id = $1 ORDER BY created_at`,
		companyID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(
			&it.ID, &it.CompanyID, &it.Name, &it.Code, &it.Details,
			&it.HSNSAC, &it.Qty, &it.Rate, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update sobrescribe los campos mutables de un artículo.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET item_name = $2, item_code = $3, item_details = $4,
		       hsn_sac = $5, qty = $6, rate = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Code, item.Details, item.HSNSAC,
		item.Qty, item.Rate, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete elimina un artículo por ID.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
