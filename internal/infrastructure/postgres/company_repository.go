package postgres

import (
	"context"
	"fmt"

	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/entity"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación de CompanyRepository (usable con pool o tx).
// Las secuencias multi-paso (ClearSelected + SetSelected + Create/Delete) las
// coordina el caso de uso bajo el TxRunner; aquí cada método es una sola
// sentencia.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, owner_id, name, gst_number, phone, email, address, state, selected, created_at, updated_at`

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.OwnerID, company.Name, company.GSTNumber,
		company.Phone, company.Email, company.Address, company.State,
		company.Selected, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.getOne(`SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
}

// GetByOwnerAndName obtiene la empresa del dueño con ese nombre.
func (r *CompanyRepo) GetByOwnerAndName(ownerID, name string) (*entity.Company, error) {
	return r.getOne(
		`SELECT `+companyColumns+` FROM companies WHERE owner_id = $1 AND name = $2`,
		ownerID, name)
}

// GetSelected obtiene la empresa seleccionada del dueño, o nil si no hay.
func (r *CompanyRepo) GetSelected(ownerID string) (*entity.Company, error) {
	return r.getOne(
		`SELECT `+companyColumns+` FROM companies WHERE owner_id = $1 AND selected`,
		ownerID)
}

// GetOtherByOwner obtiene otra empresa del dueño distinta de excludeID
// (candidata a promoción), o nil si no existe.
func (r *CompanyRepo) GetOtherByOwner(ownerID, excludeID string) (*entity.Company, error) {
	return r.getOne(
		`SELECT `+companyColumns+` FROM companies
		  WHERE owner_id = $1 AND id <> $2 ORDER BY created_at LIMIT 1`,
		ownerID, excludeID)
}

func (r *CompanyRepo) getOne(query string, args ...any) (*entity.Company, error) {
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&c.ID, &c.OwnerID, &c.Name, &c.GSTNumber, &c.Phone, &c.Email,
		&c.Address, &c.State, &c.Selected, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// ListByOwner devuelve las empresas del dueño en orden de creación.
func (r *CompanyRepo) ListByOwner(ownerID string) ([]*entity.Company, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+companyColumns+` FROM companies WHERE owner_id = $1 ORDER BY created_at`,
		ownerID)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(
			&c.ID, &c.OwnerID, &c.Name, &c.GSTNumber, &c.Phone, &c.Email,
			&c.Address, &c.State, &c.Selected, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ClearSelected limpia el flag Selected en todas las empresas del dueño.
func (r *CompanyRepo) ClearSelected(ownerID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE companies SET selected = FALSE WHERE owner_id = $1 AND selected`, ownerID)
	if err != nil {
		return fmt.Errorf("clear selected: %w", err)
	}
	return nil
}

// SetSelected marca la empresa como seleccionada. El índice parcial de
// selección única se evalúa por sentencia: si otra empresa del dueño sigue
// marcada, el UPDATE es ErrDuplicate (los llamadores limpian o borran antes
// de marcar).
func (r *CompanyRepo) SetSelected(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE companies SET selected = TRUE WHERE id = $1`, id)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("set selected: %w", err)
	}
	return nil
}

// Update actualiza los campos mutables de una empresa existente.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, gst_number = $3, phone = $4, email = $5,
		       address = $6, state = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.GSTNumber, company.Phone,
		company.Email, company.Address, company.State, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// Delete elimina una empresa por ID.
func (r *CompanyRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}
