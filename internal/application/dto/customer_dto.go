package dto

import "time"

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	CustomerCompany string `json:"customer_company"`
	GSTIN           string `json:"gstin"`
	State           string `json:"state"`
	Address         string `json:"address"`
}

// UpdateCustomerRequest body para PUT /api/customers/:id (sobrescritura).
type UpdateCustomerRequest = CreateCustomerRequest

// ImportCustomerRequest entrada del flujo de importación: resuelve la empresa
// destino por nombre en lugar de usar la seleccionada.
type ImportCustomerRequest struct {
	CreateCustomerRequest
	CompanyName string `json:"company_name"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID              string    `json:"id"`
	CompanyID       string    `json:"company_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	CustomerCompany string    `json:"customer_company"`
	GSTIN           string    `json:"gstin"`
	State           string    `json:"state"`
	Address         string    `json:"address"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
