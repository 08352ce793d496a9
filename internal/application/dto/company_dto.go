package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name      string `json:"name"`
	GSTNumber string `json:"gst_number"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	State     string `json:"state"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (sobrescritura de
// campos mutables; OwnerID y Selected no se tocan por esta vía).
type UpdateCompanyRequest struct {
	Name      string `json:"name"`
	GSTNumber string `json:"gst_number"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	State     string `json:"state"`
}

// SwitchCompanyRequest entrada para cambiar la empresa seleccionada.
type SwitchCompanyRequest struct {
	CompanyName string `json:"company_name"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	GSTNumber string    `json:"gst_number"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	State     string    `json:"state"`
	Selected  bool      `json:"selected"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
