package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest body para POST /api/items.
type CreateItemRequest struct {
	Name    string          `json:"item_name"`
	Code    string          `json:"item_code"`
	Details string          `json:"item_details"`
	HSNSAC  string          `json:"hsn_sac"`
	Qty     decimal.Decimal `json:"qty"`
	Rate    decimal.Decimal `json:"rate"`
}

// UpdateItemRequest body para PUT /api/items/:id (sobrescritura).
type UpdateItemRequest = CreateItemRequest

// ImportItemRequest entrada del flujo de importación (empresa por nombre).
type ImportItemRequest struct {
	CreateItemRequest
	CompanyName string `json:"company_name"`
}

// ItemResponse ítem en respuestas.
type ItemResponse struct {
	ID        string          `json:"id"`
	CompanyID string          `json:"company_id"`
	Name      string          `json:"item_name"`
	Code      string          `json:"item_code"`
	Details   string          `json:"item_details"`
	HSNSAC    string          `json:"hsn_sac"`
	Qty       decimal.Decimal `json:"qty"`
	Rate      decimal.Decimal `json:"rate"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
