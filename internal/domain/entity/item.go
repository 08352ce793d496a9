package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un producto o servicio facturable de una empresa.
type Item struct {
	ID        string
	CompanyID string
	Name      string // único dentro de la empresa
	Code      string
	Details   string
	HSNSAC    string // código de clasificación fiscal HSN/SAC, atributo opaco
	Qty       decimal.Decimal
	Rate      decimal.Decimal // precio unitario
	CreatedAt time.Time
	UpdatedAt time.Time
}
