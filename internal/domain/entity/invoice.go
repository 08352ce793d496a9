package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa una línea de factura. Un lote comparte Number dentro de
// la empresa; cada línea referencia exactamente un Customer y un Item, ambos
// de la misma Company (referencias cruzadas entre tenants son inválidas).
//
// Los montos (GST, Discount, Amount, TotalAmount) son atributos opacos
// provistos por el llamador: el backend no los recalcula.
type Invoice struct {
	ID          string
	CompanyID   string
	CustomerID  string
	ItemID      string
	Number      string
	InvoiceDate time.Time // reloj del servidor al momento de crear la línea
	DueDate     time.Time // provisto por el llamador, normalizado a UTC
	Qty         decimal.Decimal
	Discount    decimal.Decimal
	GST         decimal.Decimal
	Amount      decimal.Decimal
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
