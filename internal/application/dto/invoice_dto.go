package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceLineRequest línea de un lote de facturación. Todas las líneas del
// lote comparten InvoiceNumber; los montos son opacos (no se recalculan).
type InvoiceLineRequest struct {
	InvoiceNumber string          `json:"invoice_number"`
	CustomerID    string          `json:"customer_id"`
	ItemID        string          `json:"item_id"`
	DueDate       string          `json:"due_date"` // RFC3339 o YYYY-MM-DD
	Qty           decimal.Decimal `json:"qty"`
	Discount      decimal.Decimal `json:"discount"`
	GST           decimal.Decimal `json:"gst"`
	Amount        decimal.Decimal `json:"amount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// CreateInvoiceBatchRequest body para POST /api/invoices.
type CreateInvoiceBatchRequest struct {
	Lines []InvoiceLineRequest `json:"inputs"`
}

// ImportInvoiceRequest entrada del flujo de importación: resuelve empresa,
// cliente e ítem por nombre.
type ImportInvoiceRequest struct {
	CompanyName   string          `json:"company_name"`
	CustomerName  string          `json:"customer_name"`
	ItemName      string          `json:"item_name"`
	InvoiceNumber string          `json:"invoice_number"`
	InvoiceDate   string          `json:"invoice_date"`
	DueDate       string          `json:"due_date"`
	Qty           decimal.Decimal `json:"qty"`
	Discount      decimal.Decimal `json:"discount"`
	GST           decimal.Decimal `json:"gst"`
	Amount        decimal.Decimal `json:"amount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// InvoiceResponse línea de factura en respuestas.
type InvoiceResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	CustomerID  string          `json:"customer_id"`
	ItemID      string          `json:"item_id"`
	Number      string          `json:"invoice_number"`
	InvoiceDate time.Time       `json:"invoice_date"`
	DueDate     time.Time       `json:"due_date"`
	Qty         decimal.Decimal `json:"qty"`
	Discount    decimal.Decimal `json:"discount"`
	GST         decimal.Decimal `json:"gst"`
	Amount      decimal.Decimal `json:"amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	// CustomerName solo se completa en el listado por empresa.
	CustomerName string `json:"customer_name,omitempty"`
}

// InvoiceDetailResponse línea de factura con sus entidades relacionadas
// resueltas (GET /api/invoices?number=...).
type InvoiceDetailResponse struct {
	InvoiceResponse
	Company  *CompanyResponse  `json:"company,omitempty"`
	Customer *CustomerResponse `json:"customer,omitempty"`
	Item     *ItemResponse     `json:"item,omitempty"`
}
