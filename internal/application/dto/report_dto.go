package dto

import "github.com/shopspring/decimal"

// Discriminadores de forma de proyección. Cada reporte etiqueta sus filas con
// un __typename fijo; no hay despacho dinámico, cada endpoint devuelve una
// sola forma conocida.
const (
	TypenameCustomersReport = "CustomersWithCompanyNames"
	TypenameItemsReport     = "ItemsWithCompanyNames"
	TypenameInvoicesReport  = "InvoicesWithRelations"
)

// CustomerReportRow cliente decorado con el nombre de su empresa.
type CustomerReportRow struct {
	CustomerResponse
	CompanyName string `json:"companyName"`
	Typename    string `json:"__typename"`
}

// ItemReportRow ítem decorado con el nombre de su empresa.
type ItemReportRow struct {
	ItemResponse
	CompanyName string `json:"companyName"`
	Typename    string `json:"__typename"`
}

// InvoiceReportRow línea de factura desnormalizada para reportes y export:
// nombres de empresa/ítem/cliente y tarifa del ítem resueltos.
type InvoiceReportRow struct {
	InvoiceResponse
	Rate         decimal.Decimal `json:"rate"`
	CompanyName  string          `json:"companyName"`
	ItemName     string          `json:"itemName"`
	CustomerName string          `json:"customerName"`
	Typename     string          `json:"__typename"`
}
