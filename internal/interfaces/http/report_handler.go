package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/application/dto"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/application/usecase"
)

// ReportHandler maneja las proyecciones de reporte y export (protegido).
// Los filtros llegan por query en camelCase (companyId, customerId, itemId);
// un filtro ausente no restringe.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Customers godoc
// @Summary      Reporte de clientes con nombre de empresa
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        companyId   query  string  false  "Filtrar por empresa"
// @Param        customerId  query  string  false  "Filtrar por cliente"
// @Success      200  {array}  dto.CustomerReportRow
// @Router       /api/customers/report [get]
func (h *ReportHandler) Customers(c *fiber.Ctx) error {
	out, err := h.uc.Customers(GetUserID(c), c.Query("companyId"), c.Query("customerId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CustomersExport godoc
// @Summary      Export de todos los clientes del usuario
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CustomerReportRow
// @Router       /api/customers/export [get]
func (h *ReportHandler) CustomersExport(c *fiber.Ctx) error {
	out, err := h.uc.CustomersExport(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Items godoc
// @Summary      Reporte de artículos con nombre de empresa
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        companyId  query  string  false  "Filtrar por empresa"
// @Param        itemId     query  string  false  "Filtrar por artículo"
// @Success      200  {array}  dto.ItemReportRow
// @Router       /api/items/report [get]
func (h *ReportHandler) Items(c *fiber.Ctx) error {
	out, err := h.uc.Items(GetUserID(c), c.Query("companyId"), c.Query("itemId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ItemsExport godoc
// @Summary      Export de todos los artículos del usuario
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ItemReportRow
// @Router       /api/items/export [get]
func (h *ReportHandler) ItemsExport(c *fiber.Ctx) error {
	out, err := h.uc.ItemsExport(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Invoices godoc
// @Summary      Reporte de facturas desnormalizado
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        companyId   query  string  false  "Filtrar por empresa"
// @Param        customerId  query  string  false  "Filtrar por cliente"
// @Param        itemId      query  string  false  "Filtrar por artículo"
// @Success      200  {array}  dto.InvoiceReportRow
// @Router       /api/invoices/report [get]
func (h *ReportHandler) Invoices(c *fiber.Ctx) error {
	out, err := h.uc.Invoices(GetUserID(c), c.Query("companyId"), c.Query("customerId"), c.Query("itemId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// InvoicesExport godoc
// @Summary      Export de todas las facturas del usuario
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InvoiceReportRow
// @Router       /api/invoices/export [get]
func (h *ReportHandler) InvoicesExport(c *fiber.Ctx) error {
	out, err := h.uc.InvoicesExport(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
