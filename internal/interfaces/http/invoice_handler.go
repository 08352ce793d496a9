package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/application/dto"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/application/usecase"
	"github.com/OwaiseZargerOxcyTech/project-app-nem-backend/internal/domain"
)

// InvoiceHandler maneja las peticiones HTTP para el libro de facturas
// (protegido).
type InvoiceHandler struct {
	uc *usecase.InvoiceUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *usecase.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// CreateBatch godoc
// @Summary      Crear lote de líneas de factura
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvoiceBatchRequest  true  "Líneas del lote"
// @Success      201   {array}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) CreateBatch(c *fiber.Ctx) error {
	var in dto.CreateInvoiceBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateBatch(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return invoiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByNumber godoc
// @Summary      Obtener las líneas de un número de factura con sus relaciones
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        number  query  string  true  "Número de factura"
// @Success      200     {array}  dto.InvoiceDetailResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) GetByNumber(c *fiber.Ctx) error {
	number := c.Query("number")
	if number == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "number es requerido"})
	}
	out, err := h.uc.GetByNumber(GetUserID(c), number)
	if err != nil {
		return invoiceError(c, err)
	}
	return c.JSON(out)
}

// GetBySelected godoc
// @Summary      Listar líneas de la empresa seleccionada (con nombre de cliente)
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/company [get]
func (h *InvoiceHandler) GetBySelected(c *fiber.Ctx) error {
	out, err := h.uc.GetBySelected(GetUserID(c))
	if err != nil {
		return invoiceError(c, err)
	}
	return c.JSON(out)
}

// RemoveBatch godoc
// @Summary      Eliminar todas las líneas de un número (idempotente)
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        number  query  string  true  "Número de factura"
// @Success      200     {object}  dto.MessageResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/invoices [delete]
func (h *InvoiceHandler) RemoveBatch(c *fiber.Ctx) error {
	number := c.Query("number")
	if number == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "number es requerido"})
	}
	if err := h.uc.RemoveBatch(GetUserID(c), number); err != nil {
		return invoiceError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "factura eliminada"})
}

// Import godoc
// @Summary      Importar una línea de factura (nombres en lugar de IDs)
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportInvoiceRequest  true  "Línea a importar"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/invoices/import [post]
func (h *InvoiceHandler) Import(c *fiber.Ctx) error {
	var in dto.ImportInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CompanyName == "" || in.CustomerName == "" || in.ItemName == "" || in.InvoiceNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_name, customer_name, item_name e invoice_number son requeridos"})
	}
	out, err := h.uc.Import(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return invoiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RenderPDF godoc
// @Summary      Descargar la factura en PDF
// @Tags         invoices
// @Security     Bearer
// @Produce      application/pdf
// @Param        number  query  string  true  "Número de factura"
// @Success      200     {file}  binary
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/invoices/pdf [get]
func (h *InvoiceHandler) RenderPDF(c *fiber.Ctx) error {
	number := c.Query("number")
	if number == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "number es requerido"})
	}
	pdfBytes, err := h.uc.RenderPDF(c.UserContext(), GetUserID(c), number)
	if err != nil {
		return invoiceError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "factura-"+number+".pdf"))
	return c.Send(pdfBytes)
}

func invoiceError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el número de factura ya existe"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
