package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrNotVerified        = errors.New("email no verificado")
	// ErrHasInvoices bloquea el borrado de clientes/ítems referenciados por
	// facturas. Es una regla de negocio explícita, no un constraint del motor.
	ErrHasInvoices = errors.New("existen facturas asociadas al recurso")
)
