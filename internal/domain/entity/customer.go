package entity

import "time"

// Customer representa un cliente de una empresa (facturación).
// CustomerCompany es el nombre de la organización del cliente (texto libre),
// distinto de la Company tenant que lo posee.
type Customer struct {
	ID              string
	CompanyID       string
	Name            string
	Email           string // único dentro de la empresa
	Phone           string
	CustomerCompany string
	GSTIN           string // identificador fiscal del cliente, atributo opaco
	State           string
	Address         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
