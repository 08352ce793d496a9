package entity

import "time"

// Company representa una empresa/tenant del sistema. Cada empresa pertenece a
// exactamente un User (OwnerID es inmutable tras la creación) y todo el
// catálogo y las facturas viven bajo su namespace.
//
// Invariante de selección: por dueño hay a lo sumo una empresa con
// Selected=true, y si el dueño tiene al menos una empresa, exactamente una
// debe estar seleccionada. Las secuencias que lo mantienen (crear, cambiar
// selección, borrar con promoción) corren dentro de una transacción.
type Company struct {
	ID        string
	OwnerID   string
	Name      string // único por dueño
	GSTNumber string // identificador fiscal (GST), atributo opaco
	Phone     string
	Email     string
	Address   string
	State     string
	Selected  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
