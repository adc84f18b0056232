package entity

import "time"

// Supplier representa un proveedor de materiales o servicios.
type Supplier struct {
	ID        string
	Name      string
	NIT       string // identificación tributaria
	Email     string
	Phone     string
	Address   string
	City      string
	Contact   string // persona de contacto
	CreatedAt time.Time
	UpdatedAt time.Time
}
