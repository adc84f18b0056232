package dto

import "time"

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	NIT     string `json:"nit" validate:"required,max=30"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty" validate:"max=30"`
	Address string `json:"address,omitempty" validate:"max=300"`
	City    string `json:"city,omitempty" validate:"max=100"`
	Contact string `json:"contact,omitempty" validate:"max=200"`
}

// UpdateSupplierRequest body para PUT /api/suppliers/:id.
type UpdateSupplierRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty" validate:"max=30"`
	Address string `json:"address,omitempty" validate:"max=300"`
	City    string `json:"city,omitempty" validate:"max=100"`
	Contact string `json:"contact,omitempty" validate:"max=200"`
}

// SupplierResponse proveedor.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	NIT       string    `json:"nit"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	Contact   string    `json:"contact,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SupplierListResponse listado paginado.
type SupplierListResponse struct {
	Suppliers []*SupplierResponse `json:"suppliers"`
	Page      PageResponse        `json:"page"`
}
