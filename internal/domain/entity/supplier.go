package entity

import "time"

// Supplier proveedor de una microempresa (tabla proveedor).
// No puede eliminarse mientras tenga compras asociadas.
type Supplier struct {
	ID        string
	TenantID  string
	Name      string
	TaxID     string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
