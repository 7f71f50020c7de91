package entity

import "time"

// Client cliente de una microempresa (tabla cliente). Las ventas pueden
// referenciarlo o quedar como "cliente no registrado" (referencia nula).
type Client struct {
	ID        string
	TenantID  string
	Name      string
	TaxID     string // NIT o cédula
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
