package entity

import "time"

// Company representa una microempresa: el tenant que aísla productos,
// clientes, proveedores, compras y ventas. SaleSequence es el último
// consecutivo de recibo de venta emitido; se reserva dentro de la
// transacción de venta.
type Company struct {
	ID           string
	Name         string
	NIT          string
	Email        string
	Phone        string
	Address      string
	PlanID       string // referencia a plan_pago (vacío = sin plan)
	SaleSequence int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
