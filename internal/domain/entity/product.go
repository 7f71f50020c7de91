package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del inventario de una microempresa (tabla producto).
//
// VisiblePortal es un campo derivado: vale true si y solo si StockActual > 0.
// Cualquier escritura de StockActual debe re-derivarlo en el mismo UPDATE;
// nunca se escribe de forma independiente.
type Product struct {
	ID            string
	TenantID      string
	Name          string
	Description   string
	Category      *string // nullable
	Price         decimal.Decimal
	StockActual   int
	StockMinimo   int
	VisiblePortal bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Visible regla de visibilidad del portal para un stock dado.
func Visible(stock int) bool { return stock > 0 }
