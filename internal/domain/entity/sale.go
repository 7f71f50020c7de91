package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale venta de punto de venta (tabla venta). ClientID nulo significa
// "cliente no registrado". Number es el consecutivo por microempresa,
// reservado dentro de la transacción de venta.
type Sale struct {
	ID            string
	TenantID      string
	ClientID      *string
	Number        int64
	PaymentMethod string
	Total         decimal.Decimal
	Date          time.Time
	CreatedAt     time.Time
}

// SaleItem línea de venta (tabla detalle_venta). UnitPrice es el precio del
// producto al momento de la venta (snapshot); no cambia si el producto
// cambia de precio después.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}
