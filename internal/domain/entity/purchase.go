package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de pago aceptados en compras y ventas.
const (
	PaymentCash     = "efectivo"
	PaymentCard     = "tarjeta"
	PaymentTransfer = "transferencia"
	PaymentCredit   = "credito"
)

// ValidPayment valida el tipo de pago.
func ValidPayment(p string) bool {
	switch p {
	case PaymentCash, PaymentCard, PaymentTransfer, PaymentCredit:
		return true
	}
	return false
}

// Purchase compra a proveedor (tabla compra). InvoiceNumber es texto libre
// provisto por el cliente; no se garantiza único. Total es la suma de los
// subtotales de detalle.
type Purchase struct {
	ID            string
	TenantID      string
	SupplierID    string
	InvoiceNumber string
	PaymentType   string
	Total         decimal.Decimal
	Date          time.Time
	CreatedAt     time.Time
}

// PurchaseDetail línea de compra (tabla detalle_compra).
// Subtotal = Quantity × UnitPrice redondeado a 2 decimales.
type PurchaseDetail struct {
	ID         string
	PurchaseID string
	ProductID  string
	Quantity   int
	UnitPrice  decimal.Decimal
	Subtotal   decimal.Decimal
}
