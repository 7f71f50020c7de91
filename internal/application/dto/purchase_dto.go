package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItemRequest línea de compra: producto, cantidad y precio unitario
// pactado con el proveedor.
type PurchaseItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// RegisterPurchaseRequest entrada para registrar una compra a proveedor.
type RegisterPurchaseRequest struct {
	SupplierID    string                `json:"supplier_id" validate:"required"`
	InvoiceNumber string                `json:"invoice_number"`
	PaymentType   string                `json:"payment_type" validate:"required"`
	Items         []PurchaseItemRequest `json:"items" validate:"required,min=1"`
}

// PurchaseDetailResponse línea de compra persistida.
type PurchaseDetailResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// PurchaseResponse salida de una compra con su detalle.
type PurchaseResponse struct {
	ID            string                   `json:"id"`
	TenantID      string                   `json:"tenant_id"`
	SupplierID    string                   `json:"supplier_id"`
	InvoiceNumber string                   `json:"invoice_number"`
	PaymentType   string                   `json:"payment_type"`
	Total         decimal.Decimal          `json:"total"`
	Date          time.Time                `json:"date"`
	Details       []PurchaseDetailResponse `json:"details,omitempty"`
}

// PurchaseListResponse lista paginada de compras.
type PurchaseListResponse struct {
	Items []PurchaseResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
