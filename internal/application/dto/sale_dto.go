package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea del carrito: producto y cantidad. El precio se toma
// del producto al momento de la venta (snapshot), no del carrito.
type SaleItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// ProcessSaleRequest entrada del punto de venta. ClientID nulo = cliente no
// registrado.
type ProcessSaleRequest struct {
	ClientID      *string           `json:"client_id"`
	PaymentMethod string            `json:"payment_method" validate:"required"`
	Items         []SaleItemRequest `json:"items" validate:"required,min=1"`
}

// SaleItemResponse línea de venta persistida con su precio snapshot.
type SaleItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse salida de una venta con sus líneas.
type SaleResponse struct {
	ID            string             `json:"id"`
	TenantID      string             `json:"tenant_id"`
	ClientID      *string            `json:"client_id"`
	Number        int64              `json:"number"`
	PaymentMethod string             `json:"payment_method"`
	Total         decimal.Decimal    `json:"total"`
	Date          time.Time          `json:"date"`
	Items         []SaleItemResponse `json:"items,omitempty"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
