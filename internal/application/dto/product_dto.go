package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Category    *string         `json:"category"`
	Price       decimal.Decimal `json:"price"`
	StockActual int             `json:"stock_actual"`
	StockMinimo int             `json:"stock_minimo"`
}

// UpdateProductRequest entrada para actualizar un producto (sin stock:
// el stock se muta vía /stock, compras y ventas).
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	StockMinimo *int             `json:"stock_minimo"`
}

// SetStockRequest entrada para fijar el stock de un producto.
type SetStockRequest struct {
	Quantity int `json:"quantity"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	TenantID      string          `json:"tenant_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      *string         `json:"category"`
	Price         decimal.Decimal `json:"price"`
	StockActual   int             `json:"stock_actual"`
	StockMinimo   int             `json:"stock_minimo"`
	VisiblePortal bool            `json:"visible_portal"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// StockChangeResponse resultado de aplicar un cambio de stock.
type StockChangeResponse struct {
	Product             ProductResponse `json:"product"`
	NotificationEmitted bool            `json:"notification_emitted"`
}

// PortalProductResponse vista pública de un producto en el portal.
type PortalProductResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category *string         `json:"category"`
	Price    decimal.Decimal `json:"price"`
}

// PortalListResponse productos visibles del portal público.
type PortalListResponse struct {
	Items []PortalProductResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
