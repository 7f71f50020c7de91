package dto

import "github.com/shopspring/decimal"

// DashboardResponse resumen operativo de la microempresa.
type DashboardResponse struct {
	Products            int             `json:"products"`
	Clients             int             `json:"clients"`
	SalesToday          int             `json:"sales_today"`
	SalesTodayTotal     decimal.Decimal `json:"sales_today_total"`
	UnreadNotifications int             `json:"unread_notifications"`
	LowStockProducts    int             `json:"low_stock_products"`
}
