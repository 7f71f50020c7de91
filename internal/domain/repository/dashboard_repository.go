package repository

import "github.com/shopspring/decimal"

// DashboardSummary resumen operativo de una microempresa.
type DashboardSummary struct {
	Products            int
	Clients             int
	SalesToday          int
	SalesTodayTotal     decimal.Decimal
	UnreadNotifications int
	LowStockProducts    int // stock_actual <= stock_minimo
}

// DashboardRepository consultas agregadas para el tablero.
type DashboardRepository interface {
	Summary(tenantID string) (*DashboardSummary, error)
}
