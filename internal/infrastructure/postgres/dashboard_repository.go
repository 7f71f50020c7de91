package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Microgestion-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas del tablero sobre PostgreSQL.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador del tablero.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// Summary calcula los contadores de la microempresa en una sola consulta.
func (r *DashboardRepo) Summary(tenantID string) (*repository.DashboardSummary, error) {
	query := `
		SELECT
			(SELECT count(*) FROM producto WHERE microempresa_id = $1),
			(SELECT count(*) FROM cliente WHERE microempresa_id = $1),
			(SELECT count(*) FROM venta WHERE microempresa_id = $1 AND fecha::date = current_date),
			(SELECT COALESCE(sum(total), 0) FROM venta WHERE microempresa_id = $1 AND fecha::date = current_date),
			(SELECT count(*) FROM notificacion_stock WHERE microempresa_id = $1 AND leida = false),
			(SELECT count(*) FROM producto WHERE microempresa_id = $1 AND stock_actual <= stock_minimo)`
	var s repository.DashboardSummary
	err := r.q.QueryRow(context.Background(), query, tenantID).Scan(
		&s.Products, &s.Clients, &s.SalesToday, &s.SalesTodayTotal,
		&s.UnreadNotifications, &s.LowStockProducts,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	return &s, nil
}
