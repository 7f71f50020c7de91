package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Microgestion-api/internal/application/inventory"
	"github.com/jhoicas/Microgestion-api/internal/application/purchases"
	"github.com/jhoicas/Microgestion-api/internal/application/sales"
	"github.com/jhoicas/Microgestion-api/internal/domain/repository"
)

// Ensure TxRunner implements los puertos transaccionales de la aplicación.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ purchases.TxRunner = (*TxRunner)(nil)
var _ sales.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Cabecera, detalles y mutaciones de stock comparten la misma tx: si algo
// falla se revierte todo (sin compra parcial ni incremento parcial).
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

func (r *TxRunner) run(ctx context.Context, fn func(tx Querier) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Run transacción del motor de inventario: producto + notificaciones.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	notifRepo repository.NotificationRepository,
) error) error {
	return r.run(ctx, func(tx Querier) error {
		return fn(NewProductRepository(tx), NewNotificationRepository(tx))
	})
}

// RunPurchase transacción de registro de compra: cabecera + detalles +
// incrementos de stock.
func (r *TxRunner) RunPurchase(ctx context.Context, fn func(
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
	notifRepo repository.NotificationRepository,
) error) error {
	return r.run(ctx, func(tx Querier) error {
		return fn(NewPurchaseRepository(tx), NewProductRepository(tx), NewNotificationRepository(tx))
	})
}

// RunSale transacción de venta: consecutivo + cabecera + líneas +
// decrementos condicionales de stock + notificaciones.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	notifRepo repository.NotificationRepository,
	companyRepo repository.CompanyRepository,
) error) error {
	return r.run(ctx, func(tx Querier) error {
		return fn(NewSaleRepository(tx), NewProductRepository(tx), NewNotificationRepository(tx), NewCompanyRepository(tx))
	})
}
