package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/distrifarma/internal/application/orders"
	"github.com/tu-usuario/distrifarma/internal/domain/repository"
)

// Ensure TxRunner implements orders.TxRunner.
var _ orders.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit
// o Rollback. Es la unidad de trabajo del motor de pedidos: cualquier error de
// fn (o una cancelación del ctx antes del Commit) revierte todo sin estado
// parcial observable.
func (r *TxRunner) Run(ctx context.Context, fn func(
	invRepo repository.InventoryItemRepository,
	orderRepo repository.OrderRepository,
	auditRepo repository.AuditLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	invRepo := NewInventoryItemRepository(tx)
	orderRepo := NewOrderRepository(tx)
	auditRepo := NewAuditLogRepository(tx)

	if err := fn(invRepo, orderRepo, auditRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
