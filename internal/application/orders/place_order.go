package orders

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/distrifarma/internal/application/dto"
	"github.com/tu-usuario/distrifarma/internal/domain"
	"github.com/tu-usuario/distrifarma/internal/domain/entity"
	"github.com/tu-usuario/distrifarma/internal/domain/repository"
)

// PlaceOrderUseCase es el único punto de entrada que crea pedidos. Verifica
// stock, deduce inventario bajo control de concurrencia optimista, calcula el
// total, crea el pedido con sus líneas y anota la bitácora — todo en una sola
// unidad de trabajo. Dos estados terminales: comprometido (pedido creado,
// deducciones aplicadas, versiones avanzadas) o abortado (ningún cambio
// observable). No hay estado intermedio.
type PlaceOrderUseCase struct {
	txRunner     TxRunner
	hospitalRepo repository.HospitalRepository
	pricer       Pricer
}

// NewPlaceOrderUseCase construye el caso de uso.
func NewPlaceOrderUseCase(
	txRunner TxRunner,
	hospitalRepo repository.HospitalRepository,
	pricer Pricer,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		txRunner:     txRunner,
		hospitalRepo: hospitalRepo,
		pricer:       pricer,
	}
}

// PlaceOrder crea un pedido para un hospital.
//
// actorID es la identidad que el caller (middleware de auth) atribuye a la
// bitácora; vacío = sin entrada de bitácora, nunca un motivo de fallo.
//
// Fallos posibles, todos con rollback completo: ErrInvalidHospital,
// ItemNotFoundError, InsufficientStockError y ConcurrencyConflictError.
// Solo el último es reintentable tal cual; el reintento es decisión del
// caller y debe partir de una lectura fresca (el caso de uso no reintenta).
func (uc *PlaceOrderUseCase) PlaceOrder(ctx context.Context, actorID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.HospitalID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Items {
		if line.InventoryID == "" || line.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	// Precondición barata fuera de la tx: el hospital debe existir.
	hospital, err := uc.hospitalRepo.GetByID(ctx, in.HospitalID)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, domain.ErrInvalidHospital
	}

	now := time.Now()
	orderID := uuid.New().String()
	var created *entity.Order

	err = uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryItemRepository,
		orderRepo repository.OrderRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		total := decimal.Zero

		// Cada línea, en el orden del caller (solo importa para reportar el
		// primer fallo de forma determinista; las mutaciones conmutan).
		for _, line := range in.Items {
			item, err := invRepo.GetByID(ctx, line.InventoryID)
			if err != nil {
				return err
			}
			if item == nil {
				return &domain.ItemNotFoundError{InventoryID: line.InventoryID}
			}
			if line.Quantity > item.Quantity {
				return &domain.InsufficientStockError{
					InventoryID: line.InventoryID,
					Available:   item.Quantity,
					Requested:   line.Quantity,
				}
			}

			unit, err := uc.pricer.UnitPrice(ctx, item, in.HospitalID)
			if err != nil {
				return err
			}
			total = total.Add(unit.Mul(decimal.NewFromInt(line.Quantity)))

			// Escritura condicional con la versión observada en la lectura.
			// applied=false significa que otro escritor comprometió primero:
			// se aborta todo el pedido, incluidas las deducciones previas de
			// esta misma transacción.
			applied, err := invRepo.DeductIfVersionMatches(ctx, item.ID, item.Version, line.Quantity)
			if err != nil {
				return err
			}
			if !applied {
				return &domain.ConcurrencyConflictError{InventoryID: line.InventoryID}
			}
		}

		order := &entity.Order{
			ID:         orderID,
			HospitalID: in.HospitalID,
			TotalPrice: total,
			Status:     entity.OrderStatusPending,
			CreatedAt:  now,
		}
		for _, line := range in.Items {
			order.Items = append(order.Items, entity.OrderItem{
				ID:          uuid.New().String(),
				OrderID:     orderID,
				InventoryID: line.InventoryID,
				Quantity:    line.Quantity,
			})
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}

		// Bitácora best-effort: sin actor se omite en silencio. Se escribe
		// después del insert del pedido, en la misma tx, así nunca describe
		// una mutación que no ocurrió.
		if actorID != "" {
			details, _ := json.Marshal(map[string]any{
				"total_price": total,
				"items_count": len(in.Items),
			})
			entry := &entity.AuditLogEntry{
				ID:        uuid.New().String(),
				UserID:    actorID,
				Action:    entity.AuditActionCreateOrder,
				Resource:  "Order:" + orderID,
				Details:   details,
				CreatedAt: now,
			}
			if err := auditRepo.Create(ctx, entry); err != nil {
				return err
			}
		}

		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.ToOrderResponse(created), nil
}
