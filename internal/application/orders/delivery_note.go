package orders

import (
	"context"

	"github.com/tu-usuario/distrifarma/internal/domain"
	"github.com/tu-usuario/distrifarma/internal/domain/entity"
	"github.com/tu-usuario/distrifarma/internal/domain/repository"
)

// DeliveryNoteLine línea del remito con los datos del ítem resueltos.
type DeliveryNoteLine struct {
	SKU      string
	Name     string
	Batch    string
	Quantity int64
}

// DeliveryNotePDFGenerator puerto para generar el remito en PDF.
type DeliveryNotePDFGenerator interface {
	GenerateDeliveryNotePDF(ctx context.Context, order *entity.Order, hospital *entity.Hospital, lines []DeliveryNoteLine) ([]byte, error)
}

// DeliveryNoteUseCase produce el remito (nota de entrega) de un pedido.
type DeliveryNoteUseCase struct {
	orderRepo    repository.OrderRepository
	hospitalRepo repository.HospitalRepository
	invRepo      repository.InventoryItemRepository
	gen          DeliveryNotePDFGenerator
}

// NewDeliveryNoteUseCase construye el caso de uso del remito.
func NewDeliveryNoteUseCase(
	orderRepo repository.OrderRepository,
	hospitalRepo repository.HospitalRepository,
	invRepo repository.InventoryItemRepository,
	gen DeliveryNotePDFGenerator,
) *DeliveryNoteUseCase {
	return &DeliveryNoteUseCase{orderRepo: orderRepo, hospitalRepo: hospitalRepo, invRepo: invRepo, gen: gen}
}

// Generate devuelve los bytes del PDF del remito. hospitalScope no vacío
// restringe el acceso al hospital dueño del pedido (vista de un
// HOSPITAL_MANAGER); vacío significa sin restricción (ADMIN).
func (uc *DeliveryNoteUseCase) Generate(ctx context.Context, orderID, hospitalScope string) ([]byte, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if hospitalScope != "" && order.HospitalID != hospitalScope {
		return nil, domain.ErrForbidden
	}

	hospital, err := uc.hospitalRepo.GetByID(ctx, order.HospitalID)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, domain.ErrInvalidHospital
	}

	lines := make([]DeliveryNoteLine, 0, len(order.Items))
	for _, it := range order.Items {
		line := DeliveryNoteLine{Quantity: it.Quantity}
		item, err := uc.invRepo.GetByID(ctx, it.InventoryID)
		if err != nil {
			return nil, err
		}
		if item != nil {
			line.SKU = item.SKU
			line.Name = item.Name
			line.Batch = item.BatchNumber
		} else {
			// Ítem retirado del catálogo después del pedido: el remito igual
			// sale, con la referencia cruda.
			line.SKU = it.InventoryID
			line.Name = "(ítem retirado)"
		}
		lines = append(lines, line)
	}
	return uc.gen.GenerateDeliveryNotePDF(ctx, order, hospital, lines)
}
