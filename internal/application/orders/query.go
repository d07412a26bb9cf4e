package orders

import (
	"context"

	"github.com/tu-usuario/distrifarma/internal/application/dto"
	"github.com/tu-usuario/distrifarma/internal/domain"
	"github.com/tu-usuario/distrifarma/internal/domain/entity"
	"github.com/tu-usuario/distrifarma/internal/domain/repository"
)

// QueryUseCase lecturas de pedidos (portal hospitalario y dashboard admin).
type QueryUseCase struct {
	orderRepo repository.OrderRepository
}

// NewQueryUseCase construye el caso de uso de lectura.
func NewQueryUseCase(orderRepo repository.OrderRepository) *QueryUseCase {
	return &QueryUseCase{orderRepo: orderRepo}
}

// GetByID devuelve un pedido. Si hospitalID no es vacío, el pedido debe
// pertenecer a ese hospital (un manager no ve pedidos ajenos).
func (uc *QueryUseCase) GetByID(ctx context.Context, id, hospitalID string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if hospitalID != "" && order.HospitalID != hospitalID {
		return nil, domain.ErrForbidden
	}
	return dto.ToOrderResponse(order), nil
}

// List devuelve pedidos: los del hospital indicado, o todos si hospitalID es
// vacío (admin).
func (uc *QueryUseCase) List(ctx context.Context, hospitalID string, page dto.PageRequest) ([]*dto.OrderResponse, error) {
	page.DefaultPage()
	var (
		list []*entity.Order
		err  error
	)
	if hospitalID != "" {
		list, err = uc.orderRepo.ListByHospital(ctx, hospitalID, page.Limit, page.Offset)
	} else {
		list, err = uc.orderRepo.List(ctx, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	resp := make([]*dto.OrderResponse, 0, len(list))
	for _, o := range list {
		resp = append(resp, dto.ToOrderResponse(o))
	}
	return resp, nil
}
