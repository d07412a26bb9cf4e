package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/distrifarma/internal/application/dto"
	"github.com/tu-usuario/distrifarma/internal/domain"
	"github.com/tu-usuario/distrifarma/internal/domain/entity"
	"github.com/tu-usuario/distrifarma/internal/domain/repository"
)

// HospitalUseCase administración de hospitales cliente.
type HospitalUseCase struct {
	hospitalRepo repository.HospitalRepository
}

// NewHospitalUseCase construye el caso de uso de hospitales.
func NewHospitalUseCase(hospitalRepo repository.HospitalRepository) *HospitalUseCase {
	return &HospitalUseCase{hospitalRepo: hospitalRepo}
}

// Create registra un hospital cliente con saldo inicial en cero.
func (uc *HospitalUseCase) Create(ctx context.Context, in dto.CreateHospitalRequest) (*dto.HospitalResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	hospital := &entity.Hospital{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Location:    in.Location,
		ContactInfo: in.ContactInfo,
		CreditLimit: in.CreditLimit,
		Balance:     decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.hospitalRepo.Create(ctx, hospital); err != nil {
		return nil, err
	}
	return dto.ToHospitalResponse(hospital), nil
}

// GetByID devuelve un hospital, o ErrNotFound.
func (uc *HospitalUseCase) GetByID(ctx context.Context, id string) (*dto.HospitalResponse, error) {
	hospital, err := uc.hospitalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToHospitalResponse(hospital), nil
}

// List devuelve una página de hospitales.
func (uc *HospitalUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.HospitalResponse, error) {
	page.DefaultPage()
	hospitals, err := uc.hospitalRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	resp := make([]*dto.HospitalResponse, 0, len(hospitals))
	for _, h := range hospitals {
		resp = append(resp, dto.ToHospitalResponse(h))
	}
	return resp, nil
}
