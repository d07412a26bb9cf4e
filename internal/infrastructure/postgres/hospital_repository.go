package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/distrifarma/internal/domain"
	"github.com/tu-usuario/distrifarma/internal/domain/entity"
	"github.com/tu-usuario/distrifarma/internal/domain/repository"
)

var _ repository.HospitalRepository = (*HospitalRepo)(nil)

// HospitalRepo implementación del puerto HospitalRepository sobre PostgreSQL.
type HospitalRepo struct {
	q Querier
}

// NewHospitalRepository construye el adaptador.
func NewHospitalRepository(q Querier) *HospitalRepo {
	return &HospitalRepo{q: q}
}

// Create persiste un hospital nuevo.
func (r *HospitalRepo) Create(ctx context.Context, h *entity.Hospital) error {
	query := `
		INSERT INTO hospitals (id, name, location, contact_info, credit_limit, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		h.ID, h.Name, h.Location, h.ContactInfo, h.CreditLimit, h.Balance, h.CreatedAt, h.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert hospital: %w", err)
	}
	return nil
}

// GetByID obtiene un hospital por ID (nil, nil si no existe).
func (r *HospitalRepo) GetByID(ctx context.Context, id string) (*entity.Hospital, error) {
	query := `
		SELECT id, name, location, contact_info, credit_limit, balance, created_at, updated_at
		FROM hospitals WHERE id = $1`
	var h entity.Hospital
	err := r.q.QueryRow(ctx, query, id).Scan(
		&h.ID, &h.Name, &h.Location, &h.ContactInfo, &h.CreditLimit, &h.Balance, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get hospital: %w", err)
	}
	return &h, nil
}

// List lista hospitales por nombre.
func (r *HospitalRepo) List(ctx context.Context, limit, offset int) ([]*entity.Hospital, error) {
	query := `
		SELECT id, name, location, contact_info, credit_limit, balance, created_at, updated_at
		FROM hospitals ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list hospitals: %w", err)
	}
	defer rows.Close()

	var list []*entity.Hospital
	for rows.Next() {
		var h entity.Hospital
		if err := rows.Scan(
			&h.ID, &h.Name, &h.Location, &h.ContactInfo, &h.CreditLimit, &h.Balance, &h.CreatedAt, &h.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan hospital: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}
