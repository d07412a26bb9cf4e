// seed puebla la base con los datos mínimos de un entorno de demo: un
// hospital cliente, dos SKUs con stock y un usuario por rol. Es idempotente:
// lo que ya existe se deja como está.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/distrifarma/internal/domain/entity"
	"github.com/tu-usuario/distrifarma/internal/infrastructure/postgres"
	"github.com/tu-usuario/distrifarma/pkg/config"
)

const seedPassword = "password123"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	hospitalRepo := postgres.NewHospitalRepository(pool)
	invRepo := postgres.NewInventoryItemRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	now := time.Now()

	// Hospital de demo con ID fijo, así los ejemplos de la documentación
	// funcionan tal cual.
	const hospitalID = "hospital-1"
	existing, err := hospitalRepo.GetByID(ctx, hospitalID)
	if err != nil {
		fail("consultar hospital: %v", err)
	}
	if existing == nil {
		err = hospitalRepo.Create(ctx, &entity.Hospital{
			ID:          hospitalID,
			Name:        "City General Hospital",
			Location:    "Av. Principal 123",
			ContactInfo: "compras@citygeneral.example",
			CreditLimit: decimal.NewFromInt(50000),
			Balance:     decimal.Zero,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			fail("crear hospital: %v", err)
		}
		fmt.Println("hospital creado:", hospitalID)
	}

	items := []entity.InventoryItem{
		{
			SKU:               "MED-001",
			Name:              "Panadol Extra 500mg",
			Description:       "Analgésico, caja x 24",
			BatchNumber:       "BATCH-2025-A1",
			ExpiryDate:        now.AddDate(2, 0, 0),
			Quantity:          5000,
			WarehouseLocation: "A-01-03",
		},
		{
			SKU:               "MED-002",
			Name:              "Amoxicilina 250mg",
			Description:       "Antibiótico, frasco x 60ml",
			BatchNumber:       "BATCH-2025-B7",
			ExpiryDate:        now.AddDate(1, 6, 0),
			Quantity:          2000,
			WarehouseLocation: "B-04-11",
		},
	}
	for _, it := range items {
		found, err := invRepo.GetBySKU(ctx, it.SKU)
		if err != nil {
			fail("consultar SKU %s: %v", it.SKU, err)
		}
		if found != nil {
			continue
		}
		it.ID = uuid.New().String()
		it.Version = 0
		it.CreatedAt = now
		it.UpdatedAt = now
		if err := invRepo.Create(ctx, &it); err != nil {
			fail("crear ítem %s: %v", it.SKU, err)
		}
		fmt.Println("ítem creado:", it.SKU)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		fail("hashear password: %v", err)
	}
	users := []entity.User{
		{Email: "admin@pharma.com", Name: "Admin", Role: entity.RoleAdmin},
		{Email: "manager@pharma.com", Name: "Hospital Manager", Role: entity.RoleHospitalManager, HospitalID: hospitalID},
		{Email: "driver@pharma.com", Name: "Driver", Role: entity.RoleDriver},
	}
	for _, u := range users {
		found, err := userRepo.GetByEmail(ctx, u.Email)
		if err != nil {
			fail("consultar usuario %s: %v", u.Email, err)
		}
		if found != nil {
			continue
		}
		u.ID = uuid.New().String()
		u.PasswordHash = string(hash)
		u.MustChangePassword = true
		u.CreatedAt = now
		u.UpdatedAt = now
		if err := userRepo.Create(ctx, &u); err != nil {
			fail("crear usuario %s: %v", u.Email, err)
		}
		fmt.Println("usuario creado:", u.Email)
	}

	fmt.Println("seed completado")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
