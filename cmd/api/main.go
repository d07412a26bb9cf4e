package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/distrifarma/internal/application/auth"
	"github.com/tu-usuario/distrifarma/internal/application/logistics"
	"github.com/tu-usuario/distrifarma/internal/application/orders"
	"github.com/tu-usuario/distrifarma/internal/application/usecase"
	"github.com/tu-usuario/distrifarma/internal/application/warehouse"
	infrapdf "github.com/tu-usuario/distrifarma/internal/infrastructure/pdf"
	"github.com/tu-usuario/distrifarma/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/distrifarma/internal/interfaces/http"
	"github.com/tu-usuario/distrifarma/pkg/config"
	"github.com/tu-usuario/distrifarma/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	invRepo := postgres.NewInventoryItemRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	hospitalRepo := postgres.NewHospitalRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	shipmentRepo := postgres.NewShipmentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	placeOrderUC := orders.NewPlaceOrderUseCase(txRunner, hospitalRepo, orders.NewFixedRatePricer())
	orderQueryUC := orders.NewQueryUseCase(orderRepo)
	pdfGenerator := infrapdf.NewMarotoDeliveryNoteGenerator()
	deliveryNoteUC := orders.NewDeliveryNoteUseCase(orderRepo, hospitalRepo, invRepo, pdfGenerator)

	warehouseUC := warehouse.NewUseCase(invRepo, auditRepo, log)
	logisticsUC := logistics.NewUseCase(shipmentRepo, orderRepo, auditRepo, log)
	hospitalUC := usecase.NewHospitalUseCase(hospitalRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	auditUC := usecase.NewAuditUseCase(auditRepo)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "DistriFarma API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		PlaceOrder:   placeOrderUC,
		OrderQuery:   orderQueryUC,
		DeliveryNote: deliveryNoteUC,
		WarehouseUC:  warehouseUC,
		LogisticsUC:  logisticsUC,
		HospitalUC:   hospitalUC,
		UserUC:       userUC,
		AuditUC:      auditUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
