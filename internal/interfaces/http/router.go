package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/distrifarma/internal/application/auth"
	"github.com/tu-usuario/distrifarma/internal/application/logistics"
	"github.com/tu-usuario/distrifarma/internal/application/orders"
	"github.com/tu-usuario/distrifarma/internal/application/usecase"
	"github.com/tu-usuario/distrifarma/internal/application/warehouse"
	"github.com/tu-usuario/distrifarma/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	PlaceOrder   *orders.PlaceOrderUseCase
	OrderQuery   *orders.QueryUseCase
	DeliveryNote *orders.DeliveryNoteUseCase
	WarehouseUC  *warehouse.UseCase
	LogisticsUC  *logistics.UseCase
	HospitalUC   *usecase.HospitalUseCase
	UserUC       *usecase.UserUseCase
	AuditUC      *usecase.AuditUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Cualquier rol puede cambiar su propia password.
	protected.Post("/auth/change-password", authHandler.ChangePassword)

	adminOnly := RequireRole(entity.RoleAdmin)
	adminOrManager := RequireRole(entity.RoleAdmin, entity.RoleHospitalManager)
	adminOrDriver := RequireRole(entity.RoleAdmin, entity.RoleDriver)

	// OMS: pedidos (admin y portal hospitalario)
	oms := protected.Group("/oms", adminOrManager)
	orderHandler := NewOrderHandler(deps.PlaceOrder, deps.OrderQuery, deps.DeliveryNote)
	oms.Post("/orders", orderHandler.Create)
	oms.Get("/orders", orderHandler.List)
	oms.Get("/orders/:id", orderHandler.GetByID)
	oms.Get("/orders/:id/delivery-note", orderHandler.DeliveryNote)

	// WMS: bodega (la recepción queda en manos del admin)
	wms := protected.Group("/wms")
	inventoryHandler := NewInventoryHandler(deps.WarehouseUC)
	wms.Post("/inventory", adminOnly, inventoryHandler.Add)
	wms.Get("/inventory", adminOrManager, inventoryHandler.List)
	wms.Get("/inventory/sku/:sku", adminOrManager, inventoryHandler.CheckStock)
	wms.Get("/inventory/:id", adminOrManager, inventoryHandler.GetByID)

	// TMS: transporte (la PWA de conductores reporta ubicación y temperatura)
	tms := protected.Group("/tms")
	shipmentHandler := NewShipmentHandler(deps.LogisticsUC)
	tms.Post("/shipments", adminOnly, shipmentHandler.Create)
	tms.Get("/shipments", shipmentHandler.List)
	tms.Get("/shipments/:id", shipmentHandler.GetByID)
	tms.Patch("/shipments/:id/location", adminOrDriver, shipmentHandler.UpdateLocation)
	tms.Post("/shipments/:id/temperature", adminOrDriver, shipmentHandler.RecordTemperature)
	tms.Patch("/shipments/:id/deliver", adminOrDriver, shipmentHandler.MarkDelivered)

	// Hospitales (solo ADMIN)
	hospitals := protected.Group("/hospitals", adminOnly)
	hospitalHandler := NewHospitalHandler(deps.HospitalUC)
	hospitals.Post("/", hospitalHandler.Create)
	hospitals.Get("/", hospitalHandler.List)
	hospitals.Get("/:id", hospitalHandler.GetByID)

	// Usuarios (solo ADMIN)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Delete("/:id", userHandler.Delete)

	// Bitácora (solo ADMIN)
	auditHandler := NewAuditHandler(deps.AuditUC)
	protected.Get("/audit-logs", adminOnly, auditHandler.List)
}
