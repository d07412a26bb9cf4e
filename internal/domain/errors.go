package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// Fallos del motor de pedidos. Los tipos *Error de abajo envuelven estos
	// sentinelas: la capa HTTP los mapea con errors.Is sin perder los datos
	// de cada fallo.
	ErrInvalidHospital     = errors.New("hospital inválido")
	ErrItemNotFound        = errors.New("ítem de inventario no encontrado")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrConcurrencyConflict = errors.New("conflicto de concurrencia")
)

// ItemNotFoundError indica que una línea del pedido referencia un ítem inexistente.
type ItemNotFoundError struct {
	InventoryID string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("ítem de inventario %s no encontrado", e.InventoryID)
}

func (e *ItemNotFoundError) Is(target error) bool { return target == ErrItemNotFound }

// InsufficientStockError indica que la cantidad pedida supera la disponible
// al momento de la lectura. No es un problema de concurrencia: reintentar con
// la misma cantidad vuelve a fallar hasta que haya reposición.
type InsufficientStockError struct {
	InventoryID string
	Available   int64
	Requested   int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s: disponible %d, pedido %d",
		e.InventoryID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool { return target == ErrInsufficientStock }

// ConcurrencyConflictError indica que otra transacción comprometió un cambio
// sobre la misma fila entre la lectura y la escritura condicional de esta
// transacción. El caller debe reintentar el pedido completo desde una lectura
// fresca; las deducciones previas de esta transacción ya fueron revertidas.
type ConcurrencyConflictError struct {
	InventoryID string
}

func (e *ConcurrencyConflictError) Error() string {
	return fmt.Sprintf("conflicto de concurrencia sobre el ítem %s: reintentar el pedido", e.InventoryID)
}

func (e *ConcurrencyConflictError) Is(target error) bool { return target == ErrConcurrencyConflict }
