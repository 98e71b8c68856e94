package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Todos son recuperables: la operación que los produce se rechaza completa, sin cambios parciales.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")

	// ErrDuplicateID colisión de id al crear o renombrar un producto/ubicación.
	ErrDuplicateID = errors.New("el id ya existe")

	// Fallos de validación de movimientos (se evalúan en este orden).
	ErrMissingProduct  = errors.New("el movimiento requiere un producto")
	ErrInvalidQuantity = errors.New("la cantidad debe ser un entero mayor que cero")
	ErrMissingLocation = errors.New("el movimiento requiere origen o destino")
)
