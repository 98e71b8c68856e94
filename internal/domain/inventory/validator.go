package inventory

import (
	"strconv"
	"strings"

	"github.com/jhoicas/inventory-pro/internal/domain"
	"github.com/jhoicas/inventory-pro/internal/domain/entity"
)

// MaxQuantity tope por movimiento; mantiene las sumas del libro lejos del desbordamiento
// y cabe en cualquier columna entera de los repositorios.
const MaxQuantity = 1_000_000_000

// MovementCandidate movimiento tal como llega del formulario/API, antes de validar.
// Qty llega como texto; se exige que sea un entero.
type MovementCandidate struct {
	ProductID string
	From      string
	To        string
	Qty       string
}

// ValidMovement movimiento que superó la validación. No tiene id ni fecha todavía.
type ValidMovement struct {
	ProductID string
	Direction entity.Direction
	Qty       int
}

// ValidateMovement aplica las reglas en orden; gana el primer fallo:
//  1. producto no vacío        → domain.ErrMissingProduct
//  2. qty entero, > 0 y <= MaxQuantity → domain.ErrInvalidQuantity
//  3. origen o destino no vacío → domain.ErrMissingLocation
//
// No verifica que producto o ubicaciones existan: se aceptan referencias colgantes.
func ValidateMovement(c MovementCandidate) (ValidMovement, error) {
	productID := strings.TrimSpace(c.ProductID)
	if productID == "" {
		return ValidMovement{}, domain.ErrMissingProduct
	}

	qty, err := parseQuantity(strings.TrimSpace(c.Qty))
	if err != nil || qty <= 0 || qty > MaxQuantity {
		return ValidMovement{}, domain.ErrInvalidQuantity
	}

	dir, ok := entity.NewDirection(strings.TrimSpace(c.From), strings.TrimSpace(c.To))
	if !ok {
		return ValidMovement{}, domain.ErrMissingLocation
	}

	return ValidMovement{ProductID: productID, Direction: dir, Qty: qty}, nil
}

// parseQuantity acepta un entero o un decimal con parte fraccionaria nula ("5.0").
// "2.5" o "3abc" no son enteros y fallan.
func parseQuantity(s string) (int, error) {
	whole, frac, found := strings.Cut(s, ".")
	if !found {
		return strconv.Atoi(s)
	}
	if frac == "" || strings.Trim(frac, "0") != "" {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(whole)
}

// IsSelfTransfer indica un traslado con el mismo origen y destino (efecto neto cero).
func IsSelfTransfer(d entity.Direction) bool {
	t, ok := d.(entity.Transfer)
	return ok && t.From == t.To
}
