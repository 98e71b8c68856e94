package inventory

import "github.com/jhoicas/inventory-pro/internal/domain/entity"

// EntityKind tipo de entidad referenciada por los movimientos.
type EntityKind string

const (
	KindProduct  EntityKind = "product"
	KindLocation EntityKind = "location"
)

// RewriteReferences cambia oldID por newID en todos los movimientos que lo referencian
// y devuelve cuántos movimientos cambiaron.
// Para ubicaciones, origen y destino se revisan por separado (un movimiento puede cambiar ambos).
// El llamador debe sostener el lock de escritura durante el renombrado y esta reescritura.
func RewriteReferences(movements []entity.Movement, kind EntityKind, oldID, newID string) int {
	if oldID == newID {
		return 0
	}
	changed := 0
	for i := range movements {
		m := &movements[i]
		switch kind {
		case KindProduct:
			if m.ProductID == oldID {
				m.ProductID = newID
				changed++
			}
		case KindLocation:
			from, to := m.From(), m.To()
			touched := false
			if from == oldID {
				from = newID
				touched = true
			}
			if to == oldID {
				to = newID
				touched = true
			}
			if touched {
				// from/to no pueden quedar ambos vacíos: newID nunca es vacío.
				if dir, ok := entity.NewDirection(from, to); ok {
					m.Direction = dir
					changed++
				}
			}
		}
	}
	return changed
}
