package inventory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/inventory-pro/internal/domain/entity"
	dominv "github.com/jhoicas/inventory-pro/internal/domain/inventory"
)

// UnknownProductName nombre mostrado cuando el movimiento apunta a un producto borrado.
const UnknownProductName = "Unknown Product"

// AppendMovement valida y agrega un movimiento al log.
// Errores posibles (en este orden): ErrMissingProduct, ErrInvalidQuantity, ErrMissingLocation.
// No exige que el producto o las ubicaciones existan.
func (s *Store) AppendMovement(ctx context.Context, c dominv.MovementCandidate) (entity.Movement, error) {
	v, err := dominv.ValidateMovement(c)
	if err != nil {
		return entity.Movement{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	m := entity.Movement{
		ID:        s.nextMovementID(now.UnixMilli()),
		ProductID: v.ProductID,
		Direction: v.Direction,
		Qty:       v.Qty,
		Timestamp: now,
	}
	if dominv.IsSelfTransfer(m.Direction) {
		s.log.Warn().
			Int64("movement_id", m.ID).
			Str("location", m.From()).
			Msg("traslado con origen igual al destino, efecto neto cero")
	}
	s.movements = append(s.movements, m)

	name := UnknownProductName
	if idx := s.productIndex(m.ProductID); idx >= 0 {
		name = s.products[idx].Name
	}
	s.activity.Add(now, fmt.Sprintf("%s: %d units of %s", m.Type(), m.Qty, name))

	s.persist(ctx)
	return m, nil
}

// nextMovementID usa los milisegundos actuales y garantiza que el id sea estrictamente creciente.
func (s *Store) nextMovementID(millis int64) int64 {
	id := millis
	if id <= s.lastMovementID {
		id = s.lastMovementID + 1
	}
	s.lastMovementID = id
	return id
}

// Movements devuelve el log completo, más reciente primero.
func (s *Store) Movements() []entity.Movement {
	s.mu.RLock()
	list := append([]entity.Movement{}, s.movements...)
	s.mu.RUnlock()

	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.After(b.Timestamp)
		}
		return a.ID > b.ID
	})
	return list
}
