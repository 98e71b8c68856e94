package inventory

import (
	"context"
	"strings"

	"github.com/jhoicas/inventory-pro/internal/domain"
	"github.com/jhoicas/inventory-pro/internal/domain/entity"
	dominv "github.com/jhoicas/inventory-pro/internal/domain/inventory"
)

// LocationInput datos de alta/edición de una ubicación.
type LocationInput struct {
	ID      string
	Name    string
	Address string
}

// UpsertLocation crea (originalID vacío) o edita una ubicación.
// Un cambio de id reescribe origen y destino de los movimientos antes de renombrar.
func (s *Store) UpsertLocation(ctx context.Context, originalID string, in LocationInput) (entity.Location, error) {
	id := strings.TrimSpace(in.ID)
	name := strings.TrimSpace(in.Name)
	if id == "" || name == "" {
		return entity.Location{}, domain.ErrInvalidInput
	}
	originalID = strings.TrimSpace(originalID)

	s.mu.Lock()
	defer s.mu.Unlock()

	var out entity.Location
	if originalID == "" {
		if s.locationIndex(id) >= 0 {
			return entity.Location{}, domain.ErrDuplicateID
		}
		out = entity.Location{
			ID:        id,
			Name:      name,
			Address:   strings.TrimSpace(in.Address),
			CreatedAt: s.now(),
		}
		s.locations = append(s.locations, out)
		s.activity.Add(s.now(), "Added new location: "+name)
	} else {
		idx := s.locationIndex(originalID)
		if idx < 0 {
			return entity.Location{}, domain.ErrNotFound
		}
		if id != originalID {
			if s.locationIndex(id) >= 0 {
				return entity.Location{}, domain.ErrDuplicateID
			}
			n := dominv.RewriteReferences(s.movements, dominv.KindLocation, originalID, id)
			s.log.Debug().Str("from", originalID).Str("to", id).Int("movements", n).Msg("ubicación renombrada")
		}
		l := &s.locations[idx]
		l.ID = id
		l.Name = name
		l.Address = strings.TrimSpace(in.Address)
		out = *l
		s.activity.Add(s.now(), "Updated location: "+name)
	}

	s.persist(ctx)
	return out, nil
}

// DeleteLocation elimina la ubicación sin tocar los movimientos que la referencian.
func (s *Store) DeleteLocation(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.locationIndex(id)
	if idx < 0 {
		return false
	}
	s.locations = append(s.locations[:idx], s.locations[idx+1:]...)
	s.persist(ctx)
	return true
}

// Locations devuelve las ubicaciones en orden de alta.
func (s *Store) Locations() []entity.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Location{}, s.locations...)
}

// Location obtiene una ubicación por id.
func (s *Store) Location(id string) (entity.Location, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.locationIndex(id)
	if idx < 0 {
		return entity.Location{}, false
	}
	return s.locations[idx], true
}

func (s *Store) locationIndex(id string) int {
	for i := range s.locations {
		if s.locations[i].ID == id {
			return i
		}
	}
	return -1
}
