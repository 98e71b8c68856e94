package inventory

import (
	"context"
	"strings"

	"github.com/jhoicas/inventory-pro/internal/domain"
	"github.com/jhoicas/inventory-pro/internal/domain/entity"
	dominv "github.com/jhoicas/inventory-pro/internal/domain/inventory"
)

// ProductInput datos de alta/edición de un producto.
type ProductInput struct {
	ID          string
	Name        string
	Description string
}

// UpsertProduct crea (originalID vacío) o edita (originalID = id actual) un producto.
// En edición, si el id cambia, los movimientos se reescriben antes de renombrar.
func (s *Store) UpsertProduct(ctx context.Context, originalID string, in ProductInput) (entity.Product, error) {
	id := strings.TrimSpace(in.ID)
	name := strings.TrimSpace(in.Name)
	if id == "" || name == "" {
		return entity.Product{}, domain.ErrInvalidInput
	}
	originalID = strings.TrimSpace(originalID)

	s.mu.Lock()
	defer s.mu.Unlock()

	var out entity.Product
	if originalID == "" {
		if s.productIndex(id) >= 0 {
			return entity.Product{}, domain.ErrDuplicateID
		}
		out = entity.Product{
			ID:          id,
			Name:        name,
			Description: strings.TrimSpace(in.Description),
			CreatedAt:   s.now(),
		}
		s.products = append(s.products, out)
		s.activity.Add(s.now(), "Added new product: "+name)
	} else {
		idx := s.productIndex(originalID)
		if idx < 0 {
			return entity.Product{}, domain.ErrNotFound
		}
		if id != originalID {
			if s.productIndex(id) >= 0 {
				return entity.Product{}, domain.ErrDuplicateID
			}
			n := dominv.RewriteReferences(s.movements, dominv.KindProduct, originalID, id)
			s.log.Debug().Str("from", originalID).Str("to", id).Int("movements", n).Msg("producto renombrado")
		}
		p := &s.products[idx]
		p.ID = id
		p.Name = name
		p.Description = strings.TrimSpace(in.Description)
		out = *p
		s.activity.Add(s.now(), "Updated product: "+name)
	}

	s.persist(ctx)
	return out, nil
}

// DeleteProduct elimina el producto. Sus movimientos quedan colgantes a propósito.
// Devuelve false si el id no existía (no es un error).
func (s *Store) DeleteProduct(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.productIndex(id)
	if idx < 0 {
		return false
	}
	s.products = append(s.products[:idx], s.products[idx+1:]...)
	s.persist(ctx)
	return true
}

// Products devuelve los productos en orden de alta.
func (s *Store) Products() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Product{}, s.products...)
}

// Product obtiene un producto por id.
func (s *Store) Product(id string) (entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.productIndex(id)
	if idx < 0 {
		return entity.Product{}, false
	}
	return s.products[idx], true
}

func (s *Store) productIndex(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}
