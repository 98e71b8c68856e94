// Package inventory implementa el almacén de entidades: dueño único de productos, ubicaciones
// y movimientos, con un solo lock que cubre cada mutación completa (incluida la cascada de ids).
// Las consultas de stock se recalculan sobre el estado actual en cada llamada.
package inventory

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/inventory-pro/internal/domain/entity"
	dominv "github.com/jhoicas/inventory-pro/internal/domain/inventory"
	"github.com/jhoicas/inventory-pro/internal/domain/repository"
)

// Store almacén en memoria con persistencia por snapshot después de cada mutación.
type Store struct {
	mu        sync.RWMutex
	products  []entity.Product
	locations []entity.Location
	movements []entity.Movement

	lastMovementID int64
	activity       *ActivityFeed

	repo      repository.SnapshotRepository
	log       zerolog.Logger
	now       func() time.Time
	collation *language.Tag
}

// Option configura el Store.
type Option func(*Store)

// WithLogger asigna el logger (por defecto zerolog.Nop()).
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithClock reemplaza time.Now (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithCollation ordena el reporte con reglas del idioma indicado en lugar del orden de bytes.
func WithCollation(tag language.Tag) Option {
	return func(s *Store) { s.collation = &tag }
}

// NewStore construye un almacén vacío. Llamar Init para cargar el snapshot guardado.
func NewStore(repo repository.SnapshotRepository, opts ...Option) *Store {
	s := &Store{
		products:  []entity.Product{},
		locations: []entity.Location{},
		movements: []entity.Movement{},
		activity:  NewActivityFeed(activityFeedSize),
		repo:      repo,
		log:       zerolog.Nop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init carga el estado inicial desde el repositorio.
// Los errores de lectura se registran y el almacén arranca vacío; nunca se propagan.
func (s *Store) Init(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("no se pudo cargar el snapshot, se inicia vacío")
		return
	}
	if snap == nil {
		return
	}

	s.products = append([]entity.Product{}, snap.Products...)
	s.locations = append([]entity.Location{}, snap.Locations...)
	s.movements = make([]entity.Movement, 0, len(snap.Movements))
	dropped := 0
	for _, m := range snap.Movements {
		if m.Direction == nil || m.Qty <= 0 || m.ProductID == "" {
			dropped++
			continue
		}
		s.movements = append(s.movements, m)
		if m.ID > s.lastMovementID {
			s.lastMovementID = m.ID
		}
	}
	if dropped > 0 {
		s.log.Warn().Int("descartados", dropped).Msg("movimientos inválidos en el snapshot")
	}
	s.log.Info().
		Int("products", len(s.products)).
		Int("locations", len(s.locations)).
		Int("movements", len(s.movements)).
		Msg("snapshot cargado")
}

// Snapshot devuelve una copia del estado actual.
func (s *Store) Snapshot() *entity.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() *entity.Snapshot {
	return &entity.Snapshot{
		Products:  append([]entity.Product{}, s.products...),
		Locations: append([]entity.Location{}, s.locations...),
		Movements: append([]entity.Movement{}, s.movements...),
	}
}

// persist entrega el snapshot completo al repositorio. Debe llamarse con el lock de escritura.
// Un fallo se registra pero no deshace la mutación: el estado en memoria manda.
func (s *Store) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.snapshotLocked()); err != nil {
		s.log.Error().Err(err).Msg("guardar snapshot")
	}
}

func (s *Store) compareFunc() dominv.CompareFunc {
	if s.collation == nil {
		return nil
	}
	// collate.Collator no es seguro para uso concurrente: uno por llamada.
	c := collate.New(*s.collation)
	return c.CompareString
}
