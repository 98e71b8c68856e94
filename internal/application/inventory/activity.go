package inventory

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const activityFeedSize = 10

// ActivityEntry evento legible del feed de actividad.
type ActivityEntry struct {
	ID      string
	Message string
	At      time.Time
}

// ActivityFeed conserva las últimas N entradas en memoria (no se persisten).
type ActivityFeed struct {
	mu      sync.Mutex
	size    int
	entries []ActivityEntry // más reciente primero
}

// NewActivityFeed construye un feed con capacidad size.
func NewActivityFeed(size int) *ActivityFeed {
	if size <= 0 {
		size = activityFeedSize
	}
	return &ActivityFeed{size: size}
}

// Add agrega una entrada al inicio y descarta la más vieja si se excede la capacidad.
func (f *ActivityFeed) Add(at time.Time, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e := ActivityEntry{ID: uuid.New().String(), Message: message, At: at}
	f.entries = append([]ActivityEntry{e}, f.entries...)
	if len(f.entries) > f.size {
		f.entries = f.entries[:f.size]
	}
}

// List copia de las entradas, más reciente primero.
func (f *ActivityFeed) List() []ActivityEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ActivityEntry{}, f.entries...)
}
