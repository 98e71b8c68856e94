// Package snapshot codifica el documento persistido del almacén:
//
//	{"products":[...],"locations":[...],"movements":[{"id":..,"productId":..,"from":null,"to":"L1","qty":5,"timestamp":".."}]}
//
// Es el mismo formato para archivo, Redis y exportación CLI.
package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/inventory-pro/internal/domain/entity"
)

type productDoc struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type locationDoc struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

type movementDoc struct {
	ID        int64     `json:"id"`
	ProductID string    `json:"productId"`
	From      *string   `json:"from"`
	To        *string   `json:"to"`
	Qty       int       `json:"qty"`
	Timestamp time.Time `json:"timestamp"`
}

type document struct {
	Products  []productDoc  `json:"products"`
	Locations []locationDoc `json:"locations"`
	Movements []movementDoc `json:"movements"`
}

// Encode serializa el snapshot. Colecciones nil se escriben como [].
func Encode(s *entity.Snapshot) ([]byte, error) {
	doc := document{
		Products:  make([]productDoc, 0, len(s.Products)),
		Locations: make([]locationDoc, 0, len(s.Locations)),
		Movements: make([]movementDoc, 0, len(s.Movements)),
	}
	for _, p := range s.Products {
		doc.Products = append(doc.Products, productDoc(p))
	}
	for _, l := range s.Locations {
		doc.Locations = append(doc.Locations, locationDoc(l))
	}
	for _, m := range s.Movements {
		doc.Movements = append(doc.Movements, movementDoc{
			ID:        m.ID,
			ProductID: m.ProductID,
			From:      optional(m.From()),
			To:        optional(m.To()),
			Qty:       m.Qty,
			Timestamp: m.Timestamp,
		})
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("snapshot: codificar: %w", err)
	}
	return b, nil
}

// Decode interpreta el documento. Un movimiento sin origen ni destino se devuelve con
// Direction nil para que el almacén lo descarte al cargar.
func Decode(data []byte) (*entity.Snapshot, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("snapshot: decodificar: %w", err)
	}
	out := &entity.Snapshot{
		Products:  make([]entity.Product, 0, len(doc.Products)),
		Locations: make([]entity.Location, 0, len(doc.Locations)),
		Movements: make([]entity.Movement, 0, len(doc.Movements)),
	}
	for _, p := range doc.Products {
		out.Products = append(out.Products, entity.Product(p))
	}
	for _, l := range doc.Locations {
		out.Locations = append(out.Locations, entity.Location(l))
	}
	for _, m := range doc.Movements {
		dir, _ := entity.NewDirection(value(m.From), value(m.To))
		out.Movements = append(out.Movements, entity.Movement{
			ID:        m.ID,
			ProductID: m.ProductID,
			Direction: dir,
			Qty:       m.Qty,
			Timestamp: m.Timestamp,
		})
	}
	return out, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
