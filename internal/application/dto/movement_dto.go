package dto

import (
	"bytes"
	"encoding/json"
	"time"
)

// Quantity acepta la cantidad como número o como texto y la conserva como texto:
// la validación de dominio decide si es un entero positivo (5.0 cuenta como 5; 2.5 se rechaza).
type Quantity string

// UnmarshalJSON implementa json.Unmarshaler.
func (q *Quantity) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*q = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*q = Quantity(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*q = Quantity(n.String())
	return nil
}

// MovementRequest cuerpo de POST /api/movements.
type MovementRequest struct {
	ProductID    string   `json:"product_id"`
	FromLocation string   `json:"from_location"`
	ToLocation   string   `json:"to_location"`
	Qty          Quantity `json:"qty" swaggertype:"string"`
}

// MovementResponse movimiento con nombres resueltos para mostrar.
type MovementResponse struct {
	ID           int64     `json:"id"`
	Type         string    `json:"type"`
	ProductID    string    `json:"product_id"`
	ProductName  string    `json:"product_name"`
	FromLocation *string   `json:"from_location"`
	ToLocation   *string   `json:"to_location"`
	FromName     string    `json:"from_name"`
	ToName       string    `json:"to_name"`
	Qty          int       `json:"qty"`
	Timestamp    time.Time `json:"timestamp"`
}

// StockLevelResponse fila de GET /api/stock (puede ser negativa).
type StockLevelResponse struct {
	ProductID  string `json:"product_id"`
	LocationID string `json:"location_id"`
	Qty        int    `json:"qty"`
}
