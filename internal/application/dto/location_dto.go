package dto

import "time"

// LocationRequest cuerpo de POST /api/locations y PUT /api/locations/:id.
type LocationRequest struct {
	ID      string `json:"id" validate:"required,max=64"`
	Name    string `json:"name" validate:"required,max=200"`
	Address string `json:"address" validate:"max=500"`
}

// LocationResponse ubicación con la cantidad de productos distintos con stock positivo.
type LocationResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	StockItems int       `json:"stock_items"`
	CreatedAt  time.Time `json:"created_at"`
}
