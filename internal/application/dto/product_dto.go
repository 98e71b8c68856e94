package dto

import "time"

// ProductRequest cuerpo de POST /api/products y PUT /api/products/:id.
// En PUT, ID puede diferir del id de la ruta: eso renombra el producto.
type ProductRequest struct {
	ID          string `json:"id" validate:"required,max=64"`
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=1000"`
}

// ProductResponse producto con su existencia total derivada.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TotalStock  int       `json:"total_stock"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductStockResponse respuesta de GET /api/products/:id/stock.
type ProductStockResponse struct {
	ProductID  string         `json:"product_id"`
	TotalStock int            `json:"total_stock"`
	ByLocation map[string]int `json:"by_location"`
}
