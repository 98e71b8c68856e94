package entity

import "time"

// Product representa un producto del inventario.
// ID lo asigna el usuario y es único; el stock no se guarda aquí, se deriva de los movimientos.
type Product struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}
