package entity

import "time"

// Location representa una bodega o punto de almacenamiento donde se guarda inventario.
type Location struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
}
