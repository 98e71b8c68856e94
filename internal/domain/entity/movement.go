package entity

import "time"

// Tipos de movimiento de inventario (etiquetas visibles).
const (
	MovementTypeIn       = "Stock In"  // entrada
	MovementTypeOut      = "Stock Out" // salida
	MovementTypeTransfer = "Transfer"  // traslado entre ubicaciones
)

// Direction es la dirección de un movimiento. Solo existen tres variantes:
// Inbound, Outbound y Transfer; la combinación "sin origen ni destino" no es representable.
type Direction interface {
	Kind() string
	Source() string      // ubicación de origen ("" si no aplica)
	Destination() string // ubicación de destino ("" si no aplica)
	isDirection()
}

// Inbound entrada de mercancía a una ubicación.
type Inbound struct {
	To string
}

// Outbound salida de mercancía desde una ubicación.
type Outbound struct {
	From string
}

// Transfer traslado entre dos ubicaciones. From == To se tolera (efecto neto cero).
type Transfer struct {
	From string
	To   string
}

func (Inbound) Kind() string          { return MovementTypeIn }
func (Inbound) Source() string        { return "" }
func (d Inbound) Destination() string { return d.To }
func (Inbound) isDirection()          {}

func (Outbound) Kind() string          { return MovementTypeOut }
func (d Outbound) Source() string      { return d.From }
func (Outbound) Destination() string   { return "" }
func (Outbound) isDirection()          {}

func (Transfer) Kind() string          { return MovementTypeTransfer }
func (d Transfer) Source() string      { return d.From }
func (d Transfer) Destination() string { return d.To }
func (Transfer) isDirection()          {}

// NewDirection construye la variante a partir de origen y destino opcionales.
// Devuelve false si ambos están vacíos.
func NewDirection(from, to string) (Direction, bool) {
	switch {
	case from == "" && to == "":
		return nil, false
	case from == "":
		return Inbound{To: to}, true
	case to == "":
		return Outbound{From: from}, true
	default:
		return Transfer{From: from, To: to}, true
	}
}

// Movement registro inmutable de cantidad que entra, sale o se traslada para un producto.
type Movement struct {
	ID        int64 // milisegundos Unix al crearse, estrictamente creciente en el log
	ProductID string
	Direction Direction
	Qty       int // siempre > 0
	Timestamp time.Time
}

// From devuelve la ubicación de origen o "" si el movimiento es una entrada.
func (m Movement) From() string {
	if m.Direction == nil {
		return ""
	}
	return m.Direction.Source()
}

// To devuelve la ubicación de destino o "" si el movimiento es una salida.
func (m Movement) To() string {
	if m.Direction == nil {
		return ""
	}
	return m.Direction.Destination()
}

// Type devuelve la etiqueta del tipo de movimiento.
func (m Movement) Type() string {
	if m.Direction == nil {
		return ""
	}
	return m.Direction.Kind()
}
