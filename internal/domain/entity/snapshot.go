package entity

// Snapshot es el contenido completo del almacén: productos, ubicaciones y movimientos.
// Se persiste entero después de cada mutación (sin diffs incrementales).
type Snapshot struct {
	Products  []Product
	Locations []Location
	Movements []Movement
}

// IsEmpty indica si las tres colecciones están vacías.
func (s *Snapshot) IsEmpty() bool {
	return s == nil || (len(s.Products) == 0 && len(s.Locations) == 0 && len(s.Movements) == 0)
}
