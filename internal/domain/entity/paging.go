package entity

// Paging columna total_count que los procedimientos devuelven en las ramas paginadas (COUNT(*) OVER()).
// Se embebe en los registros; en las ramas sin paginación simplemente queda en cero.
type Paging struct {
	TotalCount int64 `db:"total_count"`
}

// Total total de filas de la consulta completa.
func (p Paging) Total() int64 { return p.TotalCount }
