// Package pagination define la ventana de paginación y el sobre de resultados paginados.
package pagination

const (
	DefaultPageIndex = 1
	DefaultPageSize  = 10
	MaxPageSize      = 100
)

// Window página solicitada (PageIndex empieza en 1).
type Window struct {
	PageIndex int
	PageSize  int
}

// Normalize aplica valores por defecto y límites.
func (w Window) Normalize() Window {
	if w.PageIndex < 1 {
		w.PageIndex = DefaultPageIndex
	}
	if w.PageSize <= 0 {
		w.PageSize = DefaultPageSize
	}
	if w.PageSize > MaxPageSize {
		w.PageSize = MaxPageSize
	}
	return w
}

// Offset filas a saltar antes de la página.
func (w Window) Offset() int {
	return (w.PageIndex - 1) * w.PageSize
}

// Page sobre de resultados: conserva el orden de Items tal como llegó.
type Page[T any] struct {
	Items      []T   `json:"items"`
	PageIndex  int   `json:"pageIndex"`
	PageSize   int   `json:"pageSize"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}

// New construye el sobre. Recorta items a PageSize y calcula TotalPages = ceil(total / size).
func New[T any](items []T, w Window, totalCount int64) *Page[T] {
	w = w.Normalize()
	if items == nil {
		items = []T{}
	}
	if len(items) > w.PageSize {
		items = items[:w.PageSize]
	}
	if totalCount < 0 {
		totalCount = 0
	}
	return &Page[T]{
		Items:      items,
		PageIndex:  w.PageIndex,
		PageSize:   w.PageSize,
		TotalCount: totalCount,
		TotalPages: TotalPages(totalCount, w.PageSize),
	}
}

// TotalPages ceil(total / size); 0 si size no es positivo.
func TotalPages(total int64, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}

// Map convierte los items conservando los metadatos de la página.
func Map[S, D any](p *Page[S], fn func(S) D) *Page[D] {
	if p == nil {
		return nil
	}
	items := make([]D, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, fn(it))
	}
	return &Page[D]{
		Items:      items,
		PageIndex:  p.PageIndex,
		PageSize:   p.PageSize,
		TotalCount: p.TotalCount,
		TotalPages: p.TotalPages,
	}
}
