package repository

import (
	"context"
	"errors"

	"github.com/jhoicas/ecommerce-admin-api/pkg/pagination"
)

// ErrDataAccess la llamada al procedimiento no pudo completarse (conexión, consulta o parámetros).
// Es distinto de "sin filas": eso se devuelve como nil sin error.
var ErrDataAccess = errors.New("error de acceso a datos")

// Gateway puerto genérico de acceso a procedimientos almacenados, visto a través de un tipo de registro R.
// Cada invocación hace exactamente una llamada remota: sin reintentos, sin caché, sin transacciones.
type Gateway[R any] interface {
	// Execute ejecuta una mutación y devuelve true si afectó al menos una fila.
	Execute(ctx context.Context, procedure string, params Params) (bool, error)
	// GetOne devuelve nil, nil cuando no hay filas.
	GetOne(ctx context.Context, procedure string, params Params) (*R, error)
	// GetPage devuelve la página solicitada con el total de filas de la consulta.
	GetPage(ctx context.Context, procedure string, window pagination.Window, params Params) (*pagination.Page[R], error)
}

// ErrDuplicateKey la mutación violó una restricción de unicidad (carrera entre CHECK_DUPLICATE e INSERT).
var ErrDuplicateKey = errors.New("registro duplicado")
