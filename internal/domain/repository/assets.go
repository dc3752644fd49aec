package repository

import (
	"context"
	"errors"
)

// ErrAssetNotFound la referencia temporal no existe (nunca se subió o ya se movió).
var ErrAssetNotFound = errors.New("archivo no encontrado")

// AssetStore archivos propiedad de una entidad (logo, imagen, avatar).
// CheckTemp confirma que la referencia es una subida temporal pendiente (ErrAssetNotFound si no).
// Relocate mueve una subida temporal a su carpeta definitiva y devuelve la ruta relativa.
type AssetStore interface {
	CheckTemp(ctx context.Context, tempRef string) error
	Relocate(ctx context.Context, tempRef, folder string) (string, error)
	Delete(ctx context.Context, path string) error
}
