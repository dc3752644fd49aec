// Package storage guarda los archivos subidos (logos, imágenes, avatares) sobre afero.
//
// Una subida queda primero como referencia temporal tmp/<uuid><ext>; al crear o modificar
// la entidad dueña, el servicio la mueve a <carpeta>/<uuid><ext>. Todas las rutas son
// relativas a la raíz configurada.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

// TempFolder carpeta de las subidas pendientes.
const TempFolder = "tmp"

// ErrInvalidPath ruta absoluta, con "..", o fuera de la carpeta esperada.
var ErrInvalidPath = errors.New("storage: ruta inválida")

// ErrTooLarge el archivo supera el tamaño máximo.
var ErrTooLarge = errors.New("storage: archivo demasiado grande")

// allowedExt extensiones aceptadas en minúsculas.
var allowedExt = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true, ".svg": true,
}

var _ repository.AssetStore = (*FileStore)(nil)

// FileStore almacenamiento de archivos sobre un afero.Fs enraizado.
type FileStore struct {
	fs       afero.Fs
	maxBytes int64
}

// NewFileStore fs ya enraizado (afero.NewBasePathFs) o en memoria para tests.
func NewFileStore(fs afero.Fs, maxBytes int64) *FileStore {
	return &FileStore{fs: fs, maxBytes: maxBytes}
}

// NewOSFileStore raíz en disco; la crea si no existe.
func NewOSFileStore(root string, maxBytes int64) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear raíz %s: %w", root, err)
	}
	return NewFileStore(afero.NewBasePathFs(afero.NewOsFs(), root), maxBytes), nil
}

// PublicFs vista de solo lectura para HTTP: únicamente archivos directos de las carpetas
// indicadas. Las subidas pendientes de tmp/ nunca se exponen.
func (s *FileStore) PublicFs(folders ...string) afero.Fs {
	names := make([]string, 0, len(folders))
	for _, f := range folders {
		if f == "" || f == TempFolder || strings.ContainsAny(f, "/\\") {
			continue
		}
		names = append(names, regexp.QuoteMeta(f))
	}
	if len(names) == 0 {
		// nada que exponer: ningún nombre de archivo coincide
		return afero.NewReadOnlyFs(afero.NewRegexpFs(s.fs, regexp.MustCompile(`^$`)))
	}
	re := regexp.MustCompile(`^/?(?:` + strings.Join(names, "|") + `)/[^/]+$`)
	return afero.NewReadOnlyFs(afero.NewRegexpFs(s.fs, re))
}

// SaveTemp guarda el contenido con nombre aleatorio y devuelve la referencia temporal.
func (s *FileStore) SaveTemp(ctx context.Context, filename string, r io.Reader) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExt[ext] {
		return "", 0, fmt.Errorf("%w: extensión %q no permitida", ErrInvalidPath, ext)
	}
	if err := s.fs.MkdirAll(TempFolder, 0o755); err != nil {
		return "", 0, fmt.Errorf("storage: crear %s: %w", TempFolder, err)
	}

	ref := path.Join(TempFolder, uuid.NewString()+ext)
	f, err := s.fs.Create(ref)
	if err != nil {
		return "", 0, fmt.Errorf("storage: crear %s: %w", ref, err)
	}
	// +1 para detectar que se superó el límite sin leer todo el cuerpo
	n, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil && n > s.maxBytes {
		err = ErrTooLarge
	}
	if err != nil {
		_ = s.fs.Remove(ref)
		return "", 0, fmt.Errorf("storage: guardar %s: %w", ref, err)
	}
	return ref, n, nil
}

// CheckTemp la referencia existe bajo tmp/.
func (s *FileStore) CheckTemp(ctx context.Context, tempRef string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.tempPath(tempRef)
	return err
}

// Relocate mueve tmp/<nombre> a <folder>/<nombre>.
func (s *FileStore) Relocate(ctx context.Context, tempRef, folder string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	dstDir, err := clean(folder)
	if err != nil || strings.Contains(dstDir, "/") || dstDir == TempFolder {
		return "", fmt.Errorf("%w: carpeta %q", ErrInvalidPath, folder)
	}
	src, err := s.tempPath(tempRef)
	if err != nil {
		return "", err
	}
	if err := s.fs.MkdirAll(dstDir, 0o755); err != nil {
		return "", fmt.Errorf("storage: crear %s: %w", dstDir, err)
	}
	dst := path.Join(dstDir, path.Base(src))
	if err := s.fs.Rename(src, dst); err != nil {
		return "", fmt.Errorf("storage: mover %s: %w", src, err)
	}
	return dst, nil
}

// Delete un archivo inexistente no es error.
func (s *FileStore) Delete(ctx context.Context, p string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rel, err := clean(p)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(rel); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: eliminar %s: %w", rel, err)
	}
	return nil
}

// tempPath ruta limpia de una subida pendiente. La referencia la envía el cliente:
// cualquier forma inválida se reporta como inexistente.
func (s *FileStore) tempPath(tempRef string) (string, error) {
	src, err := clean(tempRef)
	if err != nil {
		return "", fmt.Errorf("%w: %w", repository.ErrAssetNotFound, err)
	}
	if path.Dir(src) != TempFolder {
		return "", fmt.Errorf("%w: %q no es una referencia temporal", repository.ErrAssetNotFound, tempRef)
	}
	if _, err := s.fs.Stat(src); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", repository.ErrAssetNotFound, tempRef)
		}
		return "", fmt.Errorf("storage: stat %s: %w", src, err)
	}
	return src, nil
}

// clean normaliza una ruta relativa y rechaza las que escapan de la raíz.
func clean(p string) (string, error) {
	p = strings.ReplaceAll(strings.TrimSpace(p), "\\", "/")
	if p == "" || strings.HasPrefix(p, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}
	for _, part := range strings.Split(p, "/") {
		if part == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
		}
	}
	return path.Clean(p), nil
}
