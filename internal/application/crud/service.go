// Package crud implementa el servicio genérico que comparten todas las entidades del catálogo.
//
// Cada entidad se describe con un Descriptor (procedimiento, parámetro de id, perfiles de
// mapeo, parámetros de escritura, clave de duplicado y archivo asociado). El servicio
// construye la bolsa de parámetros en cada llamada y no guarda estado entre peticiones.
package crud

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/mapping"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
	"github.com/jhoicas/ecommerce-admin-api/pkg/pagination"
)

// Filter búsqueda y ventana de un listado. Extra agrega filtros fijos de la entidad (ej. brand_id).
type Filter struct {
	Search    string
	PageIndex int
	PageSize  int
	Extra     repository.Params
}

// Window ventana normalizada.
func (f Filter) Window() pagination.Window {
	return pagination.Window{PageIndex: f.PageIndex, PageSize: f.PageSize}.Normalize()
}

// Confirmation resultado de una mutación.
type Confirmation struct {
	ID uuid.UUID `json:"id"`
}

// Asset archivo propiedad del registro (logo, imagen, avatar).
type Asset[R any] struct {
	Folder string
	Get    func(*R) string
	Set    func(*R, string)
}

// Descriptor metadatos de una entidad.
type Descriptor[R, W, M any] struct {
	Entity    string // etiqueta para mensajes y logs
	Procedure string
	IDParam   string
	NotFound  string // mensaje cuando el id no existe
	Duplicate string // mensaje cuando la clave única ya está tomada

	ToRecord *mapping.Profile[W, R]
	ToModel  *mapping.Profile[R, M]

	SetID  func(*R, uuid.UUID)
	Params func(*R) repository.Params // parámetros de INSERT / UPDATE, sin actividad ni id
	// InsertParams valores iniciales que solo recibe INSERT (is_active, email_confirmed);
	// UPDATE no los envía y el procedimiento conserva los guardados.
	InsertParams func(*R) repository.Params
	// DuplicateKeys parámetros de CHECK_DUPLICATE; nil = la entidad no tiene clave única.
	DuplicateKeys func(*R) repository.Params
	Asset         *Asset[R]
}

// Service CRUD genérico sobre el gateway de procedimientos.
type Service[R, W, M any] struct {
	d      Descriptor[R, W, M]
	gw     repository.Gateway[R]
	assets repository.AssetStore
	log    zerolog.Logger
}

// NewService entra en pánico si el descriptor está incompleto (error de programación).
func NewService[R, W, M any](d Descriptor[R, W, M], gw repository.Gateway[R], assets repository.AssetStore, log zerolog.Logger) *Service[R, W, M] {
	switch {
	case d.Procedure == "" || d.IDParam == "":
		panic(fmt.Sprintf("crud: %s sin procedimiento o parámetro de id", d.Entity))
	case d.ToRecord == nil || d.ToModel == nil || d.SetID == nil || d.Params == nil:
		panic(fmt.Sprintf("crud: %s sin perfiles de mapeo o parámetros", d.Entity))
	case d.Asset != nil && assets == nil:
		panic(fmt.Sprintf("crud: %s tiene archivo asociado pero no hay AssetStore", d.Entity))
	}
	return &Service[R, W, M]{
		d:      d,
		gw:     gw,
		assets: assets,
		log:    log.With().Str("entity", d.Entity).Logger(),
	}
}

// ── Lectura ──────────────────────────────────────────────────────────────────

// GetAll pasa búsqueda y ventana tal cual al procedimiento; no filtra localmente.
func (s *Service[R, W, M]) GetAll(ctx context.Context, f Filter) (*pagination.Page[M], error) {
	params := repository.NewParams(repository.ActivityGetAll).
		With(repository.KeySearch, f.Search).
		Merge(f.Extra)
	page, err := s.gw.GetPage(ctx, s.d.Procedure, f.Window(), params)
	if err != nil {
		return nil, err
	}
	return pagination.Map(page, s.d.ToModel.Map), nil
}

// GetByID NotFound si no existe.
func (s *Service[R, W, M]) GetByID(ctx context.Context, id uuid.UUID) (*M, error) {
	rec, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.d.ToModel.MapPtr(rec), nil
}

// Model convierte un registro al modelo de salida.
func (s *Service[R, W, M]) Model(rec *R) *M {
	return s.d.ToModel.MapPtr(rec)
}

// Find registro crudo por id; NotFound si no existe.
func (s *Service[R, W, M]) Find(ctx context.Context, id uuid.UUID) (*R, error) {
	rec, err := s.gw.GetOne(ctx, s.d.Procedure, s.byID(repository.ActivityGetByID, id))
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.NotFound("%s", s.d.NotFound)
	}
	return rec, nil
}

// ── Escritura ────────────────────────────────────────────────────────────────

// Create el duplicado se detecta antes de mover archivos o persistir.
func (s *Service[R, W, M]) Create(ctx context.Context, in W) (*Confirmation, error) {
	rec := s.d.ToRecord.Map(in)
	if err := s.checkDuplicate(ctx, &rec, nil); err != nil {
		return nil, err
	}
	if s.d.Asset != nil {
		if ref := s.d.Asset.Get(&rec); ref != "" {
			path, err := s.relocate(ctx, ref)
			if err != nil {
				return nil, err
			}
			s.d.Asset.Set(&rec, path)
		}
	}

	id := uuid.New()
	s.d.SetID(&rec, id)
	params := s.byID(repository.ActivityInsert, id).Merge(s.d.Params(&rec))
	if s.d.InsertParams != nil {
		params.Merge(s.d.InsertParams(&rec))
	}
	if err := s.execute(ctx, params); err != nil {
		return nil, err
	}
	s.log.Info().Str("id", id.String()).Msg("registro creado")
	return &Confirmation{ID: id}, nil
}

// Update reemplaza el registro completo y reconcilia el archivo asociado.
func (s *Service[R, W, M]) Update(ctx context.Context, id uuid.UUID, in W) (*Confirmation, error) {
	current, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	rec := s.d.ToRecord.Map(in)
	s.d.SetID(&rec, id)
	if err := s.checkDuplicate(ctx, &rec, &id); err != nil {
		return nil, err
	}
	if err := s.reconcile(ctx, current, &rec); err != nil {
		return nil, err
	}

	params := s.byID(repository.ActivityUpdate, id).Merge(s.d.Params(&rec))
	if err := s.execute(ctx, params); err != nil {
		return nil, err
	}
	return &Confirmation{ID: id}, nil
}

// ChangeStatus alterna el estado activo; dos llamadas seguidas lo dejan como estaba.
func (s *Service[R, W, M]) ChangeStatus(ctx context.Context, id uuid.UUID) (*Confirmation, error) {
	if _, err := s.Find(ctx, id); err != nil {
		return nil, err
	}
	if err := s.execute(ctx, s.byID(repository.ActivityChangeStatus, id)); err != nil {
		return nil, err
	}
	return &Confirmation{ID: id}, nil
}

// Delete no es idempotente: la segunda llamada devuelve NotFound.
func (s *Service[R, W, M]) Delete(ctx context.Context, id uuid.UUID) (*Confirmation, error) {
	current, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.execute(ctx, s.byID(repository.ActivityDelete, id)); err != nil {
		return nil, err
	}
	if s.d.Asset != nil {
		if path := s.d.Asset.Get(current); path != "" {
			s.deleteAsset(ctx, path)
		}
	}
	return &Confirmation{ID: id}, nil
}

// ── Internos ─────────────────────────────────────────────────────────────────

func (s *Service[R, W, M]) byID(activity repository.Activity, id uuid.UUID) repository.Params {
	return repository.NewParams(activity).With(s.d.IDParam, id)
}

// checkDuplicate en Update se envía el id para que el procedimiento excluya la propia fila.
func (s *Service[R, W, M]) checkDuplicate(ctx context.Context, rec *R, id *uuid.UUID) error {
	if s.d.DuplicateKeys == nil {
		return nil
	}
	params := repository.NewParams(repository.ActivityCheckDuplicate).Merge(s.d.DuplicateKeys(rec))
	if id != nil {
		params.With(s.d.IDParam, *id)
	}
	found, err := s.gw.GetOne(ctx, s.d.Procedure, params)
	if err != nil {
		return err
	}
	if found != nil {
		return domain.BadRequest("%s", s.d.Duplicate)
	}
	return nil
}

// execute false (cero filas) es un fallo interno.
func (s *Service[R, W, M]) execute(ctx context.Context, params repository.Params) error {
	ok, err := s.gw.Execute(ctx, s.d.Procedure, params)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return domain.BadRequest("%s", s.d.Duplicate)
		}
		return err
	}
	if !ok {
		return domain.Internal(nil, "%s: %s no afectó ningún registro", s.d.Entity, params.Activity())
	}
	return nil
}

// reconcile compara la referencia anterior con la nueva:
//
//	igual (incluye ambas vacías)  -> nada
//	nueva vacía, anterior B       -> borrar B
//	nueva A, anterior vacía       -> mover A
//	nueva A, anterior B (A != B)  -> borrar B, mover A
//
// A se verifica antes de borrar B: una referencia inválida deja el registro intacto.
func (s *Service[R, W, M]) reconcile(ctx context.Context, current, rec *R) error {
	if s.d.Asset == nil {
		return nil
	}
	newRef, oldRef := s.d.Asset.Get(rec), s.d.Asset.Get(current)
	switch {
	case newRef == oldRef:
		return nil
	case newRef == "":
		s.deleteAsset(ctx, oldRef)
		return nil
	}
	if err := s.assets.CheckTemp(ctx, newRef); err != nil {
		return s.assetErr(newRef, err)
	}
	if oldRef != "" {
		s.deleteAsset(ctx, oldRef)
	}
	path, err := s.relocate(ctx, newRef)
	if err != nil {
		return err
	}
	s.d.Asset.Set(rec, path)
	return nil
}

func (s *Service[R, W, M]) relocate(ctx context.Context, ref string) (string, error) {
	path, err := s.assets.Relocate(ctx, ref, s.d.Asset.Folder)
	if err != nil {
		return "", s.assetErr(ref, err)
	}
	return path, nil
}

func (s *Service[R, W, M]) assetErr(ref string, err error) error {
	if errors.Is(err, repository.ErrAssetNotFound) {
		return domain.BadRequest("archivo %q no encontrado; súbalo de nuevo", ref)
	}
	return domain.Internal(err, "no se pudo guardar el archivo de %s", s.d.Entity)
}

// deleteAsset best-effort: el fallo se registra y no se propaga.
func (s *Service[R, W, M]) deleteAsset(ctx context.Context, path string) {
	if err := s.assets.Delete(ctx, path); err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("no se pudo eliminar el archivo")
	}
}
