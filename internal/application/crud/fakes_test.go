package crud_test

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
	"github.com/jhoicas/ecommerce-admin-api/pkg/pagination"
)

// fakeBrands simula usp_brands en memoria y registra cada llamada.
type fakeBrands struct {
	rows      map[uuid.UUID]entity.Brand
	calls     []string
	lastPage  repository.Params
	zeroRows  bool  // Execute devuelve false
	execErr   error // error de Execute
	lookupErr error // error de GetOne
}

func newFakeBrands(seed ...entity.Brand) *fakeBrands {
	f := &fakeBrands{rows: map[uuid.UUID]entity.Brand{}}
	for _, b := range seed {
		f.rows[b.ID] = b
	}
	return f
}

func (f *fakeBrands) GetOne(_ context.Context, _ string, p repository.Params) (*entity.Brand, error) {
	f.calls = append(f.calls, "GetOne:"+string(p.Activity()))
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	id, _ := p["brand_id"].(uuid.UUID)
	switch p.Activity() {
	case repository.ActivityGetByID:
		if b, ok := f.rows[id]; ok {
			return &b, nil
		}
	case repository.ActivityCheckDuplicate:
		name, _ := p["name"].(string)
		for _, b := range f.rows {
			if strings.EqualFold(b.Name, name) && b.ID != id {
				return &b, nil
			}
		}
	}
	return nil, nil
}

func (f *fakeBrands) GetPage(_ context.Context, _ string, w pagination.Window, p repository.Params) (*pagination.Page[entity.Brand], error) {
	f.calls = append(f.calls, "GetPage:"+string(p.Activity()))
	f.lastPage = p
	search, _ := p[repository.KeySearch].(string)
	var all []entity.Brand
	for _, b := range f.rows {
		if strings.Contains(strings.ToLower(b.Name), strings.ToLower(search)) {
			all = append(all, b)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	total := int64(len(all))
	start := min(w.Offset(), len(all))
	end := min(start+w.PageSize, len(all))
	return pagination.New(all[start:end], w, total), nil
}

func (f *fakeBrands) Execute(_ context.Context, _ string, p repository.Params) (bool, error) {
	f.calls = append(f.calls, "Execute:"+string(p.Activity()))
	if f.execErr != nil {
		return false, f.execErr
	}
	if f.zeroRows {
		return false, nil
	}
	id, _ := p["brand_id"].(uuid.UUID)
	b, exists := f.rows[id]
	switch p.Activity() {
	case repository.ActivityInsert:
		b = entity.Brand{ID: id, IsActive: true}
	case repository.ActivityUpdate, repository.ActivityChangeStatus, repository.ActivityDelete:
		if !exists {
			return false, nil
		}
	}
	switch p.Activity() {
	case repository.ActivityInsert, repository.ActivityUpdate:
		b.Name, _ = p["name"].(string)
		b.LogoPath, _ = p["logo_path"].(string)
		f.rows[id] = b
	case repository.ActivityChangeStatus:
		b.IsActive = !b.IsActive
		f.rows[id] = b
	case repository.ActivityDelete:
		delete(f.rows, id)
	}
	return true, nil
}

// fakeAssets registra operaciones en orden.
type fakeAssets struct {
	ops       []string
	missing   map[string]bool
	deleteErr error
}

func (a *fakeAssets) CheckTemp(_ context.Context, ref string) error {
	if a.missing[ref] || !strings.HasPrefix(ref, "tmp/") {
		return repository.ErrAssetNotFound
	}
	return nil
}

func (a *fakeAssets) Relocate(_ context.Context, ref, folder string) (string, error) {
	if a.missing[ref] {
		return "", repository.ErrAssetNotFound
	}
	a.ops = append(a.ops, "relocate:"+ref)
	return path.Join(folder, path.Base(ref)), nil
}

func (a *fakeAssets) Delete(_ context.Context, p string) error {
	a.ops = append(a.ops, "delete:"+p)
	return a.deleteErr
}

// recordingGateway guarda los parámetros de cada mutación.
type recordingGateway struct {
	*fakeBrands
	writes []repository.Params
}

func (r *recordingGateway) Execute(ctx context.Context, proc string, p repository.Params) (bool, error) {
	r.writes = append(r.writes, p)
	return r.fakeBrands.Execute(ctx, proc, p)
}

var errBoom = errors.New("boom")

// failingPages el listado falla como lo haría un pool caído.
type failingPages struct{ *fakeBrands }

func (failingPages) GetPage(context.Context, string, pagination.Window, repository.Params) (*pagination.Page[entity.Brand], error) {
	return nil, fmt.Errorf("%w: usp_brands: %w", repository.ErrDataAccess, errBoom)
}
