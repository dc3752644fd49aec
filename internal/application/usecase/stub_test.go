package usecase_test

import (
	"context"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
	"github.com/jhoicas/ecommerce-admin-api/pkg/pagination"
)

// stubGateway responde siempre lo mismo y guarda los parámetros recibidos.
type stubGateway[R any] struct {
	one      *R
	ok       bool
	err      error
	received []repository.Params
}

func (g *stubGateway[R]) Execute(_ context.Context, _ string, p repository.Params) (bool, error) {
	g.received = append(g.received, p)
	return g.ok, g.err
}

func (g *stubGateway[R]) GetOne(_ context.Context, _ string, p repository.Params) (*R, error) {
	g.received = append(g.received, p)
	if p.Activity() == repository.ActivityCheckDuplicate {
		return nil, g.err
	}
	return g.one, g.err
}

func (g *stubGateway[R]) GetPage(_ context.Context, _ string, w pagination.Window, p repository.Params) (*pagination.Page[R], error) {
	g.received = append(g.received, p)
	return pagination.New([]R{}, w, 0), g.err
}

// last parámetros de la última llamada con esa actividad.
func (g *stubGateway[R]) last(a repository.Activity) repository.Params {
	for i := len(g.received) - 1; i >= 0; i-- {
		if g.received[i].Activity() == a {
			return g.received[i]
		}
	}
	return nil
}

// stubAssets almacenamiento que no toca disco.
type stubAssets struct{}

func (stubAssets) CheckTemp(context.Context, string) error { return nil }

func (stubAssets) Relocate(_ context.Context, ref, folder string) (string, error) {
	return folder + "/" + ref, nil
}

func (stubAssets) Delete(context.Context, string) error { return nil }
