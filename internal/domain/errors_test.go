package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
)

func TestKindOf_ClasificaErroresDeDominio(t *testing.T) {
	cases := []struct {
		err  error
		want domain.Kind
	}{
		{domain.NotFound("marca no encontrada"), domain.KindNotFound},
		{domain.BadRequest("duplicado"), domain.KindBadRequest},
		{domain.Unauthorized("sin token"), domain.KindUnauthorized},
		{domain.Forbidden("rol"), domain.KindForbidden},
		{domain.Internal(nil, "fallo"), domain.KindInternal},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, domain.KindOf(tc.err), tc.err.Error())
	}
}

func TestKindOf_ErrorEnvueltoConservaTipo(t *testing.T) {
	err := fmt.Errorf("capa superior: %w", domain.NotFound("producto no encontrado"))

	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	assert.True(t, domain.IsNotFound(err))
}

func TestKindOf_ErrorDesconocidoEsInternal(t *testing.T) {
	assert.Equal(t, domain.KindInternal, domain.KindOf(errors.New("connection refused")))
}

func TestInternal_ExponeCausaSinAlterarMensaje(t *testing.T) {
	cause := errors.New("pg: timeout")
	err := domain.Internal(cause, "no se pudo registrar la %s", "marca")

	assert.Equal(t, "no se pudo registrar la marca", err.Error())
	assert.ErrorIs(t, err, cause)
}
