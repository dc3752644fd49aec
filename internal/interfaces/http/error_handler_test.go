package http_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
	"github.com/jhoicas/ecommerce-admin-api/internal/infrastructure/metrics"
	apphttp "github.com/jhoicas/ecommerce-admin-api/internal/interfaces/http"
)

func failingApp(err error, rec *metrics.Recorder) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(zerolog.Nop(), rec)})
	app.Get("/fail", func(c *fiber.Ctx) error { return err })
	return app
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	return resp
}

func TestErrorHandler_TipoDeDominioAEstado(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"no encontrado", domain.NotFound("X not found"), http.StatusNotFound, "X not found"},
		{"petición inválida", domain.BadRequest("nombre duplicado"), http.StatusBadRequest, "nombre duplicado"},
		{"no autenticado", domain.Unauthorized("token requerido"), http.StatusUnauthorized, "token requerido"},
		{"prohibido", domain.Forbidden("solo admin"), http.StatusForbidden, "solo admin"},
		{"interno", domain.Internal(errors.New("pgx"), "fallo al guardar"), http.StatusInternalServerError, "fallo al guardar"},
		{"envuelto", fmt.Errorf("capa: %w", domain.NotFound("marca no encontrada")), http.StatusNotFound, "marca no encontrada"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := get(t, failingApp(tc.err, nil), "/fail")
			defer resp.Body.Close()

			assert.Equal(t, tc.status, resp.StatusCode)
			env := decodeEnvelope(t, resp)
			assert.Equal(t, tc.status, env.StatusCode)
			assert.Equal(t, tc.message, env.Message, "el mensaje del error de dominio, sin envoltorios")
			assert.Equal(t, "null", string(env.Data))
		})
	}
}

func TestErrorHandler_NotFoundSobreExacto(t *testing.T) {
	resp := get(t, failingApp(domain.NotFound("X not found"), nil), "/fail")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, envelope{StatusCode: 404, Message: "X not found", Data: []byte("null")}, decodeEnvelope(t, resp))
}

func TestErrorHandler_ErrorNoClasificadoEsInternoConMensajeLiteral(t *testing.T) {
	err := fmt.Errorf("%w: usp_brands: conexión rechazada", repository.ErrDataAccess)

	resp := get(t, failingApp(err, nil), "/fail")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, err.Error(), decodeEnvelope(t, resp).Message)
}

func TestErrorHandler_ErroresDeFiber(t *testing.T) {
	app := failingApp(fiber.NewError(fiber.StatusRequestEntityTooLarge, "Request Entity Too Large"), nil)

	resp := get(t, app, "/no-existe")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "ruta inexistente conserva 404")
	assert.Equal(t, http.StatusNotFound, decodeEnvelope(t, resp).StatusCode)

	resp = get(t, app, "/fail")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode, "otros códigos de Fiber son internos")
	assert.Equal(t, "Request Entity Too Large", decodeEnvelope(t, resp).Message)
}

func TestErrorHandler_PanicoRecuperado(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(zerolog.Nop(), nil)})
	app.Use(recover.New())
	app.Get("/panic", func(c *fiber.Ctx) error { panic("se rompió") })

	resp := get(t, app, "/panic")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, http.StatusInternalServerError, decodeEnvelope(t, resp).StatusCode)
}

func TestErrorHandler_CuentaFallosPorTipo(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)

	for _, err := range []error{domain.NotFound("a"), domain.NotFound("b"), domain.Forbidden("c")} {
		resp := get(t, failingApp(err, rec), "/fail")
		resp.Body.Close()
	}

	n, err := testutil.GatherAndCount(reg, "ecommerce_http_failures_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "una serie por tipo")
}

func TestRequestLogger_ResuelveElErrorUnaSolaVez(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(zerolog.Nop(), nil)})
	app.Use(apphttp.RequestLogger(zerolog.Nop()))
	app.Get("/fail", func(c *fiber.Ctx) error { return domain.BadRequest("dato inválido") })

	resp := get(t, app, "/fail")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, envelope{StatusCode: 400, Message: "dato inválido", Data: []byte("null")}, decodeEnvelope(t, resp))
}
