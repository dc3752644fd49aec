package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-admin-api/internal/infrastructure/metrics"
)

func TestRecorder_CuentaFallosPorTipo(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)

	rec.CountFailure("not_found")
	rec.CountFailure("not_found")
	rec.CountFailure("internal")

	n, err := testutil.GatherAndCount(reg, "ecommerce_http_failures_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "una serie por tipo")
}

func TestRecorder_ObservaLlamadas(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)

	rec.ObserveCall("usp_brands", "GET_ALL", "ok", 15*time.Millisecond)

	n, err := testutil.GatherAndCount(reg, "ecommerce_gateway_call_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRecorder_NilNoFalla(t *testing.T) {
	var rec *metrics.Recorder

	assert.NotPanics(t, func() {
		rec.ObserveCall("usp_brands", "GET_ALL", "ok", time.Millisecond)
		rec.CountFailure("internal")
	})
}
