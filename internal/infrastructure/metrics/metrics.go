// Package metrics agrupa los colectores Prometheus de la API.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "ecommerce"

// Recorder colectores de la aplicación. Un *Recorder nil es válido y no registra nada (tests).
type Recorder struct {
	gatewayCalls *prometheus.HistogramVec
	httpFailures *prometheus.CounterVec
}

// NewRegistry crea un registro propio con los colectores de runtime y proceso.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// New crea y registra los colectores en reg.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		gatewayCalls: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "gateway",
			Name:      "call_duration_seconds",
			Help:      "Duración de las llamadas a procedimientos almacenados.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure", "activity", "outcome"}),
		httpFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "failures_total",
			Help:      "Respuestas de error emitidas por el manejador central, por tipo.",
		}, []string{"kind"}),
	}
	reg.MustRegister(r.gatewayCalls, r.httpFailures)
	return r
}

// ObserveCall registra la duración de una llamada al gateway.
func (r *Recorder) ObserveCall(procedure, activity, outcome string, d time.Duration) {
	if r == nil {
		return
	}
	r.gatewayCalls.WithLabelValues(procedure, activity, outcome).Observe(d.Seconds())
}

// CountFailure cuenta una respuesta de error por tipo.
func (r *Recorder) CountFailure(kind string) {
	if r == nil {
		return
	}
	r.httpFailures.WithLabelValues(kind).Inc()
}
