// Package metrics junta los contadores prometheus del subsistema de
// contratos: validaciones por versión/recurso, uso del camino de
// fallback y el score de compatibilidad entre versiones.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	registry *prometheus.Registry

	validations *prometheus.CounterVec
	fallbacks   *prometheus.CounterVec
	compatScore *prometheus.GaugeVec
}

// NewCollector arma un registro propio (nada global) con las métricas
// del API más las de runtime.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	factory := promauto.With(registry)
	return &Collector{
		registry: registry,
		validations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vetd",
			Subsystem: "api",
			Name:      "validations_total",
			Help:      "Validaciones de payload por versión, recurso y resultado.",
		}, []string{"version", "resource", "outcome"}),
		fallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vetd",
			Subsystem: "api",
			Name:      "fallback_total",
			Help:      "Validaciones que pasaron por el camino de fallback, por tipo.",
		}, []string{"resource", "kind"}),
		compatScore: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "vetd",
			Subsystem: "api",
			Name:      "contract_compat_score",
			Help:      "Score de compatibilidad |comunes|/|unión| entre dos versiones de un contrato.",
		}, []string{"resource", "from", "to"}),
	}
}

func (c *Collector) ObserveValidation(version, resource, outcome string) {
	c.validations.WithLabelValues(version, resource, outcome).Inc()
}

func (c *Collector) ObserveFallback(resource, kind string) {
	c.fallbacks.WithLabelValues(resource, kind).Inc()
}

func (c *Collector) SetCompatScore(resource, from, to string, score float64) {
	c.compatScore.WithLabelValues(resource, from, to).Set(score)
}

// Handler expone el registro propio en formato prometheus.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
