package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	registry        *prometheus.Registry
	conversions     *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	catalogSource   *prometheus.GaugeVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		conversions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "spaceage",
				Name:      "conversions_total",
				Help:      "Total number of age conversions",
			},
			[]string{"planet"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "spaceage",
				Name:      "request_duration_seconds",
				Help:      "Time spent processing API requests",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"handler", "code"},
		),
		catalogSource: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "spaceage",
				Name:      "catalog_source",
				Help:      "Source the orbital period catalog was loaded from",
			},
			[]string{"source"},
		),
	}

	c.registry.MustRegister(c.conversions, c.requestDuration, c.catalogSource)
	return c
}

func (c *Collector) RecordConversion(planet string) {
	if c == nil {
		return
	}
	c.conversions.WithLabelValues(planet).Inc()
}

func (c *Collector) RecordRequest(handler string, code int, duration time.Duration) {
	if c == nil {
		return
	}
	c.requestDuration.WithLabelValues(handler, strconv.Itoa(code)).Observe(duration.Seconds())
}

func (c *Collector) SetCatalogSource(source string) {
	if c == nil {
		return
	}
	c.catalogSource.Reset()
	c.catalogSource.WithLabelValues(source).Set(1)
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
