package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/boardsat/boardsat/internal/metrics"
)

// serveMetrics serves m's registry at addr via promhttp.HandlerFor, scoped
// to this one run's private registry rather than the process-global
// default registerer.
func serveMetrics(logger *logrus.Logger, addr string, m *metrics.Metrics) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.WithError(err).Error("metrics serving failed")
	}
}
