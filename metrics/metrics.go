// Package metrics exposes Prometheus counters for the incident pipeline and a
// standalone metrics server that binaries run next to their API listener.
package metrics

import (
	"context"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pipeline counters. Registered once on the default registry so both the
// relay and the report CLI can share them.
var (
	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "incidentd_submissions_total",
		Help: "Ledger submissions by outcome (ok, rejected, reverted, unconfirmed).",
	}, []string{"outcome"})

	UploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "incidentd_uploads_total",
		Help: "Storage uploads by outcome (ok, error, invalid_credential).",
	}, []string{"outcome"})

	VerificationPollsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "incidentd_verification_polls_total",
		Help: "Identity verification status reads issued by the poller.",
	})
)

var upOnce sync.Once

// MetricsServer serves the Prometheus endpoint on its own address.
type MetricsServer struct {
	srv *http.Server
}

// New creates a metrics server listening on addr. The service name is kept as
// a label on the default registry's build info.
func New(service, addr string) (*MetricsServer, error) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	upOnce.Do(func() {
		prometheus.DefaultRegisterer.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name:        "incidentd_up",
			Help:        "Always 1 while the process is running.",
			ConstLabels: prometheus.Labels{"service": service},
		}, func() float64 { return 1 }))
	})

	return &MetricsServer{
		srv: &http.Server{Addr: addr, Handler: mux},
	}, nil
}

// ListenAndServe blocks serving the metrics endpoint.
func (m *MetricsServer) ListenAndServe() error {
	return m.srv.ListenAndServe()
}

// Shutdown gracefully stops the metrics server.
func (m *MetricsServer) Shutdown(ctx context.Context) error {
	return m.srv.Shutdown(ctx)
}
