// Package api exposes the operational HTTP server of the backend: metrics,
// health and profiling. The server carries no business routes.
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"mca/internal/config"
	"mca/pkg/controller"
)

const timeoutBody = `{"error":"request timed out"}`

// Options holds configuration for the HTTP server. Zero durations fall back
// to the net/http defaults.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	// RequestTimeout bounds every handler except the profiler, whose CPU
	// profiles and traces run for as long as the client asks.
	RequestTimeout time.Duration
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string

	// Registerer and Gatherer back the metrics endpoint. They default to the
	// Prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
	}
}

// Deps are the dependencies checked by the health endpoint.
type Deps struct {
	Storage controller.Pinger
}

// NewServer wires up and returns a configured *http.Server. It registers the
// OpenTelemetry Prometheus exporter as the global meter provider, so otel
// instruments of the services show up next to the native collectors.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	if opts.MetricsPath == "" {
		opts.MetricsPath = "/metrics"
	}

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(opts.Registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)))

	bounded := http.NewServeMux()
	bounded.Handle(opts.MetricsPath, promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	bounded.Handle("/healthz", controller.Health(deps.Storage, opts.RequestTimeout))

	var handler http.Handler = bounded
	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(bounded, opts.RequestTimeout, timeoutBody)
	}

	mux := http.NewServeMux()
	mux.Handle("/debug/pprof/", http.StripPrefix("/debug/pprof", controller.PprofMux()))
	mux.Handle("/", handler)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           controller.WithLogger(mux),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
