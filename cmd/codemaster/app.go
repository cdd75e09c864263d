package main

import (
	"context"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"codemaster/internal/catalog"
	"codemaster/internal/config"
	"codemaster/internal/errors"
	"codemaster/internal/generation"
	"codemaster/internal/logging"
	"codemaster/internal/metrics"
	"codemaster/internal/resolver"
	"codemaster/internal/session"
)

// app is the process-wide wiring: one generation client shared by every flow.
type app struct {
	cfg      *config.Config
	metrics  *metrics.Metrics
	client   *generation.Client
	resolver *resolver.Resolver
	state    *session.State
}

// newClient builds the generation client. Tests replace it with one backed by
// a scripted generator.
var newClient = func(ctx context.Context, opts generation.Options) (*generation.Client, error) {
	return generation.New(ctx, opts)
}

// newApp wires the app from c. With requireGeneration false a missing API key
// is tolerated: the resolver then answers from the catalog only.
func newApp(ctx context.Context, c *config.Config, requireGeneration bool) (*app, error) {
	a := &app{cfg: c, metrics: metrics.Default()}

	if c.Generation.APIKey == "" && !requireGeneration {
		logging.BootWarn("no API key configured, catalog-only mode")
	} else {
		if err := c.ValidateForGeneration(); err != nil {
			return nil, err
		}
		opts := generation.OptionsFromConfig(c)
		opts.Metrics = a.metrics
		client, err := newClient(ctx, opts)
		if err != nil {
			return nil, err
		}
		a.client = client
		logging.Boot("generation client ready: model=%s send_history=%t", client.Model(), client.SendsHistory())
	}

	deps := session.Deps{Metrics: a.metrics}
	if a.client != nil {
		a.resolver = resolver.New(catalog.Default(), a.client, a.metrics)
		deps.Roadmaps = a.client
		deps.Tutor = a.client
	} else {
		a.resolver = resolver.New(catalog.Default(), nil, a.metrics)
	}
	deps.Resolver = a.resolver
	a.state = session.NewState(deps)
	return a, nil
}

var metricsServer *http.Server

// startMetricsServer serves /metrics on addr until stopMetricsServer.
func startMetricsServer(addr string) error {
	if addr == "" {
		return nil
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "metrics listener on %s", addr)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	metricsServer = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          zap.NewStdLog(logging.Get(logging.CategoryBoot).Zap()),
	}

	go func(srv *http.Server) {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Get(logging.CategoryBoot).Error("metrics server stopped: %v", err)
		}
	}(metricsServer)
	logging.Boot("metrics listening on %s", ln.Addr())
	return nil
}

func stopMetricsServer() {
	if metricsServer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = metricsServer.Shutdown(ctx)
	metricsServer = nil
}
