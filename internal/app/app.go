// Package app wires configuration into clients, the interaction service and
// the audit sink. Both binaries build on it.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"complyhub/internal/audit"
	"complyhub/internal/interactions"
	"complyhub/internal/platform/config"
	"complyhub/internal/platform/httpserver"
	httptransport "complyhub/internal/transport/http"
	"complyhub/pkg/companylookup"
	"complyhub/pkg/platform/apiclient"
	"complyhub/pkg/platform/metrics"
	"complyhub/pkg/screening"
)

// App holds the wired components.
type App struct {
	cfg    config.Server
	logger *slog.Logger

	Registry  *prometheus.Registry
	Metrics   *metrics.Metrics
	Companies *companylookup.Client
	Screening *screening.Client
	Service   *interactions.Service

	kafka  *audit.KafkaPublisher
	worker *audit.Worker
}

type Option func(o *options)

type options struct {
	doer apiclient.Doer
}

// WithDoer replaces the outbound transport of both clients.
func WithDoer(d apiclient.Doer) Option {
	return func(o *options) {
		o.doer = d
	}
}

// New builds the application. Kafka is contacted lazily, so New only fails on
// invalid configuration.
func New(cfg config.Server, logger *slog.Logger, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	clientOpts := []apiclient.Option{apiclient.WithLogger(logger), apiclient.WithMetrics(m)}
	if o.doer != nil {
		clientOpts = append(clientOpts, apiclient.WithDoer(o.doer))
	}

	companies, err := companylookup.New(companylookup.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.CompanyLookupTimeout,
	}, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("company lookup client: %w", err)
	}
	screener, err := screening.New(screening.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.ScreeningTimeout,
	}, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("screening client: %w", err)
	}

	a := &App{
		cfg:       cfg,
		logger:    logger,
		Registry:  reg,
		Metrics:   m,
		Companies: companies,
		Screening: screener,
	}

	publisher, err := a.auditPublisher()
	if err != nil {
		return nil, err
	}

	registry := interactions.NewRegistry()
	if err := registry.Register(interactions.Node{
		Descriptor: interactions.CompanyLookupDescriptor(),
		Runner:     interactions.NewCompanyLookupRunner(companies),
	}); err != nil {
		return nil, err
	}
	if err := registry.Register(interactions.Node{
		Descriptor: interactions.AMLScreeningDescriptor(),
		Runner:     interactions.NewAMLScreeningRunner(screener),
	}); err != nil {
		return nil, err
	}
	if err := registry.Register(interactions.Node{
		Descriptor: interactions.ProofOfAddressDescriptor(),
		Runner:     interactions.NewProofOfAddressRunner(),
	}); err != nil {
		return nil, err
	}

	a.Service = interactions.NewService(registry,
		interactions.WithLogger(logger),
		interactions.WithMetrics(m),
		interactions.WithAuditPublisher(publisher),
	)
	return a, nil
}

// auditPublisher picks Kafka behind a queue when brokers are configured and
// an in-memory sink otherwise.
func (a *App) auditPublisher() (audit.Publisher, error) {
	if len(a.cfg.AuditKafkaBrokers) == 0 {
		return audit.NewMemoryPublisher(), nil
	}
	kafka, err := audit.NewKafkaPublisher(a.cfg.AuditKafkaBrokers, a.cfg.AuditTopic)
	if err != nil {
		return nil, err
	}
	queue := audit.NewQueue(a.cfg.AuditQueueSize)
	a.kafka = kafka
	a.worker = audit.NewWorker(kafka, queue.Inbox(), a.logger)
	return queue, nil
}

// Handler returns the HTTP router.
func (a *App) Handler() http.Handler {
	return httptransport.NewRouter(httptransport.NewHandler(a.Service, a.logger), a.Registry)
}

// Serve runs the HTTP server and the audit worker until ctx is done, then
// shuts both down.
func (a *App) Serve(ctx context.Context) error {
	srv := httpserver.New(a.cfg.Addr, a.Handler())

	if a.kafka != nil {
		ensureCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		if err := a.kafka.EnsureTopic(ensureCtx, 1, 1); err != nil {
			a.logger.WarnContext(ctx, "could not ensure audit topic", "topic", a.cfg.AuditTopic, "error", err)
		}
		cancel()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.InfoContext(ctx, "starting complyhub", "addr", a.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})
	if a.worker != nil {
		g.Go(func() error {
			// Run only returns once ctx is done.
			_ = a.worker.Run(ctx)
			return nil
		})
	}
	return g.Wait()
}

// Close releases the broker connection.
func (a *App) Close() {
	if a.kafka != nil {
		a.kafka.Close()
	}
}
