package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/order-processor/internal/config"
	"github.com/SergeyBogomolovv/order-processor/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"
)

type application struct {
	logger *slog.Logger

	router    chi.Router
	httpSrv   *http.Server
	consumers []Consumer
	starters  []Starter
	closers   []Closer

	serveErr chan error
}

func New(logger *slog.Logger, cfg config.Config, reg *prometheus.Registry) *application {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics(reg))
	router.Use(chimw.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Cors.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut},
	}))

	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	router.Get("/swagger/*", httpSwagger.Handler())

	httpSrv := &http.Server{
		Handler:           router,
		Addr:              net.JoinHostPort(cfg.Http.Host, cfg.Http.Port),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &application{
		logger:   logger.With(slog.String("component", "app")),
		httpSrv:  httpSrv,
		router:   router,
		serveErr: make(chan error, 1),
	}
}

type HTTPHandler interface {
	Init(r chi.Router)
}

func (a *application) SetHTTPHandlers(handlers ...HTTPHandler) {
	for _, h := range handlers {
		h.Init(a.router)
	}
}

type Consumer interface {
	Consume(ctx context.Context)
	Close() error
}

func (a *application) SetConsumers(consumers ...Consumer) {
	a.consumers = append(a.consumers, consumers...)
}

// Starter launches a background component bound to the application context.
type Starter interface {
	Start(ctx context.Context) error
}

func (a *application) SetStarters(starters ...Starter) {
	a.starters = append(a.starters, starters...)
}

type Closer interface {
	Close() error
}

// SetClosers registers components closed on Stop after the server and consumers.
func (a *application) SetClosers(closers ...Closer) {
	a.closers = append(a.closers, closers...)
}

// Start runs every starter, then the consumers and the HTTP server.
func (a *application) Start(ctx context.Context) error {
	// starters keep ctx, an errgroup context would be cancelled by Wait
	var g errgroup.Group
	for _, s := range a.starters {
		g.Go(func() error {
			return s.Start(ctx)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to start components: %w", err)
	}

	for _, c := range a.consumers {
		go c.Consume(ctx)
	}

	go a.startServer()

	a.logger.Info("application started")
	return nil
}

// ServeErr reports a fatal HTTP server error.
func (a *application) ServeErr() <-chan error {
	return a.serveErr
}

func (a *application) startServer() {
	a.logger.Info("starting http server", slog.String("addr", a.httpSrv.Addr))
	if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		a.logger.Error("http server failed", slog.Any("error", err))
		a.serveErr <- err
	}
}

const gracefulShutdownTimeout = 5 * time.Second

func (a *application) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.httpSrv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to shutdown http server: %w", err))
	}

	for _, c := range a.consumers {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close consumer: %w", err))
		}
	}

	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close component: %w", err))
		}
	}

	a.logger.Info("application stopped")
	return errors.Join(errs...)
}
