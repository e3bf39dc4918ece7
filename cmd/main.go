package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/order-processor/docs"
	"github.com/SergeyBogomolovv/order-processor/internal/app"
	"github.com/SergeyBogomolovv/order-processor/internal/config"
	"github.com/SergeyBogomolovv/order-processor/internal/entities"
	"github.com/SergeyBogomolovv/order-processor/internal/handler"
	"github.com/SergeyBogomolovv/order-processor/internal/notification"
	"github.com/SergeyBogomolovv/order-processor/internal/observer"
	"github.com/SergeyBogomolovv/order-processor/internal/processor"
	"github.com/SergeyBogomolovv/order-processor/internal/service"
	"github.com/SergeyBogomolovv/order-processor/internal/store"
	"github.com/SergeyBogomolovv/order-processor/pkg/cache"
	"github.com/SergeyBogomolovv/order-processor/pkg/trm"
	"github.com/SergeyBogomolovv/order-processor/pkg/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/joho/godotenv"
)

// @title           Order Processor API
// @version         1.0
// @description     HTTP API for pricing and placing orders
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	handler.RegisterMetrics(reg)
	notification.RegisterMetrics(reg)

	memStore := store.NewMemory()
	if conf.SeedFile != "" {
		panicIfErr("failed to load seed", memStore.LoadSeedFile(conf.SeedFile))
		logger.Info("seed loaded", slog.String("file", conf.SeedFile))
	}

	dispatcher := notification.NewDispatcher(logger, newTransport(logger, conf), conf.Notifications.QueueSize, utils.RetryConfig{
		MaxAttempts:  conf.Notifications.RetryAttempts,
		InitialDelay: conf.Notifications.RetryInitialDelay,
		MaxDelay:     conf.Notifications.RetryMaxDelay,
		Multiplier:   2,
	})

	orderProcessor := processor.New(
		processor.SystemClock,
		observer.Multi(observer.NewLogger(logger), observer.NewMetrics(reg)),
		dispatcher,
	)

	txManager := trm.NewManager()
	cache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	orderService := service.NewOrderService(logger, txManager, orderProcessor, memStore, cache, entities.PricingConfig{
		TaxEnabled: conf.Pricing.TaxEnabled,
	})

	httpHandler := handler.NewHTTPHandler(logger, orderService)

	app := app.New(logger, conf, reg)

	app.SetHTTPHandlers(httpHandler)
	if conf.Kafka.Enabled {
		app.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, orderService))
	}
	app.SetStarters(cache, dispatcher)
	app.SetClosers(dispatcher)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	select {
	case <-ctx.Done():
	case err := <-app.ServeErr():
		logger.Error("shutting down after server failure", slog.Any("error", err))
	}
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func newTransport(logger *slog.Logger, conf config.Config) notification.Transport {
	if conf.Notifications.Transport == "kafka" {
		return notification.NewKafkaTransport(conf.Kafka)
	}
	return notification.NewLogTransport(logger)
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
