package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"product-catalog/internal/catalog"
	cataloghttp "product-catalog/internal/catalog/http"
	"product-catalog/internal/catalog/messaging"
	"product-catalog/internal/catalog/repository"
	"product-catalog/internal/catalog/service"
	"product-catalog/internal/config"

	_ "product-catalog/docs"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	amqp "github.com/rabbitmq/amqp091-go"
	"google.golang.org/api/option"
)

const (
	metricCreatedTotal = "products_created_total"
	metricUpdatedTotal = "products_updated_total"
	metricDeletedTotal = "products_deleted_total"
)

// @title        Product Catalog API
// @version      1.0
// @description  CRUD HTTP API for a Firestore-backed product catalog.
// @host         localhost:5000
// @BasePath     /
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.LoadCatalog()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	client, err := newFirestoreClient(ctx, cfg.CredentialsFile)
	if err != nil {
		logger.Error("connect firestore", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	var publisher service.Publisher = messaging.NoopPublisher{}
	if cfg.RabbitMQURL != "" {
		rabbitConn, err := amqp.Dial(cfg.RabbitMQURL)
		if err != nil {
			logger.Error("connect rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitConn.Close()

		rabbitPublisher, err := messaging.NewRabbitPublisher(rabbitConn, catalog.EventsQueue)
		if err != nil {
			logger.Error("init publisher", "error", err)
			os.Exit(1)
		}
		defer rabbitPublisher.Close()
		publisher = rabbitPublisher
	}

	createdCounter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: metricCreatedTotal,
		Help: "Total number of products created",
	})
	updatedCounter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: metricUpdatedTotal,
		Help: "Total number of products updated",
	})
	deletedCounter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: metricDeletedTotal,
		Help: "Total number of products deleted",
	})
	prometheus.MustRegister(createdCounter, updatedCounter, deletedCounter)

	repo := repository.NewFirestore(client, cfg.Collection)
	svc := service.New(repo, publisher, logger, createdCounter, updatedCounter, deletedCounter)
	handler := cataloghttp.NewHandler(svc)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cataloghttp.RequestIDMiddleware())
	router.Use(cataloghttp.AccessLogMiddleware(logger))
	cataloghttp.RegisterRoutes(router, handler, repo, cfg.AllowedOrigin, cfg.ImagesDir)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("catalog service started", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-runCtx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("http server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	logger.Info("catalog service stopped")
}

// newFirestoreClient authenticates against the store with the credential
// file. Any failure here is fatal: the process must not serve without a
// working store connection.
func newFirestoreClient(ctx context.Context, credentialsFile string) (*firestore.Client, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, err
	}
	return app.Firestore(ctx)
}
