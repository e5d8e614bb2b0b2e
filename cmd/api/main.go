package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/example/bookshop/internal/api"
	"github.com/example/bookshop/internal/auth"
	"github.com/example/bookshop/internal/catalog"
	"github.com/example/bookshop/internal/config"
	"github.com/example/bookshop/internal/domain/cart"
	"github.com/example/bookshop/internal/domain/sales"
	"github.com/example/bookshop/internal/infrastructure/kafka"
	"github.com/example/bookshop/internal/infrastructure/store"
	"github.com/example/bookshop/internal/notification"
	"github.com/example/bookshop/internal/projection"
	"github.com/example/bookshop/internal/query"
	"github.com/example/bookshop/internal/recommend"
	"github.com/example/bookshop/internal/storefront"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("[API] invalid configuration")
	}

	passwordHash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		logrus.WithError(err).Fatal("[API] invalid admin password")
	}

	logrus.Info("[API] Bookshop storefront starting")
	logrus.WithField("recommender", cfg.Recommender.BaseURL).Info("[API] recommendation service")

	// Kafka is optional: without brokers, events stay in-process.
	var producer *kafka.Producer
	if cfg.Kafka.Enabled() {
		producer = kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer producer.Close()
		logrus.WithField("brokers", cfg.Kafka.Brokers).Info("[API] publishing events to Kafka")
	}

	eventStore := store.NewEventStore(producer)
	readStore := store.NewReadStore()

	// Notification log and admin read models are fed synchronously
	// from the event store.
	center := notification.NewCenter()
	notifier := notification.NewHandler(center)
	projector := projection.NewProjector(readStore)
	eventStore.Subscribe(notifier.Apply)
	eventStore.Subscribe(projector.Apply)

	ledger := cart.NewLedger(eventStore)
	aggregator := sales.NewAggregator(eventStore)
	inventory := catalog.NewInventory()
	generator := recommend.NewHTTPGenerator(cfg.Recommender.BaseURL)
	ingestor := recommend.NewIngestor(generator, recommend.NewSynthesizer(nil))

	controller := storefront.NewController(ingestor, ledger, aggregator, center, inventory)

	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.TokenExpiry)
	queryHandler := query.NewHandler(readStore)

	handlers := api.NewHandlers(controller, center, queryHandler)
	authHandlers := api.NewAuthHandlers(controller, jwtService, passwordHash)
	router := api.NewRouter(api.RouterConfig{
		Handlers:     handlers,
		AuthHandlers: authHandlers,
		JWTService:   jwtService,
	})

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logrus.WithField("addr", cfg.Server.Addr).Info("[API] server started")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("[API] server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logrus.Info("[API] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
}
