package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/example/bookshop/internal/config"
	"github.com/example/bookshop/internal/infrastructure/kafka"
	"github.com/example/bookshop/internal/notification"
)

// The notifier tails the event topic and mirrors cart and sale events
// into its own notification log, so an operator can watch storefront
// activity without the API process.
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("[Notifier] invalid configuration")
	}
	if !cfg.Kafka.Enabled() {
		logrus.Fatal("[Notifier] KAFKA_BROKERS is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	center := notification.NewCenter()
	handler := notification.NewHandler(center)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.GroupID)
	defer consumer.Close()

	go func() {
		logrus.WithField("brokers", cfg.Kafka.Brokers).Info("[Notifier] consuming events")
		if err := consumer.Consume(ctx, handler.HandleEvent); err != nil && ctx.Err() == nil {
			logrus.WithError(err).Error("[Notifier] consumer stopped")
		}
	}()

	// Periodically report the freshest entry so the log is visible
	// without an API.
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				all := center.All()
				if len(all) == 0 {
					continue
				}
				logrus.WithFields(logrus.Fields{
					"latest": all[0].Message,
					"unread": center.UnreadCount(),
				}).Info("[Notifier] notification log")
			}
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logrus.Info("[Notifier] shutting down")
	cancel()
}
