package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/shop_api/internal/config"
	"github.com/Skotchmaster/shop_api/internal/db"
	"github.com/Skotchmaster/shop_api/internal/es"
	"github.com/Skotchmaster/shop_api/internal/events"
	"github.com/Skotchmaster/shop_api/internal/httpserver"
	"github.com/Skotchmaster/shop_api/internal/logging"
	loggingmw "github.com/Skotchmaster/shop_api/internal/middleware/logging"
	"github.com/Skotchmaster/shop_api/internal/mykafka"
	"github.com/Skotchmaster/shop_api/internal/rabbitmq"
	"github.com/Skotchmaster/shop_api/internal/repo"
	"github.com/Skotchmaster/shop_api/internal/service"
)

func main() {
	cfg := config.LoadConfig()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		cancel()
		log.Fatalf("db open: %v", err)
	}
	if err := db.Migrate(ctx, gdb); err != nil {
		cancel()
		log.Fatalf("db migrate: %v", err)
	}
	cancel()

	var (
		publishers []events.Publisher
		closers    []func() error
	)

	if len(cfg.KafkaBrokers) > 0 {
		prod, err := mykafka.NewProducer(cfg.KafkaBrokers, []string{events.TopicProduct, events.TopicCart, events.TopicOrder})
		if err != nil {
			log.Fatalf("kafka producer: %v", err)
		}
		publishers = append(publishers, prod)
		closers = append(closers, prod.Close)
		logger.Info("kafka events enabled", "brokers", cfg.KafkaBrokers)
	}

	if cfg.RabbitMQURL != "" {
		pub, err := rabbitmq.Dial(cfg.RabbitMQURL, cfg.RabbitMQQueue)
		if err != nil {
			log.Fatalf("rabbitmq: %v", err)
		}
		publishers = append(publishers, events.OnlyTopics(pub, events.TopicOrder))
		closers = append(closers, pub.Close)
		logger.Info("warehouse hand-off enabled", "queue", cfg.RabbitMQQueue)
	}

	var publisher events.Publisher = events.Nop{}
	if len(publishers) > 0 {
		publisher = events.Fanout(publishers)
	}

	var index service.ProductIndex
	if cfg.ESURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, err := es.NewClient(ctx, cfg)
		cancel()
		if err != nil {
			log.Fatalf("elasticsearch: %v", err)
		}
		index = es.NewProductIndex(client, cfg.ESIndex)
	}

	r := repo.New(gdb)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpserver.ErrorHandler
	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.Secure())
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		DB:             gdb,
		CatalogHandler: &httpserver.CatalogHTTP{Svc: &service.CatalogService{Repo: r, Publisher: publisher, Index: index}},
		OrderHandler:   &httpserver.OrderHTTP{Svc: &service.OrderService{Repo: r, Publisher: publisher}},
		CartHandler:    &httpserver.CartHTTP{Svc: &service.CartService{Repo: r, Publisher: publisher}},
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", srv.Addr, "db_driver", cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}

	for _, c := range closers {
		if err := c(); err != nil {
			logger.Error("publisher close", "error", err)
		}
	}

	if err := db.Close(gdb); err != nil {
		logger.Error("db close", "error", err)
	}

	logger.Info("shutdown complete")
}
