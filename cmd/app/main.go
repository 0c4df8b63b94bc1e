package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avelov/flightdesk/config"
	"github.com/avelov/flightdesk/internal/bootstrap"
	"github.com/avelov/flightdesk/internal/cache"
	"github.com/avelov/flightdesk/internal/credentials"
	"github.com/avelov/flightdesk/internal/kafka"
	"github.com/avelov/flightdesk/internal/repository"
	"github.com/avelov/flightdesk/internal/service/account"
	"github.com/avelov/flightdesk/internal/service/booking"
	"github.com/avelov/flightdesk/internal/service/flights"
	"github.com/avelov/flightdesk/internal/service/profile"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.FlightsTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	flightRepo := repository.NewFlightRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	profileRepo := repository.NewProfileRepository(pool)
	credStore := credentials.NewStore(userRepo)

	flightService := flights.NewFlightService(flightRepo, redisCache)
	bookingService := booking.NewBookingService(
		bookingRepo,
		flightRepo,
		logger,
		booking.WithProducer(producer, cfg.Kafka.NotificationsTopic),
	)
	accountService := account.NewAccountService(
		credStore,
		logger,
		account.WithProducer(producer, cfg.Kafka.NotificationsTopic),
	)
	profileService := profile.NewProfileService(profileRepo, userRepo, bookingRepo)

	if err := bootstrap.Run(ctx, cfg, flightService, bookingService, accountService, profileService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
