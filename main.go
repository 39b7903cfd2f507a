package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Eursukkul/vendor-dashboard/config"
	"github.com/Eursukkul/vendor-dashboard/internal/aggregator"
	"github.com/Eursukkul/vendor-dashboard/internal/consumer"
	"github.com/Eursukkul/vendor-dashboard/internal/handler"
	"github.com/Eursukkul/vendor-dashboard/internal/ingest"
	"github.com/Eursukkul/vendor-dashboard/internal/middleware"
	"github.com/Eursukkul/vendor-dashboard/internal/poller"
	"github.com/Eursukkul/vendor-dashboard/internal/repository"
	"github.com/Eursukkul/vendor-dashboard/internal/service"
	"github.com/Eursukkul/vendor-dashboard/pkg/database"
	"github.com/Eursukkul/vendor-dashboard/pkg/logger"
	"github.com/Eursukkul/vendor-dashboard/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Parse()
	if err != nil {
		bootLog := logger.New("info", false)
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}
	logr := logger.New(cfg.LogLevel, cfg.LogPretty)

	source, err := aggregator.ParseQuoteSource(cfg.QuoteMetrics)
	if err != nil {
		logr.Fatal().Err(err).Msg("invalid QUOTE_METRICS")
	}
	agg := aggregator.New(source)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgresDB(cfg.DSN())
	if err != nil {
		logr.Fatal().Err(err).Msg("failed to open database")
	}

	// RabbitMQ publisher: fan refreshed metrics out to other services
	mqPublisher, err := rabbitmq.NewPublisher(cfg.RabbitURL, logr)
	if err != nil {
		logr.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
	}
	defer mqPublisher.Close()

	// Repositories
	repos := service.Repositories{
		Events:   repository.NewEventRepository(db),
		Guests:   repository.NewGuestRepository(db),
		Quotes:   repository.NewVendorQuoteRepository(db),
		CallLogs: repository.NewVoiceAgentLogRepository(db),
	}

	// Service
	dashboardSvc := service.NewDashboardService(repos, agg,
		service.WithPublisher(mqPublisher),
		service.WithLogger(logr),
	)

	// RabbitMQ consumer: refresh a user's dashboard when the call agent
	// rewrites an event summary
	mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL, logr)
	if err != nil {
		logr.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
	}
	defer mqConsumer.Close()

	msgs, err := mqConsumer.Consume()
	if err != nil {
		logr.Fatal().Err(err).Msg("failed to start consuming")
	}
	consumer.NewEventConsumer(dashboardSvc, logr).Start(ctx, msgs)

	// Poller: keep every tracked dashboard fresh
	refreshPoller, err := poller.Start(ctx, cfg.PollInterval, dashboardSvc.RefreshAll,
		poller.WithImmediate(),
		poller.WithLogger(logr),
	)
	if err != nil {
		logr.Fatal().Err(err).Msg("failed to start poller")
	}

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.Validator = ingest.New()
	e.HTTPErrorHandler = middleware.ErrorHandler(logr)
	httpLog := logger.Component(logr, "HTTP")
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			httpLog.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	handler.NewHealthHandler(refreshPoller, agg).RegisterRoutes(e)
	handler.NewDashboardHandler(dashboardSvc).RegisterRoutes(e)

	go func() {
		logr.Info().Str("port", cfg.ServerPort).Msg("Vendor Dashboard starting")
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	logr.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logr.Error().Err(err).Msg("http shutdown")
	}
	refreshPoller.Cancel()
	if err := refreshPoller.Wait(shutdownCtx); err != nil {
		logr.Error().Err(err).Msg("poller shutdown")
	}
}
