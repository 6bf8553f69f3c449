// Command server runs the dispatch backend: the REST control surface used
// by the operations dashboard plus the Telegram bot that field technicians
// register and receive order offers through.
//
//	@title                      Smart Dispatcher API
//	@version                    1.0
//	@description                Field-service dispatch backend: technician registration and approval, order assignment with Telegram offers, guarantee claims, and dashboard statistics.
//	@BasePath                   /api
//	@schemes                    http https
//	@contact.name               Smart Dispatcher
//	@license.name               MIT
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/arestitans/smart-dispatcher/docs"
	"github.com/arestitans/smart-dispatcher/internal/bot"
	"github.com/arestitans/smart-dispatcher/internal/config"
	httpapi "github.com/arestitans/smart-dispatcher/internal/http"
	"github.com/arestitans/smart-dispatcher/internal/mock"
	"github.com/arestitans/smart-dispatcher/internal/notify"
	"github.com/arestitans/smart-dispatcher/internal/observability"
	"github.com/arestitans/smart-dispatcher/internal/orders"
	"github.com/arestitans/smart-dispatcher/internal/registry"
	"github.com/arestitans/smart-dispatcher/internal/services"
	"github.com/arestitans/smart-dispatcher/internal/sysutil"
)

// version is stamped at build time via -ldflags.
var version = "dev"

// discardSender satisfies notify.Sender when no bot token is configured.
// Deliveries are logged and reported as failed so callers see honest
// "notified: false" results instead of silent success.
type discardSender struct {
	log zerolog.Logger
}

func (d discardSender) Send(chatID int64, text string) error {
	d.log.Debug().Int64("chat_id", chatID).Msg("bot disabled, dropping message")
	return errBotDisabled
}

func (d discardSender) SendButtons(chatID int64, text string, rows [][]notify.Button) error {
	d.log.Debug().Int64("chat_id", chatID).Msg("bot disabled, dropping message")
	return errBotDisabled
}

var errBotDisabled = errors.New("telegram bot disabled")

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	logger := log.With().Str("service", cfg.OTEL.ServiceName).Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		logger.Fatal().Err(err).Msg("otel setup failed")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("otel shutdown failed")
		}
	}()

	// State lives in memory for the process lifetime.
	store := registry.NewStore()
	orderStore := orders.NewStore()
	claimStore := orders.NewClaimStore()

	// Seed sample data so the dashboard has something to show on first boot.
	orderStore.Seed(mock.Orders(cfg.Seed.Orders, store.Technicians()))
	claimStore.SeedClaims(mock.Claims(cfg.Seed.Claims, store.Technicians()))

	// Telegram transport, or a logging stub when no token is configured.
	var sender notify.Sender
	var tg *bot.Telegram
	if cfg.Telegram.Enabled() {
		tg, err = bot.NewTelegram(cfg.Telegram.BotToken, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("telegram connect failed")
		}
		sender = tg
	} else {
		logger.Warn().Msg("TELEGRAM_BOT_TOKEN not set, notifications disabled")
		sender = discardSender{log: logger}
	}

	disp := notify.NewDispatcher(sender, cfg.Telegram.AdminChatIDs, cfg.Telegram.SupervisorChatIDs, logger)

	if tg != nil {
		regSvc := services.NewRegistrationService(store)
		router := bot.NewRouter(regSvc, store, disp, logger)
		go tg.Run(ctx, router)
	}

	// Stale-order watchdog.
	monitor := &notify.Monitor{
		Source:     orderStore.Snapshot,
		Dispatcher: disp,
		Interval:   cfg.Monitor.CheckInterval,
		Threshold:  cfg.Monitor.StaleThreshold,
		Log:        logger,
	}
	go monitor.Run(ctx)

	// HTTP transport.
	gin.SetMode(cfg.GinMode)
	engine := gin.New()
	httpapi.RegisterRoutes(engine, httpapi.Dependencies{
		Registry: store,
		Orders:   orderStore,
		Claims:   claimStore,
		Dispatch: disp,
	}, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Str("version", version).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
