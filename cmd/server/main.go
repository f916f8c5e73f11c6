package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/matchpicks/supportbot/internal/agent"
	"github.com/matchpicks/supportbot/internal/ai"
	"github.com/matchpicks/supportbot/internal/bot"
	"github.com/matchpicks/supportbot/internal/config"
	"github.com/matchpicks/supportbot/internal/db"
	"github.com/matchpicks/supportbot/internal/logutil"
	"github.com/matchpicks/supportbot/internal/push"
	"github.com/matchpicks/supportbot/internal/store"
	"github.com/matchpicks/supportbot/internal/web"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	logger, err := logutil.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		slog.Error("logger", "err", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	if err := db.Init(cfg.DatabaseDSN); err != nil {
		logger.Error("db init", "err", err)
		os.Exit(1)
	}

	users := store.NewUsers(db.Conn())
	client := bot.NewClient(cfg.TelegramToken)
	forwarder := agent.NewLarkForwarder(cfg.LarkWebhookURL)
	generator := ai.Unconfigured{}

	dispatcher := bot.NewDispatcher(client, users, generator, forwarder, cfg, logger)

	scheduler := push.NewScheduler(users, client, generator, config.LoadOffsets(cfg.OffsetsFile), logger)
	if err := scheduler.Start(cfg.PushTime); err != nil {
		logger.Error("push scheduler", "err", err)
		os.Exit(1)
	}
	defer scheduler.Stop()

	// Register the webhook with Telegram; a failure only costs inbound
	// traffic until the next restart, so it is not fatal.
	go func() {
		regCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
		defer cancel()
		if err := client.SetWebhook(regCtx, cfg.WebhookURL); err != nil {
			logger.Error("set webhook", "err", err)
		}
	}()

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: web.Router(cfg, dispatcher),
	}
	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
	}()

	logger.Info("supportbot listening", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server", "err", err)
		os.Exit(1)
	}

	// Let in-flight background actions drain before exiting.
	dispatcher.Wait()
	logger.Info("shutdown complete")
}
