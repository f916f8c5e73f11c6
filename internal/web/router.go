package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matchpicks/supportbot/internal/bot"
	"github.com/matchpicks/supportbot/internal/config"
	"github.com/matchpicks/supportbot/internal/handlers"
)

func Router(cfg *config.Config, d *bot.Dispatcher) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/start", handlers.Start())
	r.Get("/health", handlers.Health(cfg))
	r.Post("/webhooks/telegram", handlers.TelegramWebhook(cfg, d))
	r.Get("/qr.png", handlers.QR(cfg))

	return r
}
