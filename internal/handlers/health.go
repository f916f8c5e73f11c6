package handlers

import (
	"net/http"

	"github.com/matchpicks/supportbot/internal/config"
	"github.com/matchpicks/supportbot/internal/db"
)

// Health reports whether the bot token is configured and the store reachable.
func Health(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]bool{
			"telegram_token_configured": cfg.TelegramToken != "",
			"db_connected":              db.Ping(),
		})
	}
}
