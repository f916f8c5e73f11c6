package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/matchpicks/supportbot/internal/bot"
	"github.com/matchpicks/supportbot/internal/config"
)

// TelegramWebhook accepts one update per call. It always acknowledges with
// {"status":"ok"}: every internal failure is handled (logged) downstream, so
// Telegram never sees an error and never re-delivers.
func TelegramWebhook(cfg *config.Config, d *bot.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Optional shared-secret check: /webhooks/telegram?secret=...
		if cfg.WebhookSecret != "" && r.URL.Query().Get("secret") != cfg.WebhookSecret {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		defer r.Body.Close()
		b, _ := io.ReadAll(r.Body)

		var up bot.Update
		if err := json.Unmarshal(b, &up); err != nil {
			slog.Warn("webhook: undecodable update", "err", err)
		} else {
			d.Handle(&up)
		}

		writeJSON(w, map[string]string{"status": "ok"})
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(v)
}
