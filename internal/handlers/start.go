package handlers

import (
	"net/http"

	"github.com/matchpicks/supportbot/internal/bot"
)

// Start serves the static welcome payload shown on the landing check.
func Start() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"message": bot.WelcomeText()})
	}
}
