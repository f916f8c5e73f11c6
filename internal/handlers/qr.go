package handlers

import (
	"net/http"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/matchpicks/supportbot/internal/config"
)

// QR renders the support-group URL as a PNG so agents can drop a scannable
// invite into offline channels. 404 when no group is configured.
func QR(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cfg.SupportGroupURL == "" {
			http.NotFound(w, r)
			return
		}
		png, err := qrcode.Encode(cfg.SupportGroupURL, qrcode.Medium, 256)
		if err != nil {
			http.Error(w, "failed to generate qr", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(png)
	}
}
