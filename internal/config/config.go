package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config keeps runtime settings for the service. It is built once in main
// and passed by reference; nothing reads the environment after Load returns.
type Config struct {
	Addr string

	TelegramToken   string
	WebhookURL      string
	WebhookSecret   string
	SupportGroupURL string
	LarkWebhookURL  string

	DatabaseDSN string

	// SendWelcome controls whether /start sends the welcome text before the
	// country keyboard, or only the keyboard.
	SendWelcome bool

	// PushTime is the daily pick push time as "HH:MM" (server local time).
	// Empty disables the push job.
	PushTime    string
	OffsetsFile string

	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables with sane defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ADDR", ":8080")
	v.SetDefault("DATABASE_URL", "supportbot.db")
	v.SetDefault("SEND_WELCOME", true)
	v.SetDefault("TZ_OFFSETS_FILE", "tzoffsets.json")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")

	cfg := &Config{
		Addr:            strings.TrimSpace(v.GetString("ADDR")),
		TelegramToken:   strings.TrimSpace(v.GetString("TELEGRAM_BOT_TOKEN")),
		WebhookURL:      strings.TrimSpace(v.GetString("TELEGRAM_WEBHOOK_URL")),
		WebhookSecret:   strings.TrimSpace(v.GetString("TELEGRAM_WEBHOOK_SECRET")),
		SupportGroupURL: strings.TrimSpace(v.GetString("SUPPORT_GROUP_URL")),
		LarkWebhookURL:  strings.TrimSpace(v.GetString("LARK_BOT_WEBHOOK_URL")),
		DatabaseDSN:     strings.TrimSpace(v.GetString("DATABASE_URL")),
		SendWelcome:     v.GetBool("SEND_WELCOME"),
		PushTime:        strings.TrimSpace(v.GetString("PUSH_TIME")),
		OffsetsFile:     strings.TrimSpace(v.GetString("TZ_OFFSETS_FILE")),
		LogLevel:        strings.TrimSpace(v.GetString("LOG_LEVEL")),
		LogFormat:       strings.TrimSpace(v.GetString("LOG_FORMAT")),
	}

	// The bot token is deliberately not required: /health reports whether it
	// is configured, and outbound sends skip themselves when it is missing.
	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DATABASE_URL must not be empty")
	}
	return cfg, nil
}
