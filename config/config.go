// Package config holds the runtime settings of the quote bot.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"devisbot/services"
)

// ErrMissingWebhookSecret is returned by Validate when no webhook secret is
// configured.
var ErrMissingWebhookSecret = errors.New("config: webhook secret is missing (set --webhook-secret or DEVIS_WEBHOOK_SECRET)")

// Config holds the settings read from flags and environment.
type Config struct {
	// WebhookSecret must match the X-Telegram-Bot-Api-Secret-Token header
	// sent by Telegram with every update.
	WebhookSecret string
	// Trigger is the word a message must start with to be formatted.
	Trigger string
}

// RegisterFlags binds the settings to fs. Environment variables provide
// the defaults.
func (c *Config) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.WebhookSecret, "webhook-secret", os.Getenv("DEVIS_WEBHOOK_SECRET"),
		"secret token expected on Telegram webhook calls")
	fs.StringVar(&c.Trigger, "trigger", envOr("DEVIS_TRIGGER", services.DefaultTrigger),
		"word opening a quote message; empty formats every message")
}

// Validate checks that the required settings are present.
func (c *Config) Validate() error {
	c.WebhookSecret = strings.TrimSpace(c.WebhookSecret)
	c.Trigger = strings.TrimSpace(c.Trigger)
	if c.WebhookSecret == "" {
		return ErrMissingWebhookSecret
	}
	return nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
