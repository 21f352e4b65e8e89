package main

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"devisbot/collections"
	"devisbot/config"
	"devisbot/handlers"
	"devisbot/services"
)

func main() {
	app := pocketbase.New()

	var cfg config.Config
	cfg.RegisterFlags(app.RootCmd.PersistentFlags())

	// Create the vocabulary collections, seed them and load them once.
	var formatter services.Formatter
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		if err := cfg.Validate(); err != nil {
			return err
		}

		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: vocabulary seed failed: %v", err)
		}

		vocab, err := collections.LoadVocabulary(app)
		if err != nil {
			return fmt.Errorf("load vocabulary: %w", err)
		}
		rooms, surfaces := vocab.Len()
		log.Printf("Vocabulary loaded: %d rooms, %d surfaces, trigger %q", rooms, surfaces, cfg.Trigger)

		formatter = services.Formatter{Vocabulary: vocab, Trigger: cfg.Trigger}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Calculator ───────────────────────────────────────────
		se.Router.GET("/{$}", handlers.HandleDevisForm())
		se.Router.POST("/devis", handlers.HandleDevisFormat(formatter))
		se.Router.POST("/devis.txt", handlers.HandleDevisText(formatter))

		// ── Exports ──────────────────────────────────────────────
		se.Router.POST("/devis/export/excel", handlers.HandleDevisExportExcel(formatter))
		se.Router.POST("/devis/export/pdf", handlers.HandleDevisExportPDF(formatter))

		// ── Addresses ────────────────────────────────────────────
		se.Router.POST("/adresses", handlers.HandleAddressLinks())

		// ── Telegram ─────────────────────────────────────────────
		se.Router.POST("/telegram/webhook", handlers.HandleTelegramWebhook(formatter, cfg.WebhookSecret))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
