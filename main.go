package main

import (
	"context"

	"sjsage522/pricetracker/config"
	"sjsage522/pricetracker/internal/scraper"
	"sjsage522/pricetracker/logger"
	"sjsage522/pricetracker/services/notifier"
	"sjsage522/pricetracker/services/tracker"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load and validate configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("environment", cfg.Environment).
		Str("url", cfg.TargetURL).
		Msg("Starting price tracker")

	result, err := run(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Price check failed")
	}

	log.Info().
		Bool("qualified", result.Qualified).
		Bool("notified", result.Notified).
		Msg("Price check complete")
}

// run wires the scraper and notifier from cfg and performs one price check
func run(ctx context.Context, cfg *config.Config) (tracker.Result, error) {
	s := scraper.NewAmazonScraper(cfg.TargetURL, cfg.RequestHeaders())

	n := notifier.NewEmailNotifier(
		notifier.SMTPSettings{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
		},
		cfg.EmailSender,
		cfg.EmailRecipients,
		cfg.EmailContentType,
	)

	return tracker.NewTracker(s, n, cfg.TargetPrice).Run(ctx)
}
