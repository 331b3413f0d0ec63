package tracker

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"sjsage522/pricetracker/internal/scraper"
	"sjsage522/pricetracker/logger"
	trackererrors "sjsage522/pricetracker/pkg/errors"
	"sjsage522/pricetracker/services/notifier"
)

// Result describes the outcome of one price check
type Result struct {
	// Snapshot is nil when the page could not be read
	Snapshot  *scraper.ProductSnapshot
	Qualified bool
	Notified  bool
}

// Tracker runs a single scrape, decide and notify pass
type Tracker struct {
	scraper   scraper.Scraper
	notifier  notifier.Notifier
	threshold decimal.Decimal
	logger    *logger.Logger
}

// NewTracker creates a new tracker
func NewTracker(s scraper.Scraper, n notifier.Notifier, threshold decimal.Decimal) *Tracker {
	return &Tracker{
		scraper:   s,
		notifier:  n,
		threshold: threshold,
		logger:    logger.ForTracker(),
	}
}

// Run checks the product price once. Failing to read the page ends the run
// without an alert and without an error; only fatal errors such as a failed
// delivery are returned.
func (t *Tracker) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	t.logger.Info().
		Str("scraper", t.scraper.GetName()).
		Str("threshold", t.threshold.String()).
		Msg("Starting price check")

	snapshot, err := t.scraper.Scrape(ctx)
	if err != nil {
		var te *trackererrors.TrackerError
		if errors.As(err, &te) && te.IsFatal() {
			return Result{}, err
		}
		t.logFailure(err)
		return Result{}, nil
	}

	result := Result{Snapshot: &snapshot}
	log := t.logger.WithFields(logger.Fields{
		"title":     snapshot.Title,
		"price":     snapshot.PriceAmount.String(),
		"locale":    snapshot.Locale,
		"threshold": t.threshold.String(),
	})

	if !scraper.Qualifies(snapshot.PriceAmount, t.threshold) {
		log.Info().
			Dur("elapsed", time.Since(start)).
			Msg("Price above threshold, no alert sent")
		return result, nil
	}
	result.Qualified = true

	log.Info().Str("display_price", snapshot.DisplayPrice).Msg("Price at or below threshold, sending alert")
	if err := t.notifier.Notify(ctx, snapshot); err != nil {
		return result, err
	}
	result.Notified = true

	log.Info().
		Dur("elapsed", time.Since(start)).
		Msg("Price check finished")
	return result, nil
}

// logFailure logs a non fatal scrape failure at the severity of its type
func (t *Tracker) logFailure(err error) {
	switch trackererrors.TypeOf(err) {
	case trackererrors.ErrorTypeParsing:
		event := t.logger.Critical().Err(err)
		if pe, ok := scraper.AsParseError(err); ok {
			event = event.Str("price_text", pe.Text).Str("locale", pe.Locale)
		}
		event.Msg("Could not parse product price, run aborted")
	case trackererrors.ErrorTypeExtraction, trackererrors.ErrorTypeDecoding:
		t.logger.Critical().Err(err).Msg("Could not read product page, run aborted")
	default:
		t.logger.Error().Err(err).Msg("Could not fetch product page, run aborted")
	}
}
