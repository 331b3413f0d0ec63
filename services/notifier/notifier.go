package notifier

import (
	"context"

	"sjsage522/pricetracker/internal/scraper"
)

// Notifier represents a service that alerts about a qualifying price
type Notifier interface {
	// Notify sends one alert for the given snapshot
	Notify(ctx context.Context, snapshot scraper.ProductSnapshot) error
}
