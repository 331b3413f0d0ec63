package scraper

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProductSnapshot holds the product facts extracted from one page fetch
type ProductSnapshot struct {
	Title        string          `json:"title"`
	DisplayPrice string          `json:"display_price"`
	PriceAmount  decimal.Decimal `json:"price_amount"`
	Locale       string          `json:"locale"`
	Link         string          `json:"link"`
}

// PriceMetadata is the first buying option of the page's price data island
type PriceMetadata struct {
	Locale           string              `json:"locale"`
	PriceAmount      decimal.NullDecimal `json:"priceAmount"`
	DisplayPrice     string              `json:"displayPrice,omitempty"`
	CurrencySymbol   string              `json:"currencySymbol,omitempty"`
	DecimalSeparator string              `json:"decimalSeparator,omitempty"`
}

// Scraper interface defines the contract for product page scrapers
type Scraper interface {
	// Scrape fetches the product page and extracts a snapshot from it
	Scrape(ctx context.Context) (ProductSnapshot, error)

	// GetName returns the scraper's name for logging and identification
	GetName() string
}
